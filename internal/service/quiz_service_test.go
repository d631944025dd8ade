package service

import (
	"context"
	"movie_recommender/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuizRepo struct {
	rows      []model.QuizPromptOptionRow
	err       error
	gotQuiz   int64
	gotOption []int64
}

func (f *fakeQuizRepo) GetQuizPromptOptionRows(_ context.Context) ([]model.QuizPromptOptionRow, error) {
	return f.rows, f.err
}

func (f *fakeQuizRepo) ReplaceUserQuizResponses(_ context.Context, _ int64, quizId int64, optionIds []int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.gotQuiz = quizId
	f.gotOption = optionIds
	return int64(len(optionIds)), nil
}

func TestMapQuizPromptOptionRows(t *testing.T) {
	rows := []model.QuizPromptOptionRow{
		{QuizId: 1, QuizPromptId: 10, QuizPromptText: "Mood", QuizPromptOptionId: 100, QuizPromptOptionText: "Tense"},
		{QuizId: 1, QuizPromptId: 10, QuizPromptText: "Mood", QuizPromptOptionId: 101, QuizPromptOptionText: "Cosy"},
		{QuizId: 1, QuizPromptId: 11, QuizPromptText: "Setting", QuizPromptOptionId: 102, QuizPromptOptionText: "City"},
		{QuizId: 2, QuizPromptId: 20, QuizPromptText: "Era", QuizPromptOptionId: 200, QuizPromptOptionText: "80s"},
	}

	quizzes := mapQuizPromptOptionRows(rows)

	require.Len(t, quizzes, 2)
	assert.Equal(t, int64(1), quizzes[0].QuizId)
	require.Len(t, quizzes[0].QuizPrompts, 2)
	assert.Equal(t, "Mood", quizzes[0].QuizPrompts[0].QuizPromptText)
	assert.Equal(t, []model.QuizPromptOptionRes{
		{QuizPromptOptionId: 100, QuizPromptOptionText: "Tense"},
		{QuizPromptOptionId: 101, QuizPromptOptionText: "Cosy"},
	}, quizzes[0].QuizPrompts[0].QuizPromptOptions)
	assert.Len(t, quizzes[0].QuizPrompts[1].QuizPromptOptions, 1)

	require.Len(t, quizzes[1].QuizPrompts, 1)
	assert.Equal(t, "Era", quizzes[1].QuizPrompts[0].QuizPromptText)
}

func TestMapQuizPromptOptionRows_Empty(t *testing.T) {
	quizzes := mapQuizPromptOptionRows(nil)
	assert.NotNil(t, quizzes)
	assert.Empty(t, quizzes)
}

func TestAddUserQuizResponses(t *testing.T) {
	repo := &fakeQuizRepo{}
	events := &fakeEventQueue{}
	svc := NewQuizService(repo, events)

	count, err := svc.AddUserQuizResponses(context.Background(), 4, 1, []int64{100, 102})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, int64(1), repo.gotQuiz)
	require.Len(t, events.events, 1)
	assert.Equal(t, model.UserQuizSubmittedEvent, events.events[0].Type)

	_, err = svc.AddUserQuizResponses(context.Background(), 4, 1, nil)
	assert.ErrorIs(t, err, model.ErrInvalidQuizResponse)

	repo.err = model.ErrQuizNotFound
	_, err = svc.AddUserQuizResponses(context.Background(), 4, 9, []int64{1})
	assert.Equal(t, 404, model.GetErrorCode(err))
}
