package service

import (
	"context"
	"movie_recommender/internal/repository"
	"movie_recommender/model"
	"time"
)

type IQuizService interface {
	GetQuizzes(ctx context.Context) ([]model.QuizRes, error)
	AddUserQuizResponses(ctx context.Context, userId int64, quizId int64, optionIds []int64) (int64, error)
}

type QuizService struct {
	quizRepo repository.IQuizRepository
	events   IEventQueue
	timeout  time.Duration
}

func NewQuizService(quizRepo repository.IQuizRepository, events IEventQueue) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		events:   events,
		timeout:  time.Duration(5) * time.Second,
	}
}

//------------------------------------------
//------------------------------------------

func (q *QuizService) GetQuizzes(ctx context.Context) ([]model.QuizRes, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	rows, err := q.quizRepo.GetQuizPromptOptionRows(ctx)
	if err != nil {
		return nil, err
	}
	return mapQuizPromptOptionRows(rows), nil
}

func (q *QuizService) AddUserQuizResponses(ctx context.Context, userId int64, quizId int64, optionIds []int64) (int64, error) {
	if len(optionIds) == 0 {
		return 0, model.ErrInvalidQuizResponse
	}

	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	updateCount, err := q.quizRepo.ReplaceUserQuizResponses(ctx, userId, quizId, optionIds)
	if err != nil {
		return 0, err
	}

	enqueueEvent(q.events, model.NewEvent(model.UserQuizSubmittedEvent, userId, map[string]interface{}{
		"quiz_id":      quizId,
		"update_count": updateCount,
	}))

	return updateCount, nil
}

//------------------------------------------
//------------------------------------------

// mapQuizPromptOptionRows nests rows ordered by quiz, prompt and option. A new quiz
// starts whenever the quiz id changes, a new prompt whenever the prompt id changes.
func mapQuizPromptOptionRows(rows []model.QuizPromptOptionRow) []model.QuizRes {
	quizzes := make([]model.QuizRes, 0)

	for i, row := range rows {
		if i == 0 || row.QuizId != rows[i-1].QuizId {
			quizzes = append(quizzes, model.QuizRes{
				QuizId:      row.QuizId,
				QuizPrompts: make([]model.QuizPromptRes, 0),
			})
		}
		quiz := &quizzes[len(quizzes)-1]

		if len(quiz.QuizPrompts) == 0 || row.QuizPromptId != rows[i-1].QuizPromptId {
			quiz.QuizPrompts = append(quiz.QuizPrompts, model.QuizPromptRes{
				QuizPromptId:      row.QuizPromptId,
				QuizPromptText:    row.QuizPromptText,
				QuizPromptOptions: make([]model.QuizPromptOptionRes, 0),
			})
		}
		prompt := &quiz.QuizPrompts[len(quiz.QuizPrompts)-1]

		prompt.QuizPromptOptions = append(prompt.QuizPromptOptions, model.QuizPromptOptionRes{
			QuizPromptOptionId:   row.QuizPromptOptionId,
			QuizPromptOptionText: row.QuizPromptOptionText,
		})
	}

	return quizzes
}
