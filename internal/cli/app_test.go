package cli

import (
	"context"
	"errors"
	"movie_recommender/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPIClient struct {
	registered   *model.RegisterReq
	loginErr     error
	topFive      string
	topFiveCount int64
	quizzes      []model.QuizRes
	quizAnswers  map[int64][]int64
	movies       []model.Movie
	moviesErr    error
	sessions     []Session
}

func (f *fakeAPIClient) Register(_ context.Context, req model.RegisterReq) (*model.UserTokenRes, error) {
	f.registered = &req
	return &model.UserTokenRes{UserId: 7, AccessToken: "new-token"}, nil
}

func (f *fakeAPIClient) Login(_ context.Context, email string, password string) (*model.UserTokenRes, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if email != "ada@example.com" || password != "Engine#1843" {
		return nil, &APIError{Status: 401, Message: "Email and password do not match"}
	}
	return &model.UserTokenRes{UserId: 3, AccessToken: "token"}, nil
}

func (f *fakeAPIClient) AddMovieTopFive(_ context.Context, session Session, movieNames string) (int64, error) {
	f.sessions = append(f.sessions, session)
	f.topFive = movieNames
	return f.topFiveCount, nil
}

func (f *fakeAPIClient) GetQuizzes(_ context.Context) ([]model.QuizRes, error) {
	return f.quizzes, nil
}

func (f *fakeAPIClient) AddQuizResponses(_ context.Context, session Session, quizId int64, optionIds []int64) (int64, error) {
	f.sessions = append(f.sessions, session)
	if f.quizAnswers == nil {
		f.quizAnswers = map[int64][]int64{}
	}
	f.quizAnswers[quizId] = optionIds
	return int64(len(optionIds)), nil
}

func (f *fakeAPIClient) GetRecommendations(_ context.Context, session Session) ([]model.Movie, error) {
	f.sessions = append(f.sessions, session)
	return f.movies, f.moviesErr
}

//------------------------------------------
//------------------------------------------

func TestRun_ExitFromUserMenu(t *testing.T) {
	console, out := newTestConsole("3")
	client := &fakeAPIClient{}

	NewApp(client, console).Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to Movie Recommender")
	assert.NotContains(t, out.String(), "Main Menu")
	assert.Contains(t, out.String(), "Thank you for using Movie Recommender!")
}

func TestRun_LoginRetryThenRecommendations(t *testing.T) {
	console, out := newTestConsole(
		"1", "ada@example.com", "wrong",
		"1", "ada@example.com", "Engine#1843",
		"3",
		"4",
	)
	client := &fakeAPIClient{movies: []model.Movie{
		{MovieId: 808, MovieName: "Shrek", MovieOverview: "An ogre.", MovieReleaseDate: "2001-05-18"},
		{MovieId: 809, MovieName: "Shrek 2", MovieReleaseDate: "2004-05-19"},
	}}

	NewApp(client, console).Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Account details not recognised.")
	assert.Contains(t, text, "Welcome to your account!")
	assert.Contains(t, text, "\nYour Top 25 Movie Recommendations:\n\n1. Shrek (2001)\n")
	assert.Contains(t, text, "1. Shrek (2001)\nAn ogre.\n")
	assert.Contains(t, text, "2. Shrek 2 (2004)\nNo overview available.\n")
	require.Len(t, client.sessions, 1)
	assert.Equal(t, Session{UserId: 3, AccessToken: "token"}, client.sessions[0])
}

func TestRun_RecommendationsUnavailable(t *testing.T) {
	for name, client := range map[string]*fakeAPIClient{
		"empty": {movies: []model.Movie{}},
		"error": {moviesErr: &APIError{Status: 503, Message: "No recommendations available"}},
	} {
		t.Run(name, func(t *testing.T) {
			console, out := newTestConsole("1", "ada@example.com", "Engine#1843", "3", "4")
			NewApp(client, console).Run(context.Background())
			assert.Contains(t, out.String(), "Sorry, unable to get movie recommendations.")
		})
	}
}

func TestRun_RegisterValidatesInput(t *testing.T) {
	console, out := newTestConsole(
		"2", "Ada", "Lovelace",
		"not-an-email", "ada@example.com",
		"weak", "Engine#1843",
		"4",
	)
	client := &fakeAPIClient{}

	NewApp(client, console).Run(context.Background())

	require.NotNil(t, client.registered)
	assert.Equal(t, "ada@example.com", client.registered.UserEmail)
	assert.Equal(t, "Engine#1843", client.registered.UserPassword)
	assert.Contains(t, out.String(), "Sorry, invalid email address. Please try again.")
	assert.Contains(t, out.String(), "Sorry, invalid password. Please try again.")
	assert.Contains(t, out.String(), "Account created successfully!")
	assert.Contains(t, out.String(), "Main Menu")
}

func TestRun_AddMovieTopFive(t *testing.T) {
	console, out := newTestConsole(
		"1", "ada@example.com", "Engine#1843",
		"1", "Heat", "Heat, Alien",
		"1", "Heat, Alien, Shrek",
		"4",
	)
	client := &fakeAPIClient{topFiveCount: 2}

	NewApp(client, console).Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Movie names must be separated by commas. Please try again.")
	assert.Contains(t, text, "Top 5 movies recorded successfully.")
	assert.Contains(t, text, "Sorry, unable to add top 5 movies. Please try again.")
	assert.Equal(t, "Heat, Alien, Shrek", client.topFive)
}

func TestRun_TakeQuiz(t *testing.T) {
	console, out := newTestConsole(
		"1", "ada@example.com", "Engine#1843",
		"2", "2", "1",
		"4",
	)
	client := &fakeAPIClient{quizzes: []model.QuizRes{{
		QuizId: 1,
		QuizPrompts: []model.QuizPromptRes{
			{QuizPromptId: 1, QuizPromptText: "Pick a snack", QuizPromptOptions: []model.QuizPromptOptionRes{
				{QuizPromptOptionId: 1, QuizPromptOptionText: "Popcorn"},
				{QuizPromptOptionId: 2, QuizPromptOptionText: "Nachos"},
			}},
			{QuizPromptId: 2, QuizPromptText: "Pick a seat", QuizPromptOptions: []model.QuizPromptOptionRes{
				{QuizPromptOptionId: 3, QuizPromptOptionText: "Front"},
				{QuizPromptOptionId: 4, QuizPromptOptionText: "Back"},
			}},
		},
	}}}

	NewApp(client, console).Run(context.Background())

	assert.Equal(t, []int64{2, 3}, client.quizAnswers[1])
	assert.Contains(t, out.String(), "Pick a seat")
	assert.Contains(t, out.String(), "Quiz responses recorded successfully.")
}

func TestRun_TakeQuizExitEarly(t *testing.T) {
	console, _ := newTestConsole(
		"1", "ada@example.com", "Engine#1843",
		"2", "3",
		"4",
	)
	client := &fakeAPIClient{quizzes: []model.QuizRes{{
		QuizId: 1,
		QuizPrompts: []model.QuizPromptRes{
			{QuizPromptId: 1, QuizPromptText: "Pick a snack", QuizPromptOptions: []model.QuizPromptOptionRes{
				{QuizPromptOptionId: 1, QuizPromptOptionText: "Popcorn"},
				{QuizPromptOptionId: 2, QuizPromptOptionText: "Nachos"},
			}},
		},
	}}}

	NewApp(client, console).Run(context.Background())

	assert.Empty(t, client.quizAnswers)
}

func TestSessionValid(t *testing.T) {
	assert.False(t, Session{}.Valid())
	assert.False(t, Session{UserId: 1}.Valid())
	assert.True(t, Session{UserId: 1, AccessToken: "t"}.Valid())
	assert.True(t, errors.As(error(&APIError{Status: 401}), new(*APIError)))
}
