package cli

import (
	"context"
	"movie_recommender/model"
	"movie_recommender/util"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	failedRecommendations = "Sorry, unable to get movie recommendations."
	noOverview            = "No overview available."
)

type App struct {
	client         IAPIClient
	console        *Console
	requestTimeout time.Duration
}

func NewApp(client IAPIClient, console *Console) *App {
	return &App{
		client:         client,
		console:        console,
		requestTimeout: 30 * time.Second,
	}
}

// Run shows the user menu until a session exists, then the main menu until Exit.
func (a *App) Run(ctx context.Context) {
	a.displayWelcomeBanner()

	var session Session
	userMenu := &Menu{
		Title: "User Menu",
		Options: []Option{
			{Title: "Existing User Login", Action: func(int64) { session = a.login(ctx) }},
			{Title: "New User Registration", Action: func(int64) { session = a.register(ctx) }},
		},
		ShouldExit: func(choice int, exitOption int) bool {
			return session.Valid() || choice == exitOption
		},
	}
	userMenu.Loop(a.console)

	if session.Valid() {
		mainMenu := &Menu{
			Title: "Main Menu",
			Options: []Option{
				{Title: "Add your top 5 movies", Action: func(int64) { a.addMovieTopFive(ctx, session) }},
				{Title: "Take a quiz", Action: func(int64) { a.takeQuiz(ctx, session) }},
				{Title: "Get movie recommendations", Action: func(int64) { a.showRecommendations(ctx, session) }},
			},
			ShouldExit: func(choice int, exitOption int) bool {
				return choice == exitOption
			},
		}
		mainMenu.Loop(a.console)
	}

	a.console.Println("\nThank you for using Movie Recommender!")
}

func (a *App) displayWelcomeBanner() {
	a.console.Println(strings.Repeat("=", 48))
	a.console.Println(strings.Repeat(" ", 10) + "Welcome to Movie Recommender" + strings.Repeat(" ", 10))
	a.console.Println(strings.Repeat("=", 48))
}

// readValid prompts until validate accepts the input. ok is false once input is exhausted.
func (a *App) readValid(prompt string, validate func(string) error, errorMessage string) (string, bool) {
	for {
		line, ok := a.console.ReadLine(prompt)
		if !ok {
			return "", false
		}
		if validate(line) == nil {
			return line, true
		}
		a.console.Println(errorMessage)
	}
}

//------------------------------------------
//------------------------------------------

func (a *App) register(ctx context.Context) Session {
	var req model.RegisterReq
	var ok bool
	if req.UserFirstName, ok = a.console.ReadLine("Please enter your first name: "); !ok {
		return Session{}
	}
	if req.UserLastName, ok = a.console.ReadLine("Please enter your last name: "); !ok {
		return Session{}
	}
	if req.UserEmail, ok = a.readValid("Please enter a valid email address: ", util.ValidateEmail,
		"Sorry, invalid email address. Please try again."); !ok {
		return Session{}
	}
	if req.UserPassword, ok = a.readValid("Please enter a strong password: ", util.ValidatePassword,
		"Sorry, invalid password. Please try again. "+
			"Password must be at least 8 characters, including 1 uppercase, 1 lowercase, 1 digit and 1 special character."); !ok {
		return Session{}
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()
	res, err := a.client.Register(ctx, req)
	if err != nil {
		log.Debug().Err(err).Msg("register failed")
		a.console.Println("Failed to create account. Please try again.")
		return Session{}
	}

	a.console.Println("Account created successfully!")
	return Session{UserId: res.UserId, AccessToken: res.AccessToken}
}

func (a *App) login(ctx context.Context) Session {
	email, ok := a.console.ReadLine("Please enter your email address: ")
	if !ok {
		return Session{}
	}
	password, ok := a.console.ReadLine("Please enter your password: ")
	if !ok {
		return Session{}
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		log.Debug().Err(err).Msg("login failed")
		a.console.Println("Account details not recognised. Please try again, or select '2' to create a new account.")
		return Session{}
	}

	a.console.Println("Welcome to your account!")
	return Session{UserId: res.UserId, AccessToken: res.AccessToken}
}

func (a *App) addMovieTopFive(ctx context.Context, session Session) {
	movieNames, ok := a.readValid("Please enter a comma-separated list of your top 5 movies. ",
		func(s string) error {
			if !strings.Contains(s, ",") {
				return model.ErrInvalidTopFive
			}
			return nil
		},
		"Movie names must be separated by commas. Please try again.")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()
	updateCount, err := a.client.AddMovieTopFive(ctx, session, movieNames)
	names, parseErr := util.ParseMovieNames(movieNames)
	if err != nil || parseErr != nil || updateCount != int64(len(names)) {
		log.Debug().Err(err).Int64("update_count", updateCount).Msg("add top 5 failed")
		a.console.Println("Sorry, unable to add top 5 movies. Please try again.")
		return
	}
	a.console.Println("Top 5 movies recorded successfully.")
}

func (a *App) takeQuiz(ctx context.Context, session Session) {
	fetchCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	quizzes, err := a.client.GetQuizzes(fetchCtx)
	cancel()
	if err != nil {
		log.Debug().Err(err).Msg("get quizzes failed")
		a.console.Println("Sorry, unable to load quizzes. Please try again.")
		return
	}

	for _, quiz := range quizzes {
		responses := make([]int64, 0, len(quiz.QuizPrompts))
		for _, prompt := range quiz.QuizPrompts {
			options := make([]Option, 0, len(prompt.QuizPromptOptions))
			for _, option := range prompt.QuizPromptOptions {
				options = append(options, Option{
					Title:  option.QuizPromptOptionText,
					Param:  option.QuizPromptOptionId,
					Action: func(optionId int64) { responses = append(responses, optionId) },
				})
			}
			menu := &Menu{Title: prompt.QuizPromptText, Options: options}
			if menu.Loop(a.console) == menu.ExitOption() {
				break
			}
		}

		if len(responses) == 0 || len(responses) != len(quiz.QuizPrompts) {
			return
		}

		submitCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
		updateCount, err := a.client.AddQuizResponses(submitCtx, session, quiz.QuizId, responses)
		cancel()
		if err != nil || updateCount != int64(len(quiz.QuizPrompts)) {
			log.Debug().Err(err).Int64("update_count", updateCount).Msg("add quiz responses failed")
			a.console.Println("Sorry, unable to record quiz responses. Please try again.")
			continue
		}
		a.console.Println("Quiz responses recorded successfully.")
	}
}

func (a *App) showRecommendations(ctx context.Context, session Session) {
	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()
	movies, err := a.client.GetRecommendations(ctx, session)
	if err != nil || len(movies) == 0 {
		log.Debug().Err(err).Msg("get recommendations failed")
		a.console.Println(failedRecommendations)
		return
	}

	a.console.Printf("\nYour Top 25 Movie Recommendations:\n\n")
	for i, movie := range movies {
		overview := movie.MovieOverview
		if overview == "" {
			overview = noOverview
		}
		a.console.Printf("%d. %s (%s)\n", i+1, movie.MovieName, movie.ReleaseYear())
		a.console.Printf("%s\n\n", overview)
	}
}
