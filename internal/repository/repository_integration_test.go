//go:build integration

package repository

import (
	"context"
	"fmt"
	"movie_recommender/db"
	"movie_recommender/model"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "movies",
				"POSTGRES_PASSWORD": "movies",
				"POSTGRES_DB":       "movies",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://movies:movies@%s:%s/movies?sslmode=disable", host, port.Port())
	database, err := db.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate())
	t.Cleanup(database.Close)

	return database.GetDB()
}

func seedQuiz(t *testing.T, gdb *gorm.DB) model.Quiz {
	t.Helper()
	quiz := model.Quiz{
		QuizName: "vibes",
		Prompts: []model.QuizPrompt{
			{QuizPromptText: "Pick a mood", Options: []model.QuizPromptOption{
				{QuizPromptOptionText: "Tense"},
				{QuizPromptOptionText: "Cosy"},
			}},
			{QuizPromptText: "Pick a setting", Options: []model.QuizPromptOption{
				{QuizPromptOptionText: "City"},
			}},
		},
	}
	require.NoError(t, gdb.Create(&quiz).Error)
	return quiz
}

func TestRepositories_Integration(t *testing.T) {
	gdb := startPostgres(t)
	ctx := context.Background()

	userRepo := NewUserRepository(gdb)
	movieRepo := NewMovieRepository(gdb)
	quizRepo := NewQuizRepository(gdb)

	alice := &model.User{UserFirstName: "Alice", UserLastName: "A", UserEmail: "Alice@Example.com", UserPassword: "hash"}
	bob := &model.User{UserFirstName: "Bob", UserLastName: "B", UserEmail: "bob@example.com", UserPassword: "hash"}
	carol := &model.User{UserFirstName: "Carol", UserLastName: "C", UserEmail: "carol@example.com", UserPassword: "hash"}
	require.NoError(t, userRepo.AddUser(ctx, alice))
	require.NoError(t, userRepo.AddUser(ctx, bob))
	require.NoError(t, userRepo.AddUser(ctx, carol))

	t.Run("duplicate email", func(t *testing.T) {
		err := userRepo.AddUser(ctx, &model.User{UserFirstName: "A", UserLastName: "A", UserEmail: "alice@example.com", UserPassword: "x"})
		assert.ErrorIs(t, err, model.ErrEmailAlreadyExist)
	})

	t.Run("get user", func(t *testing.T) {
		user, err := userRepo.GetUserByEmail(ctx, " ALICE@example.com ")
		require.NoError(t, err)
		assert.Equal(t, alice.UserId, user.UserId)
		assert.Equal(t, model.DefaultUserRole, user.UserRole)

		_, err = userRepo.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, model.ErrUserNotFound)

		_, err = userRepo.GetUserById(ctx, 999999)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("top 5 replace", func(t *testing.T) {
		count, err := movieRepo.ReplaceUserMovieTopFive(ctx, alice.UserId, []string{"Heat (1995)", "Alien"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = movieRepo.ReplaceUserMovieTopFive(ctx, alice.UserId, []string{"Heat (1995)", "Ronin", "Alien"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		rows, err := movieRepo.GetUserMovieTopFive(ctx, alice.UserId)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Ronin", rows[1].MovieName)
		assert.Equal(t, 2, rows[1].MovieRank)
	})

	quiz := seedQuiz(t, gdb)
	tense := quiz.Prompts[0].Options[0].QuizPromptOptionId
	cosy := quiz.Prompts[0].Options[1].QuizPromptOptionId

	t.Run("quiz rows", func(t *testing.T) {
		rows, err := quizRepo.GetQuizPromptOptionRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Pick a mood", rows[0].QuizPromptText)
		assert.Equal(t, "City", rows[2].QuizPromptOptionText)
	})

	t.Run("quiz responses", func(t *testing.T) {
		count, err := quizRepo.ReplaceUserQuizResponses(ctx, alice.UserId, quiz.QuizId, []int64{tense, 424242})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		_, err = quizRepo.ReplaceUserQuizResponses(ctx, alice.UserId, 424242, []int64{tense})
		assert.ErrorIs(t, err, model.ErrQuizNotFound)

		_, err = quizRepo.ReplaceUserQuizResponses(ctx, bob.UserId, quiz.QuizId, []int64{tense})
		require.NoError(t, err)
		_, err = quizRepo.ReplaceUserQuizResponses(ctx, carol.UserId, quiz.QuizId, []int64{cosy})
		require.NoError(t, err)
	})

	t.Run("similar users top 5", func(t *testing.T) {
		_, err := movieRepo.ReplaceUserMovieTopFive(ctx, bob.UserId, []string{"Alien", "Thief"})
		require.NoError(t, err)
		_, err = movieRepo.ReplaceUserMovieTopFive(ctx, carol.UserId, []string{"Paddington"})
		require.NoError(t, err)

		entries, err := movieRepo.GetMovieTopFiveForSimilarUsers(ctx, alice.UserId)
		require.NoError(t, err)
		assert.Equal(t, []model.PeerTopFiveEntry{
			{MovieName: "Alien", IsOwnTopFive: true},
			{MovieName: "Heat (1995)", IsOwnTopFive: true},
			{MovieName: "Ronin", IsOwnTopFive: true},
			{MovieName: "Thief", IsOwnTopFive: false},
		}, entries)

		again, err := movieRepo.GetMovieTopFiveForSimilarUsers(ctx, alice.UserId)
		require.NoError(t, err)
		assert.Equal(t, entries, again)

		entries, err = movieRepo.GetMovieTopFiveForSimilarUsers(ctx, 999999)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
