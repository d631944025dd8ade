package main

import (
	"context"
	"movie_recommender/internal/cli"
	"movie_recommender/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logger.Setup(os.Stderr, getEnv("LOG_LEVEL", "warn"), "console")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := cli.NewAPIClient(getEnv("API_BASE_URL", "http://localhost:3000"), 30*time.Second)
	app := cli.NewApp(client, cli.NewConsole(os.Stdin, os.Stdout))
	app.Run(ctx)
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
