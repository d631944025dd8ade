package main

import (
	"context"
	"movie_recommender/api"
	"movie_recommender/configs"
	"movie_recommender/db"
	"movie_recommender/db/mongodb"
	"movie_recommender/db/rabbitmq"
	"movie_recommender/db/redis"
	"movie_recommender/internal/catalog"
	"movie_recommender/internal/handler"
	"movie_recommender/internal/repository"
	"movie_recommender/internal/service"
	"movie_recommender/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

// @title						Movie Recommender
// @version					1.0
// @description				Quiz based movie recommendations from users with a similar vibe.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()
	logger.Init(configs.GetConfigs().LogLevel, configs.GetConfigs().LogFormat)

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     configs.GetConfigs().SentryDns,
		Release: configs.GetConfigs().SentryRelease,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sentry.Init")
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.NewDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize postgres database connection")
	}
	defer database.Close()
	if configs.GetConfigs().DbAutoMigrate {
		if err = database.AutoMigrate(); err != nil {
			log.Fatal().Err(err).Msg("could not migrate postgres database")
		}
	}

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize mongodb database connection")
	}
	defer func() {
		_ = mongoDB.Close()
	}()
	go configs.LoadDbConfigs(ctx, mongoDB.GetDB())

	go redis.ConnectRedis()
	defer func() {
		_ = redis.CloseRedis()
	}()

	events := startEventQueue()
	if events != nil {
		defer events.Close()
	}

	catalogClient := catalog.NewClient(
		configs.GetConfigs().TmdbBaseUrl,
		configs.GetConfigs().TmdbBearerToken,
		time.Duration(configs.GetConfigs().CatalogTimeoutSec)*time.Second,
		configs.GetConfigs().CatalogRps,
	)
	catalogLookup := catalog.NewLookup(catalogClient, service.NewCatalogCache())

	userRep := repository.NewUserRepository(database.GetDB())
	movieRep := repository.NewMovieRepository(database.GetDB())
	quizRep := repository.NewQuizRepository(database.GetDB())
	adminRep := repository.NewAdminRepository(mongoDB.GetDB())

	userSvc := service.NewUserService(userRep, movieRep, events)
	recommendationSvc := service.NewRecommendationService(movieRep, catalogLookup, events, configs.GetConfigs().CatalogConcurrency)
	quizSvc := service.NewQuizService(quizRep, events)
	adminSvc := service.NewAdminService(adminRep)

	api.InitRouter(
		handler.NewUserHandler(userSvc),
		handler.NewMovieHandler(recommendationSvc),
		handler.NewQuizHandler(quizSvc),
		handler.NewAdminHandler(adminSvc),
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := api.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	if err = api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

// startEventQueue returns nil when no broker is configured, services skip publishing then.
func startEventQueue() service.IEventQueue {
	if configs.GetConfigs().RabbitmqUrl == "" {
		log.Warn().Msg("RABBITMQ_URL not set, domain events are disabled")
		return nil
	}

	publisher, err := rabbitmq.NewPublisher()
	if err != nil {
		log.Error().Err(err).Msg("could not connect to rabbitmq, domain events are disabled")
		return nil
	}

	queue := service.NewEventQueue(configs.GetConfigs().EventQueueFile, 2, 1000, 30*time.Second, 50)
	queue.Start(service.PublishConsumer(publisher), time.Second)
	return &closingQueue{EventQueue: queue, publisher: publisher}
}

type closingQueue struct {
	*service.EventQueue
	publisher *rabbitmq.Publisher
}

func (q *closingQueue) Close() {
	q.EventQueue.Close()
	_ = q.publisher.Close()
}
