package api

import (
	"context"
	"errors"
	"movie_recommender/api/middleware"
	"movie_recommender/configs"
	_ "movie_recommender/docs"
	"movie_recommender/internal/handler"
	"movie_recommender/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"
)

var router *fiber.App

func InitRouter(userHandler *handler.UserHandler, movieHandler *handler.MovieHandler,
	quizHandler *handler.QuizHandler, adminHandler *handler.AdminHandler) *fiber.App {
	router = fiber.New(fiber.Config{
		BodyLimit:    1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	userRoutes := router.Group("v1/user")
	{
		userRoutes.Post("/", userHandler.Register)
		userRoutes.Post("/login", userHandler.Login)
		userRoutes.Post("/logout", middleware.AuthMiddleware, userHandler.Logout)
		userRoutes.Post("/:userId/movie/top_5", middleware.AuthMiddleware, middleware.SelfMiddleware, userHandler.AddUserMovieTopFive)
		userRoutes.Get("/:userId/movie/recommendations", middleware.AuthMiddleware, middleware.SelfMiddleware, movieHandler.GetUserMovieRecommendations)
		userRoutes.Post("/:userId/quiz/:quizId", middleware.AuthMiddleware, middleware.SelfMiddleware, quizHandler.AddUserQuizResponses)
	}

	router.Get("/v1/quizzes", quizHandler.GetQuizzes)

	adminRoutes := router.Group("v1/admin")
	{
		adminRoutes.Get("/fetch_configs", middleware.AuthMiddleware, middleware.AdminMiddleware, adminHandler.FetchDbConfigs)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default

	return router
}

func Start(addr string) error {
	return router.Listen(addr)
}

func Shutdown(ctx context.Context) error {
	if router == nil {
		return nil
	}
	return router.ShutdownWithContext(ctx)
}

func defaultErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	if code == fiber.StatusNotFound {
		return response.ResponseError(c, "Not Found", code)
	}
	return response.ResponseError(c, "Internal Error", code)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		// wrap the request context with a timeout, handlers read it through c.UserContext()
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return response.ResponseError(c, "Request timed out", fiber.StatusGatewayTimeout)
		}
		return err
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
