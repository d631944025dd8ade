package handler

import (
	"errors"
	"movie_recommender/internal/service"
	"movie_recommender/model"
	"movie_recommender/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type IMovieHandler interface {
	GetUserMovieRecommendations(c *fiber.Ctx) error
}

type MovieHandler struct {
	recommendationService service.IRecommendationService
}

func NewMovieHandler(recommendationService service.IRecommendationService) *MovieHandler {
	return &MovieHandler{
		recommendationService: recommendationService,
	}
}

//------------------------------------------
//------------------------------------------

// GetUserMovieRecommendations godoc
//
//	@Summary		Movie Recommendations
//	@Description	Up to 25 movies liked by similar users and related titles, most popular first.
//	@Description	An empty list comes with the message "No recommendations available".
//	@Tags			Movie
//	@Param			userId		path		int	true	"user id"
//	@Success		200			{object}	model.RecommendationsRes
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Failure		503			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/{userId}/movie/recommendations [get]
func (m *MovieHandler) GetUserMovieRecommendations(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId", 0)
	if err != nil || userId <= 0 {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}

	logger := log.With().Str("request_id", uuid.NewString()).Logger()
	ctx := logger.WithContext(c.UserContext())

	movies, err := m.recommendationService.Recommend(ctx, int64(userId))
	if err != nil {
		if errors.Is(err, model.ErrPeerSourceUnavailable) {
			zerolog.Ctx(ctx).Error().Err(err).Int("user_id", userId).Msg("peer top 5 source failed")
		}
		return errorResponse(c, err, "get movie recommendations")
	}

	res := model.RecommendationsRes{Movies: movies}
	if len(movies) == 0 {
		return response.ResponseOKWithDataAndMessage(c, res, response.RecommendationsNotAvailable)
	}
	return response.ResponseOKWithData(c, res)
}
