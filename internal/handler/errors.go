package handler

import (
	"errors"
	"movie_recommender/model"
	errorHandler "movie_recommender/pkg/error"
	"movie_recommender/pkg/response"

	"github.com/gofiber/fiber/v2"
)

var errorMessages = map[error]string{
	model.ErrUserNotFound:            response.UserNotFound,
	model.ErrUserPassNotMatch:        response.UserPassNotMatch,
	model.ErrEmailAlreadyExist:       response.EmailAlreadyExist,
	model.ErrInvalidEmail:            response.InvalidEmail,
	model.ErrWeakPassword:            response.WeakPassword,
	model.ErrInvalidTopFive:          response.InvalidTopFive,
	model.ErrInvalidQuizResponse:     response.InvalidResponses,
	model.ErrQuizNotFound:            response.QuizzesNotFound,
	model.ErrRecommendationsDisabled: response.RecommendationsAreDisabled,
	model.ErrPeerSourceUnavailable:   response.RecommendationsNotAvailable,
}

// errorResponse answers with the status mapped to err. Unknown errors are reported
// and hidden behind a generic 500.
func errorResponse(c *fiber.Ctx, err error, operation string) error {
	code := model.GetErrorCode(err)
	if code == 0 {
		errorHandler.SaveError(operation, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	for target, message := range errorMessages {
		if errors.Is(err, target) {
			return response.ResponseError(c, message, code)
		}
	}
	return response.ResponseError(c, err.Error(), code)
}
