package handler

import (
	"movie_recommender/internal/service"
	"movie_recommender/model"
	"movie_recommender/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IQuizHandler interface {
	GetQuizzes(c *fiber.Ctx) error
	AddUserQuizResponses(c *fiber.Ctx) error
}

type QuizHandler struct {
	quizService service.IQuizService
}

func NewQuizHandler(quizService service.IQuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

//------------------------------------------
//------------------------------------------

// GetQuizzes godoc
//
//	@Summary		Quizzes
//	@Description	All quizzes with their prompts and options.
//	@Tags			Quiz
//	@Success		200	{object}	model.QuizzesRes
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/v1/quizzes [get]
func (m *QuizHandler) GetQuizzes(c *fiber.Ctx) error {
	quizzes, err := m.quizService.GetQuizzes(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "get quizzes")
	}
	return response.ResponseOKWithData(c, model.QuizzesRes{Quizzes: quizzes})
}

// AddUserQuizResponses godoc
//
//	@Summary		Quiz Responses
//	@Description	Replace the user's answers for one quiz. Options outside the quiz are ignored.
//	@Tags			Quiz
//	@Param			userId		path		int							true	"user id"
//	@Param			quizId		path		int							true	"quiz id"
//	@Param			responses	body		model.AddQuizResponsesReq	true	"selected options"
//	@Success		200			{object}	model.UpdateCountRes
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Failure		404			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/{userId}/quiz/{quizId} [post]
func (m *QuizHandler) AddUserQuizResponses(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId", 0)
	if err != nil || userId <= 0 {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}
	quizId, err := c.ParamsInt("quizId", 0)
	if err != nil || quizId <= 0 {
		return response.ResponseError(c, response.InvalidQuizId, fiber.StatusBadRequest)
	}

	var req model.AddQuizResponsesReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	optionIds := make([]int64, 0, len(req.QuizResponses))
	for _, item := range req.QuizResponses {
		optionIds = append(optionIds, item.QuizPromptOptionId)
	}

	updateCount, err := m.quizService.AddUserQuizResponses(c.UserContext(), int64(userId), int64(quizId), optionIds)
	if err != nil {
		return errorResponse(c, err, "add user quiz responses")
	}
	return response.ResponseOKWithData(c, model.UpdateCountRes{UpdateCount: updateCount})
}
