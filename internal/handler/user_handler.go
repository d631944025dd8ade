package handler

import (
	"movie_recommender/api/middleware"
	"movie_recommender/internal/service"
	"movie_recommender/model"
	"movie_recommender/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	AddUserMovieTopFive(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Register godoc
//
//	@Summary		Register
//	@Description	Create a new account and return an access token.
//	@Tags			User
//	@Param			user	body		model.RegisterReq	true	"new user"
//	@Success		200		{object}	model.UserTokenRes
//	@Failure		400,409	{object}	response.ResponseErrorModel
//	@Router			/v1/user [post]
func (m *UserHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	res, err := m.userService.Register(c.UserContext(), &req)
	if err != nil {
		return errorResponse(c, err, "register user")
	}
	return response.ResponseOKWithData(c, res)
}

// Login godoc
//
//	@Summary		Login
//	@Description	Check email and password and return an access token.
//	@Tags			User
//	@Param			user	body		model.LoginReq	true	"credentials"
//	@Success		200		{object}	model.UserTokenRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/v1/user/login [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	res, err := m.userService.Login(c.UserContext(), req.UserEmail, req.UserPassword)
	if err != nil {
		return errorResponse(c, err, "login user")
	}
	return response.ResponseOKWithData(c, res)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Blacklist the current access token.
//	@Tags			User
//	@Success		200	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/logout [post]
func (m *UserHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.GetJwtUserData(c)
	err := m.userService.Logout(c.UserContext(), middleware.GetAccessToken(c), claims.ExpiresAt)
	if err != nil {
		return errorResponse(c, err, "logout user")
	}
	return response.ResponseOK(c, "")
}

// AddUserMovieTopFive godoc
//
//	@Summary		Add Top 5 Movies
//	@Description	Replace the user's favorite movies with a comma separated list of up to 5 names.
//	@Tags			User
//	@Param			userId	path		int						true	"user id"
//	@Param			movies	body		model.AddMovieTopFiveReq	true	"movie names"
//	@Success		200		{object}	model.UpdateCountRes
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/{userId}/movie/top_5 [post]
func (m *UserHandler) AddUserMovieTopFive(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId", 0)
	if err != nil || userId <= 0 {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}

	var req model.AddMovieTopFiveReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	updateCount, err := m.userService.AddUserMovieTopFive(c.UserContext(), int64(userId), req.MovieNames)
	if err != nil {
		return errorResponse(c, err, "add user top 5")
	}
	return response.ResponseOKWithData(c, model.UpdateCountRes{UpdateCount: updateCount})
}
