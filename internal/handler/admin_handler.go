package handler

import (
	"movie_recommender/internal/service"
	"movie_recommender/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAdminHandler interface {
	FetchDbConfigs(c *fiber.Ctx) error
}

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

//------------------------------------------
//------------------------------------------

// FetchDbConfigs godoc
//
//	@Summary		Fetch Configs
//	@Description	Reload dynamic configs from the database.
//	@Tags			Admin
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/fetch_configs [get]
func (m *AdminHandler) FetchDbConfigs(c *fiber.Ctx) error {
	err := m.adminService.FetchDbConfigs(c.UserContext())
	if err != nil {
		return response.ResponseError(c, response.ConfigsDbNotFound, fiber.StatusNotFound)
	}

	return response.ResponseOK(c, "")
}
