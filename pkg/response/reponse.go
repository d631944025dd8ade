package response

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseOKWithDataModel struct {
	Code         int         `json:"code"`
	Data         interface{} `json:"data"`
	ErrorMessage string      `json:"errorMessage"`
}

type ResponseOKModel struct {
	Code         int    `json:"code"`
	ErrorMessage string `json:"errorMessage"`
}

type ResponseErrorModel struct {
	Code         int         `json:"code"`
	ErrorMessage interface{} `json:"errorMessage"`
}

func ResponseOKWithData(c *fiber.Ctx, data interface{}) error {
	return ResponseOKWithDataAndMessage(c, data, "")
}

// ResponseOKWithDataAndMessage is a successful response that still carries a note for the client,
// e.g. an empty result set.
func ResponseOKWithDataAndMessage(c *fiber.Ctx, data interface{}, message string) error {
	response := ResponseOKWithDataModel{
		Code:         200,
		Data:         data,
		ErrorMessage: message,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func ResponseOK(c *fiber.Ctx, message string) error {
	response := ResponseOKModel{
		Code:         200,
		ErrorMessage: message,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func ResponseError(c *fiber.Ctx, err interface{}, code int) error {
	response := ResponseErrorModel{
		Code:         code,
		ErrorMessage: err,
	}

	return c.Status(code).JSON(response)
}
