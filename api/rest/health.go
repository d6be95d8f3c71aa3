package rest

import (
	"github.com/gofiber/fiber/v2"

	apiDomain "github.com/tharun634/JavaBot/api/domain"
	"github.com/tharun634/JavaBot/pkg/utils"
)

type Health struct {
	Service apiDomain.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service apiDomain.IHealthUsecase) Health {
	handler := Health{Service: service}
	app.Get("/health", handler.GetStatus)

	return handler
}

func (h *Health) GetStatus(c *fiber.Ctx) error {
	status, err := h.Service.GetStatus(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Health status retrieved",
		Results: status,
	})
}
