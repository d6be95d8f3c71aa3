package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	pkgError "github.com/tharun634/JavaBot/pkg/error"
	"github.com/tharun634/JavaBot/pkg/utils"
)

func Recovery() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			err := recover()
			if err != nil {
				var res utils.ResponseData
				res.Status = 500
				res.Code = "INTERNAL_SERVER_ERROR"
				res.Message = fmt.Sprintf("%v", err)

				apiErr, isAPIError := err.(pkgError.GenericError)
				if isAPIError {
					res.Status = apiErr.StatusCode()
					res.Code = apiErr.ErrCode()
					res.Message = apiErr.Error()
				} else {
					logrus.Errorf("Panic recovered in middleware: %v", err)
				}

				_ = ctx.Status(res.Status).JSON(res)
			}
		}()

		return ctx.Next()
	}
}
