package serverutils

import (
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewErrorHandler maps domain errors to HTTP statuses. Anything unclassified
// is logged and returned as a 500 without leaking internals.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		switch {
		case apperror.IsAuthorization(err):
			status = fiber.StatusForbidden
			message = err.Error()
		case apperror.IsNotFound(err):
			status = fiber.StatusNotFound
			message = err.Error()
		case apperror.IsInactiveSession(err):
			status = fiber.StatusConflict
			message = err.Error()
		case apperror.IsValidation(err):
			status = fiber.StatusUnprocessableEntity
			message = err.Error()
		default:
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
				message = fiberErr.Message
			} else {
				log.Error("http", "unhandled error", map[string]interface{}{
					"error": err.Error(),
					"path":  ctx.Path(),
				})
			}
		}

		return ctx.Status(status).JSON(errorBody{Success: false, Message: message})
	}
}
