package serverutils

import (
	"errors"

	"learning-buddy-be/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler builds the fiber.Config ErrorHandler. Unknown errors become 500
// and are logged; everything else is a client error and is not.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := err.Error()

		var fiberErr *fiber.Error
		var validationErrs validator.ValidationErrors

		if appErr, ok := AsAppError(err); ok {
			code = appErr.Code
			message = appErr.Message
		} else if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else if errors.As(err, &validationErrs) {
			code = fiber.StatusBadRequest
			message = validationMessage(validationErrs)
		}

		if code >= fiber.StatusInternalServerError && log != nil {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}
