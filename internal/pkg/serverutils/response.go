package serverutils

import (
	"errors"

	"legal-ai-be/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the uniform failure envelope. All failures, whatever their
// cause, surface as status 400 with a single error string so clients have
// one shape to handle.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes err in the uniform envelope. AppError messages pass through
// as-is; anything else is reported verbatim since upstream provider payloads
// are part of the contract.
func Error(ctx *fiber.Ctx, err error) error {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: appErr.Message})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: err.Error()})
}

// ErrorMessage writes a literal message in the uniform envelope.
func ErrorMessage(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: message})
}
