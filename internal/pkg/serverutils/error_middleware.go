package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware recovers panics and converts them into the
// uniform error envelope instead of dropping the connection.
func ErrorHandlerMiddleware(logger *zap.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("path", ctx.Path()),
					zap.Any("panic", r),
				)
				_ = ErrorMessage(ctx, fmt.Sprintf("Internal error: %v", r))
			}
		}()
		return ctx.Next()
	}
}
