package serverutils

import (
	"os"

	"legal-ai-be/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware authenticates the request from the Authorization header
// and stores the subject id in ctx.Locals("user_id"). Failures use the
// uniform envelope like every other error in the API.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return Error(ctx, apperr.ErrAuthorizationRequired)
	}
	tokenStr := authHeader[7:]

	// JWT_SECRET is guaranteed non-empty: config.Load refuses to start
	// without it, so there is no fallback key here.
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return Error(ctx, apperr.ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Error(ctx, apperr.ErrInvalidToken)
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}
