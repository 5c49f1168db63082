package controller

import (
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/pkg/serverutils"
	"legal-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorMessage(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Error(ctx, err)
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorMessage(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Error(ctx, err)
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}

// SessionTouchMiddleware records user activity for the idle-session guard.
func SessionTouchMiddleware(authService service.IAuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if userId, ok := ctx.Locals("user_id").(string); ok {
			authService.TouchSession(userId)
		}
		return ctx.Next()
	}
}
