package controller

import (
	"legal-ai-be/internal/pkg/serverutils"
	"legal-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Touch(ctx *fiber.Ctx) error
}

// sessionController exposes the idle-session guard. Status deliberately does
// not count as activity; only Touch and real API usage reset the clock.
type sessionController struct {
	authService service.IAuthService
}

func NewSessionController(authService service.IAuthService) ISessionController {
	return &sessionController{
		authService: authService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("status", c.Status)
	h.Post("touch", c.Touch)
}

func (c *sessionController) Status(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	return ctx.JSON(c.authService.SessionStatus(userIdStr))
}

func (c *sessionController) Touch(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	c.authService.TouchSession(userIdStr)
	return ctx.JSON(c.authService.SessionStatus(userIdStr))
}
