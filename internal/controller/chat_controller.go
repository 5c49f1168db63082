package controller

import (
	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/pkg/serverutils"
	"legal-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	authService service.IAuthService
}

func NewChatController(chatService service.IChatService, authService service.IAuthService) IChatController {
	return &chatController{
		chatService: chatService,
		authService: authService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(SessionTouchMiddleware(c.authService))
	h.Post("message", c.Send)
	h.Get(":conversation_id/messages", c.Messages)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Error(ctx, apperr.ErrMessageRequired)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Error(ctx, apperr.ErrMessageRequired)
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *chatController) Messages(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	conversationId, err := uuid.Parse(ctx.Params("conversation_id"))
	if err != nil {
		return serverutils.Error(ctx, apperr.ErrConversationNotFound)
	}

	res, err := c.chatService.GetMessages(ctx.Context(), userId, conversationId)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}
