package controller

import (
	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/pkg/serverutils"
	"legal-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type conversationController struct {
	conversationService service.IConversationService
	authService         service.IAuthService
}

func NewConversationController(conversationService service.IConversationService, authService service.IAuthService) IConversationController {
	return &conversationController{
		conversationService: conversationService,
		authService:         authService,
	}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(SessionTouchMiddleware(c.authService))
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *conversationController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorMessage(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Error(ctx, err)
	}

	res, err := c.conversationService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *conversationController) Index(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.conversationService.GetAll(ctx.Context(), userId)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *conversationController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.Error(ctx, apperr.ErrConversationNotFound)
	}

	res, err := c.conversationService.GetOne(ctx.Context(), userId, id)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *conversationController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.Error(ctx, apperr.ErrConversationNotFound)
	}

	var req dto.UpdateConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorMessage(ctx, "Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Error(ctx, err)
	}

	res, err := c.conversationService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *conversationController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.Error(ctx, apperr.ErrConversationNotFound)
	}

	if err := c.conversationService.Delete(ctx.Context(), userId, id); err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}
