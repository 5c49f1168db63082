package controller

import (
	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/pkg/serverutils"
	"legal-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
	authService   service.IAuthService
}

func NewSearchController(searchService service.ISearchService, authService service.IAuthService) ISearchController {
	return &searchController{
		searchService: searchService,
		authService:   authService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(SessionTouchMiddleware(c.authService))
	h.Post("", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Error(ctx, apperr.ErrQueryRequired)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Error(ctx, apperr.ErrQueryRequired)
	}

	res, err := c.searchService.Search(ctx.Context(), &req)
	if err != nil {
		return serverutils.Error(ctx, err)
	}

	return ctx.JSON(res)
}
