package controller

import (
	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	GetRecommendations(ctx *fiber.Ctx) error
	GetOnboardingRecommendations(ctx *fiber.Ctx) error
	ReloadKeywords(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
}

func NewRecommendationController(service service.IRecommendationService) IRecommendationController {
	return &recommendationController{service: service}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/recommendation")
	h.Get("/", c.GetRecommendations)
	h.Post("/onboarding", c.GetOnboardingRecommendations)
	h.Post("/keywords/reload", authMiddleware, c.ReloadKeywords)
}

func (c *recommendationController) GetRecommendations(ctx *fiber.Ctx) error {
	var query dto.RecommendationQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewBadRequest("Invalid query")
	}

	res, err := c.service.GetRecommendations(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommendations", res))
}

func (c *recommendationController) GetOnboardingRecommendations(ctx *fiber.Ctx) error {
	var req dto.OnboardingRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewBadRequest("Invalid request body")
		}
	}

	res, err := c.service.GetOnboardingRecommendations(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Onboarding recommendations", res))
}

func (c *recommendationController) ReloadKeywords(ctx *fiber.Ctx) error {
	res, err := c.service.ReloadKeywords(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Skill keywords reloaded", res))
}
