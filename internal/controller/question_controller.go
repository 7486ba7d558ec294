package controller

import (
	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	GetInterestQuestions(ctx *fiber.Ctx) error
	GetTechQuestions(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
}

func NewQuestionController(service service.IQuestionService) IQuestionController {
	return &questionController{service: service}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/questions")
	h.Get("/interest", c.GetInterestQuestions)
	h.Get("/tech", c.GetTechQuestions)
}

func (c *questionController) GetInterestQuestions(ctx *fiber.Ctx) error {
	res, err := c.service.GetInterestQuestions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Interest questions", res))
}

func (c *questionController) GetTechQuestions(ctx *fiber.Ctx) error {
	var query dto.TechQuestionQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewBadRequest("Invalid query")
	}

	res, err := c.service.GetTechQuestions(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tech questions", res))
}
