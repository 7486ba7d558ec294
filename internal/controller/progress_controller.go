package controller

import (
	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	GetProgress(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	UpdateProgress(ctx *fiber.Ctx) error
	GetActivity(ctx *fiber.Ctx) error
}

type progressController struct {
	service service.IProgressService
}

func NewProgressController(service service.IProgressService) IProgressController {
	return &progressController{service: service}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress")
	h.Get("/", c.GetProgress)
	h.Get("/stats", c.GetStats)
	h.Get("/activity", c.GetActivity)
	h.Post("/update", c.UpdateProgress)
}

func (c *progressController) GetProgress(ctx *fiber.Ctx) error {
	var query dto.ProgressQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewBadRequest("Invalid query")
	}

	res, err := c.service.GetProgress(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Learner progress", res))
}

func (c *progressController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context(), ctx.Query("email"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Progress stats", res))
}

func (c *progressController) UpdateProgress(ctx *fiber.Ctx) error {
	var req dto.UpdateProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateProgress(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Progress updated", res))
}

func (c *progressController) GetActivity(ctx *fiber.Ctx) error {
	var query dto.ActivityQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewBadRequest("Invalid query")
	}

	res, err := c.service.GetActivity(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Progress activity", res))
}
