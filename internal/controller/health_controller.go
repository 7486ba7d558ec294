package controller

import (
	"learning-buddy-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "Learning Buddy API"
	serviceVersion = "1.0.0"
)

type IHealthController interface {
	RegisterRoutes(app *fiber.App)
	Health(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
}

type healthController struct{}

func NewHealthController() IHealthController {
	return &healthController{}
}

func (c *healthController) RegisterRoutes(app *fiber.App) {
	app.Get("/", c.Index)
	app.Get("/api/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Status: "ok", Message: serviceName + " is running"})
}

func (c *healthController) Index(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.IndexResponse{Message: serviceName, Version: serviceVersion})
}
