package controller

import (
	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetLearningPaths(ctx *fiber.Ctx) error
	GetCourses(ctx *fiber.Ctx) error
	GetTutorials(ctx *fiber.Ctx) error
	GetCourseLevels(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/learning-paths", c.GetLearningPaths)
	r.Get("/courses", c.GetCourses)
	r.Get("/tutorials", c.GetTutorials)
	r.Get("/course-levels", c.GetCourseLevels)
}

func (c *catalogController) GetLearningPaths(ctx *fiber.Ctx) error {
	res, err := c.service.GetLearningPaths(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessSourcedResponse("Learning paths", res.Source, res.Items))
}

func (c *catalogController) GetCourses(ctx *fiber.Ctx) error {
	var query dto.CourseQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewBadRequest("Invalid query")
	}

	res, err := c.service.GetCourses(ctx.Context(), query.LearningPathId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessSourcedResponse("Courses", res.Source, res.Items))
}

func (c *catalogController) GetTutorials(ctx *fiber.Ctx) error {
	var query dto.TutorialQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewBadRequest("Invalid query")
	}

	res, err := c.service.GetTutorials(ctx.Context(), query.CourseId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessSourcedResponse("Tutorials", res.Source, res.Items))
}

func (c *catalogController) GetCourseLevels(ctx *fiber.Ctx) error {
	res, err := c.service.GetCourseLevels(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessSourcedResponse("Course levels", res.Source, res.Items))
}
