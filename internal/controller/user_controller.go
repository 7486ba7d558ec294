package controller

import (
	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	GetByEmail(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/users")
	h.Post("/", c.Create)
	h.Get("/me", authMiddleware, c.Me) // before /:id
	h.Get("/email/:email", c.GetByEmail)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User created", res))
}

func (c *userController) GetById(ctx *fiber.Ctx) error {
	res, err := c.service.GetById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User", res))
}

func (c *userController) GetByEmail(ctx *fiber.Ctx) error {
	res, err := c.service.GetByEmail(ctx.Context(), ctx.Params("email"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}

	res, err := c.service.Update(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User updated", res))
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)

	res, err := c.service.GetById(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}
