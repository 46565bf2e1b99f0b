package controller

import (
	"errors"

	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/pkg/serverutils"
	"nec-chat-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetAllUsers(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
	CreateUser(ctx *fiber.Ctx) error
	UpdateUser(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
}

type userController struct {
	service  service.IUserService
	validate *validator.Validate
}

func NewUserController(service service.IUserService, validate *validator.Validate) IUserController {
	return &userController{service: service, validate: validate}
}

// All user management routes are admin-only.
func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users", serverutils.JwtMiddleware, serverutils.AdminOnly)
	h.Get("/", c.GetAllUsers)
	h.Post("/", c.CreateUser)
	h.Get("/:id", c.GetUser)
	h.Put("/:id", c.UpdateUser)
	h.Delete("/:id", c.DeleteUser)
}

func (c *userController) GetAllUsers(ctx *fiber.Ctx) error {
	users, err := c.service.GetAllUsers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Users fetched successfully",
		"data":    users,
	})
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid user id",
		})
	}

	user, err := c.service.GetUser(ctx.Context(), userId)
	if err != nil {
		return userError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "User fetched successfully",
		"data":    user,
	})
}

func (c *userController) CreateUser(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	user, err := c.service.CreateUser(ctx.Context(), &req)
	if err != nil {
		return userError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "User created successfully",
		"data":    user,
	})
}

func (c *userController) UpdateUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid user id",
		})
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	user, err := c.service.UpdateUser(ctx.Context(), userId, &req)
	if err != nil {
		return userError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "User updated successfully",
		"data":    user,
	})
}

func (c *userController) DeleteUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid user id",
		})
	}

	if err := c.service.DeleteUser(ctx.Context(), userId); err != nil {
		return userError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "User deleted successfully",
		"data":    nil,
	})
}

// userError maps service sentinels onto HTTP statuses.
func userError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailInUse):
		code = fiber.StatusConflict
	}
	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": err.Error(),
	})
}
