package controller

import (
	"errors"

	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/pkg/serverutils"
	"nec-chat-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	SaveConversation(ctx *fiber.Ctx) error
	GetConversations(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
}

type conversationController struct {
	service  service.IConversationService
	validate *validator.Validate
}

func NewConversationController(service service.IConversationService, validate *validator.Validate) IConversationController {
	return &conversationController{service: service, validate: validate}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations", serverutils.JwtMiddleware)
	h.Post("/", c.SaveConversation)
	h.Get("/", c.GetConversations)
	h.Get("/:id", c.GetConversation)
}

func (c *conversationController) SaveConversation(ctx *fiber.Ctx) error {
	var req dto.SaveConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid request body",
		})
	}

	// The snapshot is always stored under the authenticated account,
	// whatever the body claims.
	if userId, ok := localUserId(ctx); ok {
		req.UserId = userId
	}

	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.SaveConversation(ctx.Context(), &req)
	if err != nil {
		return conversationError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Conversation saved successfully",
		"data":    res,
	})
}

func (c *conversationController) GetConversations(ctx *fiber.Ctx) error {
	userId, ok := localUserId(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	res, err := c.service.GetConversations(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Conversations fetched successfully",
		"data":    res,
	})
}

func (c *conversationController) GetConversation(ctx *fiber.Ctx) error {
	conversationId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid conversation id",
		})
	}

	res, err := c.service.GetConversation(ctx.Context(), conversationId)
	if err != nil {
		return conversationError(ctx, err)
	}

	// Owners and admins only.
	userId, _ := localUserId(ctx)
	role, _ := ctx.Locals("role").(string)
	if res.UserId != userId && entity.UserRole(role) != entity.UserRoleAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"code":    403,
			"message": "Forbidden",
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Conversation fetched successfully",
		"data":    res,
	})
}

func localUserId(ctx *fiber.Ctx) (uuid.UUID, bool) {
	raw, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userId, true
}

func conversationError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrUserNotFound):
		code = fiber.StatusNotFound
	}
	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": err.Error(),
	})
}
