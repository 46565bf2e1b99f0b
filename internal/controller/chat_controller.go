package controller

import (
	"context"
	"time"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/pkg/logger"
	"nec-chat-be/internal/pkg/serverutils"
	"nec-chat-be/internal/service"
	internalWS "nec-chat-be/internal/websocket"
	"nec-chat-be/pkg/answer"
	"nec-chat-be/pkg/chat"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Prompt(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type chatController struct {
	service   service.IChatService
	answers   answer.Service
	store     chat.TranscriptStore
	typeDelay time.Duration
	validate  *validator.Validate
	logger    logger.ILogger
}

func NewChatController(
	service service.IChatService,
	answers answer.Service,
	store chat.TranscriptStore,
	typeDelay time.Duration,
	validate *validator.Validate,
	log logger.ILogger,
) IChatController {
	return &chatController{
		service:   service,
		answers:   answers,
		store:     store,
		typeDelay: typeDelay,
		validate:  validate,
		logger:    log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/prompt", serverutils.JwtMiddleware, c.Prompt)
	h.Get("/ws", serverutils.JwtMiddleware, c.ServeWs)
}

// Prompt is the plain request/response path: one question, one answer,
// no typing reveal. The status is always well-formed for the frontend.
func (c *chatController) Prompt(ctx *fiber.Ctx) error {
	var req dto.ChatPromptRequest
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

	username := serverutils.LocalUsername(ctx)
	res, err := c.service.Prompt(ctx.Context(), username, req.Query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// ServeWs upgrades an authenticated request into a chat session. Each
// connection gets its own manager over the caller's stored transcript.
func (c *chatController) ServeWs(ctx *fiber.Ctx) error {
	username := serverutils.LocalUsername(ctx)
	if username == "" {
		username = constant.AnonymousUser
	}

	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		c.logger.Info("ChatController", "chat session started", map[string]interface{}{"username": username})

		session := internalWS.NewSession(conn, username, c.logger)
		manager, err := chat.NewManager(context.Background(), chat.Config{
			Username:  username,
			Answers:   c.answers,
			Store:     c.store,
			TypeDelay: c.typeDelay,
			Logger:    c.logger,
			OnChange:  session.PushState,
		})
		if err != nil {
			c.logger.Error("ChatController", "failed to start chat manager", map[string]interface{}{
				"username": username,
				"error":    err.Error(),
			})
			conn.Close()
			return
		}
		session.Bind(manager)
		session.Run(context.Background())

		c.logger.Info("ChatController", "chat session ended", map[string]interface{}{"username": username})
	})(ctx)
}
