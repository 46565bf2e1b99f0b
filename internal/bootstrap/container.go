package bootstrap

import (
	"context"
	"log"
	"time"

	"nec-chat-be/internal/config"
	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/controller"
	"nec-chat-be/internal/pkg/logger"
	"nec-chat-be/internal/repository/unitofwork"
	"nec-chat-be/internal/service"
	"nec-chat-be/pkg/answer"
	"nec-chat-be/pkg/chat"

	pktNats "nec-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	ConversationController controller.IConversationController
	ChatController         controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	validate := validator.New()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS mirror is optional; the in-process bus carries the audit trail
	// on its own.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Transcript Store
	store := newTranscriptStore(cfg, db)

	// 4. Answer Client
	answers := answer.NewClient(cfg.Answer.BaseURL, time.Duration(cfg.Answer.TimeoutSeconds)*time.Second)

	// 5. Services
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authService := service.NewAuthService(uowFactory, pubSub, natsPub, tokenTTL, sysLogger)
	userService := service.NewUserService(uowFactory)
	conversationService := service.NewConversationService(uowFactory)
	chatService := service.NewChatService(answers, sysLogger)
	consumerService := service.NewConsumerService(pubSub, constant.AuthEventsTopic, uowFactory)

	typeDelay := time.Duration(cfg.Chat.TypeDelayMs) * time.Millisecond

	return &Container{
		AuthController:         controller.NewAuthController(authService, validate, tokenTTL, cfg.App.Environment == "production"),
		UserController:         controller.NewUserController(userService, validate),
		ConversationController: controller.NewConversationController(conversationService, validate),
		ChatController:         controller.NewChatController(chatService, answers, store, typeDelay, validate, sysLogger),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

// newTranscriptStore picks the transcript backend. Redis and DB keep
// conversations across restarts; memory is the zero-config default.
func newTranscriptStore(cfg *config.Config, db *gorm.DB) chat.TranscriptStore {
	switch cfg.Chat.Store {
	case "redis":
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		return chat.NewRedisStore(rdb)
	case "db":
		return chat.NewGormStore(db)
	default:
		return chat.NewCacheStore()
	}
}
