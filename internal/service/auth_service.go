package service

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/pkg/logger"
	"nec-chat-be/internal/repository/specification"
	"nec-chat-be/internal/repository/unitofwork"

	"nec-chat-be/pkg/events"
	pktNats "nec-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	publisher      message.Publisher
	eventPublisher *pktNats.Publisher
	tokenTTL       time.Duration
	log            logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, publisher message.Publisher, eventPublisher *pktNats.Publisher, tokenTTL time.Duration, log logger.ILogger) IAuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &authService{
		uowFactory:     uowFactory,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		tokenTTL:       tokenTTL,
		log:            log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check if user exists
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 2. Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrWrongPassword
	}

	// 3. Open a login session row; TimeEnd stays NULL until logout.
	session := &entity.LoginSession{
		Id:       uuid.New(),
		UserId:   user.Id,
		TimeInit: time.Now(),
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	// 4. Generate JWT
	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(jwtSecret()))
	if err != nil {
		return nil, err
	}

	s.publishAuthEvent(ctx, constant.EventUserLogin, user, userAgent)

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Role:     string(user.Role),
		},
	}, nil
}

// Logout closes the latest open login session of the token's owner and
// records its duration. A missing or unparsable token is not an error:
// the controller clears the cookies regardless.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret()), nil
	})
	if err != nil {
		return nil
	}

	rawID, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawID)
	if err != nil {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return err
	}

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OpenSessions{},
		specification.OrderBy{Field: "time_init", Desc: true},
	)
	if err != nil {
		return err
	}
	if session != nil {
		now := time.Now()
		session.TimeEnd = &now
		session.TimeDuration = int64(now.Sub(session.TimeInit).Seconds())
		if err := uow.SessionRepository().Update(ctx, session); err != nil {
			return err
		}
	}

	s.publishAuthEvent(ctx, constant.EventUserLogout, user, "")
	return nil
}

// publishAuthEvent fans the event out to the in-process bus (drained into
// system_logs) and, when configured, mirrors it to NATS. Failures are
// logged and swallowed: auth must not depend on the event path.
func (s *authService) publishAuthEvent(ctx context.Context, eventType string, user *entity.User, device string) {
	evt := dto.AuthEventMessage{
		Event:      eventType,
		UserId:     user.Id,
		Username:   user.Username,
		Device:     device,
		OccurredAt: time.Now(),
	}

	if s.publisher != nil {
		payload, err := json.Marshal(evt)
		if err == nil {
			msg := message.NewMessage(watermill.NewUUID(), payload)
			if err = s.publisher.Publish(constant.AuthEventsTopic, msg); err != nil && s.log != nil {
				s.log.Warn("AuthService", "failed to publish auth event", map[string]interface{}{
					"event": eventType,
					"error": err.Error(),
				})
			}
		}
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"user_id":  user.Id,
				"username": user.Username,
				"device":   device,
			},
			OccurredAt: evt.OccurredAt,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil && s.log != nil {
			s.log.Warn("AuthService", "failed to mirror auth event to nats", map[string]interface{}{
				"event": eventType,
				"error": err.Error(),
			})
		}
	}
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return secret
}
