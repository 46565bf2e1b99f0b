package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type capturingPublisher struct {
	topics   []string
	payloads []dto.AuthEventMessage
}

func (p *capturingPublisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		var evt dto.AuthEventMessage
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		p.topics = append(p.topics, topic)
		p.payloads = append(p.payloads, evt)
	}
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func seedUser(t *testing.T, uow *fakeUow, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &entity.User{
		Id:           uuid.New(),
		Name:         "Ana Pérez",
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         entity.UserRoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, uow.userRepo.Create(context.Background(), user))
	return user
}

func TestLoginOpensSessionAndSignsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	uow := newFakeUow()
	user := seedUser(t, uow, "secret123")
	pub := &capturingPublisher{}
	svc := NewAuthService(&fakeFactory{uow: uow}, pub, nil, time.Hour, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "ana", res.User.Username)
	assert.NotEmpty(t, res.AccessToken)

	// Token claims
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.Id.String(), claims["user_id"])
	assert.Equal(t, "ana", claims["username"])
	assert.Equal(t, "USER", claims["role"])

	// One open session row
	require.Len(t, uow.sessionRepo.sessions, 1)
	for _, s := range uow.sessionRepo.sessions {
		assert.Equal(t, user.Id, s.UserId)
		assert.True(t, s.Open())
	}

	// USER_LOGIN published
	require.Len(t, pub.payloads, 1)
	assert.Equal(t, constant.AuthEventsTopic, pub.topics[0])
	assert.Equal(t, constant.EventUserLogin, pub.payloads[0].Event)
	assert.Equal(t, "test-agent", pub.payloads[0].Device)
}

func TestLoginRejectsUnknownEmailAndWrongPassword(t *testing.T) {
	uow := newFakeUow()
	seedUser(t, uow, "secret123")
	svc := NewAuthService(&fakeFactory{uow: uow}, &capturingPublisher{}, nil, time.Hour, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nadie@example.com", Password: "secret123",
	}, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ana@example.com", Password: "wrong",
	}, "")
	assert.ErrorIs(t, err, ErrWrongPassword)

	assert.Empty(t, uow.sessionRepo.sessions, "failed logins must not open sessions")
}

func TestLogoutClosesLatestOpenSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	uow := newFakeUow()
	seedUser(t, uow, "secret123")
	pub := &capturingPublisher{}
	svc := NewAuthService(&fakeFactory{uow: uow}, pub, nil, time.Hour, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ana@example.com", Password: "secret123",
	}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), res.AccessToken))

	require.Len(t, uow.sessionRepo.sessions, 1)
	for _, s := range uow.sessionRepo.sessions {
		require.NotNil(t, s.TimeEnd, "session not closed")
		assert.False(t, s.TimeEnd.Before(s.TimeInit))
		assert.GreaterOrEqual(t, s.TimeDuration, int64(0))
	}

	require.Len(t, pub.payloads, 2)
	assert.Equal(t, constant.EventUserLogout, pub.payloads[1].Event)
}

func TestLogoutToleratesGarbageToken(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(&fakeFactory{uow: uow}, &capturingPublisher{}, nil, time.Hour, nil)

	assert.NoError(t, svc.Logout(context.Background(), ""))
	assert.NoError(t, svc.Logout(context.Background(), "not.a.jwt"))
}
