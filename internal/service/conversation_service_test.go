package service

import (
	"context"
	"testing"
	"time"

	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConversationUser(uow *fakeUow) *entity.User {
	user := &entity.User{
		Id:       uuid.New(),
		Name:     "Ana",
		Username: "ana",
		Email:    "ana@example.com",
		Role:     entity.UserRoleUser,
	}
	_ = uow.userRepo.Create(context.Background(), user)
	return user
}

func TestSaveConversationKeepsMessageOrder(t *testing.T) {
	uow := newFakeUow()
	user := seedConversationUser(uow)
	svc := NewConversationService(&fakeFactory{uow: uow})

	res, err := svc.SaveConversation(context.Background(), &dto.SaveConversationRequest{
		UserId: user.Id,
		Title:  "Consulta de facturación",
		Messages: []dto.ChatMessageDTO{
			{Sender: "bot", Content: "Hola"},
			{Sender: "user", Content: "Necesito ayuda"},
			{Sender: "bot", Content: "Claro"},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 3)
	assert.Equal(t, "Hola", res.Messages[0].Content)
	assert.Equal(t, "Necesito ayuda", res.Messages[1].Content)
	assert.Equal(t, "Claro", res.Messages[2].Content)

	stored := uow.conversationRepo.conversations[res.Id]
	require.NotNil(t, stored)
	for i, m := range stored.Messages {
		assert.Equal(t, i, m.Position)
	}
}

func TestSaveConversationRejectsUnknownUser(t *testing.T) {
	svc := NewConversationService(&fakeFactory{uow: newFakeUow()})

	_, err := svc.SaveConversation(context.Background(), &dto.SaveConversationRequest{
		UserId:   uuid.New(),
		Title:    "x",
		Messages: []dto.ChatMessageDTO{{Sender: "user", Content: "hola"}},
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetConversationsListsNewestFirstWithoutMessages(t *testing.T) {
	uow := newFakeUow()
	user := seedConversationUser(uow)
	svc := NewConversationService(&fakeFactory{uow: uow})

	old := &entity.Conversation{Id: uuid.New(), UserId: user.Id, Title: "vieja", CreatedAt: time.Now().Add(-time.Hour)}
	recent := &entity.Conversation{Id: uuid.New(), UserId: user.Id, Title: "nueva", CreatedAt: time.Now()}
	other := &entity.Conversation{Id: uuid.New(), UserId: uuid.New(), Title: "ajena", CreatedAt: time.Now()}
	for _, c := range []*entity.Conversation{old, recent, other} {
		require.NoError(t, uow.conversationRepo.Create(context.Background(), c))
	}

	list, err := svc.GetConversations(context.Background(), user.Id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "nueva", list[0].Title)
	assert.Equal(t, "vieja", list[1].Title)
	assert.Empty(t, list[0].Messages)
}

func TestGetConversationNotFound(t *testing.T) {
	svc := NewConversationService(&fakeFactory{uow: newFakeUow()})

	_, err := svc.GetConversation(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
