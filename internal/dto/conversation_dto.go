package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveConversationRequest struct {
	UserId   uuid.UUID        `json:"userId" validate:"required"`
	Title    string           `json:"title" validate:"required"`
	Messages []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
}

type ChatMessageDTO struct {
	Sender  string `json:"sender" validate:"required,oneof=user bot"`
	Content string `json:"content"`
}

type ConversationResponse struct {
	Id        uuid.UUID        `json:"id"`
	UserId    uuid.UUID        `json:"userId"`
	Title     string           `json:"title"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Messages  []ChatMessageDTO `json:"messages,omitempty"`
}
