package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []ConversationMessage
}

type ConversationMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Sender         string
	Content        string
	Position       int
	CreatedAt      time.Time
}
