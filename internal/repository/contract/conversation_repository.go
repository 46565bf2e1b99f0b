package contract

import (
	"context"

	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/repository/specification"
)

type ConversationRepository interface {
	// Create persists the conversation together with its messages.
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
}
