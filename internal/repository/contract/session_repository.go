package contract

import (
	"context"

	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.LoginSession) error
	Update(ctx context.Context, session *entity.LoginSession) error
	DeleteByUser(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LoginSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LoginSession, error)
}
