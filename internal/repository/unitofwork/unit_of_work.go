package unitofwork

import (
	"context"

	"nec-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SessionRepository() contract.SessionRepository
	ConversationRepository() contract.ConversationRepository
	SystemLogRepository() contract.SystemLogRepository
}
