package implementation

import (
	"context"

	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/model"
	"nec-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *entity.SystemLog) error {
	m := &model.SystemLog{
		Id:        log.Id,
		Event:     log.Event,
		UserId:    log.UserId,
		Username:  log.Username,
		Details:   log.Details,
		CreatedAt: log.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
