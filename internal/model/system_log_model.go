package model

import (
	"time"

	"github.com/google/uuid"
)

// SystemLog keeps the auth audit trail (USER_LOGIN / USER_LOGOUT events
// drained from the event bus by the consumer service).
type SystemLog struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Event     string     `gorm:"type:varchar(50);not null;index"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"`
	Username  *string    `gorm:"type:varchar(255)"`
	Details   *string    `gorm:"type:jsonb"`
	CreatedAt time.Time  `gorm:"default:now();not null;index"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
