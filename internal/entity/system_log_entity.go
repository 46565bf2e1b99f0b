package entity

import (
	"time"

	"github.com/google/uuid"
)

type SystemLog struct {
	Id        uuid.UUID
	Event     string
	UserId    *uuid.UUID
	Username  *string
	Details   *string
	CreatedAt time.Time
}
