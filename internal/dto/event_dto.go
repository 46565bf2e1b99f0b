package dto

import (
	"time"

	"github.com/google/uuid"
)

// AuthEventMessage is the payload published on the auth events topic and
// drained into system_logs by the consumer service.
type AuthEventMessage struct {
	Event      string    `json:"event"`
	UserId     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	Device     string    `json:"device,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
