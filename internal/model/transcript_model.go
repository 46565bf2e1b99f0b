package model

import (
	"time"

	"gorm.io/datatypes"
)

// TranscriptRecord is the durable key-value form of a chat transcript:
// one row per storage key, the whole message list as a JSON column.
// Overwritten on every save, never deleted.
type TranscriptRecord struct {
	Key       string         `gorm:"type:varchar(255);primaryKey"`
	Messages  datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (TranscriptRecord) TableName() string {
	return "chat_transcripts"
}
