package chat

import (
	"context"
	"encoding/json"
	"errors"

	"nec-chat-be/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists transcripts as chat_transcripts rows, the whole
// message list as one JSON column per key.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, key string) ([]Message, bool, error) {
	var rec model.TranscriptRecord
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var messages []Message
	if err := json.Unmarshal(rec.Messages, &messages); err != nil {
		return nil, false, err
	}
	return messages, true, nil
}

func (s *GormStore) Save(ctx context.Context, key string, messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	rec := model.TranscriptRecord{Key: key, Messages: data}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, UpdateAll: true}).
		Create(&rec).Error
}
