package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// OpenSessions keeps only login sessions without a recorded end time.
type OpenSessions struct{}

func (s OpenSessions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("time_end IS NULL")
}

type WithSessions struct{}

func (s WithSessions) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Sessions")
}
