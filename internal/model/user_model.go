package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'USER'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Sessions []LoginSession `gorm:"foreignKey:UserId"`
}

func (User) TableName() string {
	return "users"
}

// LoginSession is one login-to-logout interval. TimeEnd stays NULL while
// the session is open; TimeDuration is stamped in seconds at logout.
type LoginSession struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	TimeInit     time.Time `gorm:"not null;autoCreateTime"`
	TimeEnd      *time.Time
	TimeDuration int64 `gorm:"default:0"`
}

func (LoginSession) TableName() string {
	return "sessions"
}
