package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

type User struct {
	Id           uuid.UUID
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Sessions []LoginSession
}

type LoginSession struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	TimeInit     time.Time
	TimeEnd      *time.Time
	TimeDuration int64
}

// Open reports whether the session has not been closed yet.
func (s LoginSession) Open() bool {
	return s.TimeEnd == nil
}
