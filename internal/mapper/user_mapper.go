package mapper

import (
	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entity.UserRole(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Sessions:     m.SessionsToEntities(u.Sessions),
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

// Session Mappers

func (m *UserMapper) SessionToEntity(s *model.LoginSession) *entity.LoginSession {
	if s == nil {
		return nil
	}
	return &entity.LoginSession{
		Id:           s.Id,
		UserId:       s.UserId,
		TimeInit:     s.TimeInit,
		TimeEnd:      s.TimeEnd,
		TimeDuration: s.TimeDuration,
	}
}

func (m *UserMapper) SessionToModel(s *entity.LoginSession) *model.LoginSession {
	if s == nil {
		return nil
	}
	return &model.LoginSession{
		Id:           s.Id,
		UserId:       s.UserId,
		TimeInit:     s.TimeInit,
		TimeEnd:      s.TimeEnd,
		TimeDuration: s.TimeDuration,
	}
}

func (m *UserMapper) SessionsToEntities(sessions []model.LoginSession) []entity.LoginSession {
	entities := make([]entity.LoginSession, len(sessions))
	for i := range sessions {
		entities[i] = *m.SessionToEntity(&sessions[i])
	}
	return entities
}
