package service

import (
	"context"
	"sort"
	"sync"

	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/repository/contract"
	"nec-chat-be/internal/repository/specification"
	"nec-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes. Specifications are interpreted by type
// switch, covering the subset the services actually use.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if matchUser(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if matchUser(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if u.Id != spec.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != spec.Email {
				return false
			}
		case specification.ByUsername:
			if u.Username != spec.Username {
				return false
			}
		}
	}
	return true
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.LoginSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.LoginSession)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.LoginSession) error {
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *entity.LoginSession) error {
	cp := *session
	r.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) DeleteByUser(_ context.Context, userId uuid.UUID) error {
	for id, s := range r.sessions {
		if s.UserId == userId {
			delete(r.sessions, id)
		}
	}
	return nil
}

func (r *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.LoginSession, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeSessionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.LoginSession, error) {
	var out []*entity.LoginSession
	for _, s := range r.sessions {
		if matchSession(s, specs) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeInit.After(out[j].TimeInit) })
	return out, nil
}

func matchSession(s *entity.LoginSession, specs []specification.Specification) bool {
	for _, raw := range specs {
		switch spec := raw.(type) {
		case specification.UserOwnedBy:
			if s.UserId != spec.UserID {
				return false
			}
		case specification.OpenSessions:
			if !s.Open() {
				return false
			}
		}
	}
	return true
}

type fakeConversationRepo struct {
	conversations map[uuid.UUID]*entity.Conversation
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: make(map[uuid.UUID]*entity.Conversation)}
}

func (r *fakeConversationRepo) Create(_ context.Context, conversation *entity.Conversation) error {
	cp := *conversation
	r.conversations[conversation.Id] = &cp
	return nil
}

func (r *fakeConversationRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeConversationRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, c := range r.conversations {
		if matchConversation(c, specs) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func matchConversation(c *entity.Conversation, specs []specification.Specification) bool {
	for _, raw := range specs {
		switch spec := raw.(type) {
		case specification.ByID:
			if c.Id != spec.ID {
				return false
			}
		case specification.UserOwnedBy:
			if c.UserId != spec.UserID {
				return false
			}
		}
	}
	return true
}

// fakeSystemLogRepo is written to from the consumer goroutine, so it
// locks.
type fakeSystemLogRepo struct {
	mu   sync.Mutex
	logs []*entity.SystemLog
}

func (r *fakeSystemLogRepo) Create(_ context.Context, log *entity.SystemLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeSystemLogRepo) Snapshot() []*entity.SystemLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.SystemLog, len(r.logs))
	copy(out, r.logs)
	return out
}

type fakeUow struct {
	userRepo         *fakeUserRepo
	sessionRepo      *fakeSessionRepo
	conversationRepo *fakeConversationRepo
	systemLogRepo    *fakeSystemLogRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		userRepo:         newFakeUserRepo(),
		sessionRepo:      newFakeSessionRepo(),
		conversationRepo: newFakeConversationRepo(),
		systemLogRepo:    &fakeSystemLogRepo{},
	}
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                 { return u.userRepo }
func (u *fakeUow) SessionRepository() contract.SessionRepository           { return u.sessionRepo }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository { return u.conversationRepo }
func (u *fakeUow) SystemLogRepository() contract.SystemLogRepository       { return u.systemLogRepo }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }
