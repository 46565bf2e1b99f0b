package service

import (
	"context"
	"time"

	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/repository/specification"
	"nec-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IConversationService interface {
	SaveConversation(ctx context.Context, req *dto.SaveConversationRequest) (*dto.ConversationResponse, error)
	GetConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error)
	GetConversation(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationResponse, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{uowFactory: uowFactory}
}

func (s *conversationService) SaveConversation(ctx context.Context, req *dto.SaveConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The owning user must exist; a snapshot for a deleted account is
	// rejected instead of leaving an orphan row.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	conversation := &entity.Conversation{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Title:     req.Title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for i, m := range req.Messages {
		conversation.Messages = append(conversation.Messages, entity.ConversationMessage{
			Id:             uuid.New(),
			ConversationId: conversation.Id,
			Sender:         m.Sender,
			Content:        m.Content,
			Position:       i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}
	return toConversationResponse(conversation, true), nil
}

// GetConversations lists a user's saved snapshots newest first, without
// message bodies.
func (s *conversationService) GetConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		responses[i] = toConversationResponse(c, false)
	}
	return responses, nil
}

func (s *conversationService) GetConversation(ctx context.Context, conversationId uuid.UUID) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.WithMessages{},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}
	return toConversationResponse(conversation, true), nil
}

func toConversationResponse(c *entity.Conversation, includeMessages bool) *dto.ConversationResponse {
	resp := &dto.ConversationResponse{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if includeMessages {
		for _, m := range c.Messages {
			resp.Messages = append(resp.Messages, dto.ChatMessageDTO{
				Sender:  m.Sender,
				Content: m.Content,
			})
		}
	}
	return resp
}
