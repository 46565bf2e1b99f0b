package mapper

import (
	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	messages := make([]entity.ConversationMessage, len(c.Messages))
	for i, msg := range c.Messages {
		messages[i] = entity.ConversationMessage{
			Id:             msg.Id,
			ConversationId: msg.ConversationId,
			Sender:         msg.Sender,
			Content:        msg.Content,
			Position:       msg.Position,
			CreatedAt:      msg.CreatedAt,
		}
	}
	return &entity.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  messages,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	messages := make([]model.ConversationMessage, len(c.Messages))
	for i, msg := range c.Messages {
		messages[i] = model.ConversationMessage{
			Id:             msg.Id,
			ConversationId: msg.ConversationId,
			Sender:         msg.Sender,
			Content:        msg.Content,
			Position:       msg.Position,
			CreatedAt:      msg.CreatedAt,
		}
	}
	return &model.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  messages,
	}
}

func (m *ConversationMapper) ToEntities(convs []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(convs))
	for i, c := range convs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
