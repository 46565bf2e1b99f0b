package service

import (
	"context"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/pkg/logger"
	"nec-chat-be/pkg/answer"
)

type IChatService interface {
	Prompt(ctx context.Context, username, query string) (*dto.ChatPromptResponse, error)
}

// chatService is the thin REST-side face of the answer client. Upstream
// failures never propagate: callers always get a well-formed status and a
// user-facing text.
type chatService struct {
	answers answer.Service
	log     logger.ILogger
}

func NewChatService(answers answer.Service, log logger.ILogger) IChatService {
	return &chatService{answers: answers, log: log}
}

func (s *chatService) Prompt(ctx context.Context, username, query string) (*dto.ChatPromptResponse, error) {
	resp, err := s.answers.Ask(ctx, username, query)
	if err != nil {
		if s.log != nil {
			s.log.Error("ChatService", "answer service request failed", map[string]interface{}{
				"username": username,
				"error":    err.Error(),
			})
		}
		return &dto.ChatPromptResponse{
			Status: string(answer.StatusBad),
			Answer: constant.ChatProcessFailureText,
		}, nil
	}

	return &dto.ChatPromptResponse{
		Status: string(resp.Status),
		Answer: resp.Answer,
	}, nil
}
