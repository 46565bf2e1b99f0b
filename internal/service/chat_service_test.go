package service

import (
	"context"
	"errors"
	"testing"

	"nec-chat-be/internal/constant"
	"nec-chat-be/pkg/answer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnswers struct {
	res answer.Response
	err error
}

func (s *stubAnswers) Ask(context.Context, string, string) (answer.Response, error) {
	return s.res, s.err
}

func TestPromptPassesAnswerThrough(t *testing.T) {
	svc := NewChatService(&stubAnswers{res: answer.Response{Status: answer.StatusGood, Answer: "hola"}}, nil)

	res, err := svc.Prompt(context.Background(), "ana", "pregunta")
	require.NoError(t, err)
	assert.Equal(t, "good", res.Status)
	assert.Equal(t, "hola", res.Answer)
}

func TestPromptDegradesOnUpstreamFailure(t *testing.T) {
	svc := NewChatService(&stubAnswers{err: errors.New("boom")}, nil)

	res, err := svc.Prompt(context.Background(), "ana", "pregunta")
	require.NoError(t, err, "upstream failures must not surface as errors")
	assert.Equal(t, "bad", res.Status)
	assert.Equal(t, constant.ChatProcessFailureText, res.Answer)
}
