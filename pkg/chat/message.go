// Package chat holds the conversation core: an in-memory transcript with a
// send/cancel state machine, simulated typing and per-user persistence.
package chat

import (
	"nec-chat-be/internal/constant"
)

type Message struct {
	Sender  string `json:"sender"` // "user" | "bot"
	Content string `json:"content"`
}

// Phase is the manager's position in the Idle → Sending → Typing cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSending
	PhaseTyping
)

func (p Phase) String() string {
	switch p {
	case PhaseSending:
		return "sending"
	case PhaseTyping:
		return "typing"
	default:
		return "idle"
	}
}

// Snapshot is the renderable view of a conversation at one point in time.
type Snapshot struct {
	Messages  []Message `json:"messages"`
	IsLoading bool      `json:"isLoading"`
	IsTyping  bool      `json:"isTyping"`
}

// StorageKey builds the per-user transcript key.
func StorageKey(username string) string {
	if username == "" {
		username = constant.AnonymousUser
	}
	return constant.TranscriptKeyPrefix + username
}
