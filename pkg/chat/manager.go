package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/pkg/logger"
	"nec-chat-be/pkg/answer"
)

// ErrBusy is returned by Send when a request is already in flight; the
// pending request has been cancelled in its place.
var ErrBusy = errors.New("chat: request already in flight")

type Config struct {
	// Username partitions the transcript; it is a conversation key, not a
	// credential. Empty means anonymous.
	Username string

	Answers   answer.Service
	Store     TranscriptStore
	TypeDelay time.Duration
	Logger    logger.ILogger

	// OnChange fires after every state change, while the manager lock is
	// held. It must not call back into the Manager.
	OnChange func(Snapshot)
}

// Manager owns one conversation: the message list, the round trip to the
// answer service and the typed reveal of replies. All mutations are
// sequential; at most one Send cycle runs at a time.
type Manager struct {
	mu        sync.Mutex
	username  string
	answers   answer.Service
	store     TranscriptStore
	typeDelay time.Duration
	logger    logger.ILogger
	onChange  func(Snapshot)

	messages []Message
	phase    Phase
	cancelFn context.CancelFunc
}

func NewManager(ctx context.Context, cfg Config) (*Manager, error) {
	if cfg.Answers == nil {
		return nil, errors.New("chat: answer service is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("chat: transcript store is required")
	}
	if cfg.TypeDelay <= 0 {
		cfg.TypeDelay = constant.DefaultTypeDelay
	}

	m := &Manager{
		username:  cfg.Username,
		answers:   cfg.Answers,
		store:     cfg.Store,
		typeDelay: cfg.TypeDelay,
		logger:    cfg.Logger,
		onChange:  cfg.OnChange,
	}
	m.restore(ctx)
	return m, nil
}

// restore loads the saved transcript, or seeds the greeting when the user
// has no history yet. Store failures degrade to a fresh conversation.
func (m *Manager) restore(ctx context.Context) {
	saved, found, err := m.store.Load(ctx, StorageKey(m.username))
	if err != nil {
		m.logError("failed to load transcript", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if found && len(saved) > 0 {
		m.messages = saved
	} else {
		m.messages = []Message{{Sender: constant.ChatSenderBot, Content: constant.ChatGreeting}}
		m.persistLocked()
	}
	m.notifyLocked()
}

// Send runs one full prompt/answer cycle: user message plus placeholder,
// remote call, then the character-by-character reveal. It blocks until the
// cycle ends, so callers drive it from their own goroutine. A blank prompt
// is a no-op; a Send while non-idle cancels the in-flight cycle instead.
func (m *Manager) Send(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil
	}

	m.mu.Lock()
	if m.phase != PhaseIdle {
		m.mu.Unlock()
		m.Cancel()
		return ErrBusy
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancelFn = cancel
	m.phase = PhaseSending
	m.messages = append(m.messages,
		Message{Sender: constant.ChatSenderUser, Content: prompt},
		Message{Sender: constant.ChatSenderBot, Content: ""},
	)
	m.persistLocked()
	m.notifyLocked()
	m.mu.Unlock()

	defer func() {
		cancel()
		m.mu.Lock()
		m.phase = PhaseIdle
		m.cancelFn = nil
		m.persistLocked()
		m.notifyLocked()
		m.mu.Unlock()
	}()

	res, err := m.answers.Ask(runCtx, m.username, prompt)
	if err != nil {
		if runCtx.Err() != nil {
			m.settleCancelled()
			return nil
		}
		m.logError("answer request failed", err)
		res = answer.Response{Status: answer.StatusBad, Answer: constant.ChatFetchFailedText}
	}

	text := res.DisplayText()
	if text == "" {
		text = constant.ChatEmptyAnswerText
	}

	m.mu.Lock()
	m.dropPlaceholderLocked()
	m.phase = PhaseTyping
	m.notifyLocked()
	m.mu.Unlock()

	m.typeOut(runCtx, text)
	return nil
}

// Cancel aborts the in-flight network call or typing loop. Calling it while
// idle does nothing.
func (m *Manager) Cancel() {
	m.mu.Lock()
	cancel := m.cancelFn
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// typeOut reveals text into the trailing bot message one rune at a time,
// checking the cancellation token before every append.
func (m *Manager) typeOut(ctx context.Context, text string) {
	for _, r := range text {
		if ctx.Err() != nil {
			m.settleCancelled()
			return
		}

		m.mu.Lock()
		m.appendRuneLocked(r)
		m.persistLocked()
		m.notifyLocked()
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			m.settleCancelled()
			return
		case <-time.After(m.typeDelay):
		}
	}
}

// settleCancelled leaves whatever was typed in place, drops a still-empty
// placeholder and appends the terminal cancellation notice.
func (m *Manager) settleCancelled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropPlaceholderLocked()
	m.messages = append(m.messages, Message{Sender: constant.ChatSenderBot, Content: constant.ChatCancelledText})
	m.persistLocked()
	m.notifyLocked()
}

func (m *Manager) appendRuneLocked(r rune) {
	if n := len(m.messages); n > 0 && m.messages[n-1].Sender == constant.ChatSenderBot {
		m.messages[n-1].Content += string(r)
		return
	}
	m.messages = append(m.messages, Message{Sender: constant.ChatSenderBot, Content: string(r)})
}

func (m *Manager) dropPlaceholderLocked() {
	if n := len(m.messages); n > 0 &&
		m.messages[n-1].Sender == constant.ChatSenderBot &&
		m.messages[n-1].Content == "" {
		m.messages = m.messages[:n-1]
	}
}

func (m *Manager) persistLocked() {
	data := make([]Message, len(m.messages))
	copy(data, m.messages)
	if err := m.store.Save(context.Background(), StorageKey(m.username), data); err != nil {
		m.logError("failed to save transcript", err)
	}
}

func (m *Manager) notifyLocked() {
	if m.onChange == nil {
		return
	}
	m.onChange(m.snapshotLocked())
}

func (m *Manager) snapshotLocked() Snapshot {
	msgs := make([]Message, len(m.messages))
	copy(msgs, m.messages)
	return Snapshot{
		Messages:  msgs,
		IsLoading: m.phase != PhaseIdle,
		IsTyping:  m.phase == PhaseTyping,
	}
}

// Snapshot returns a copy of the current conversation state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Messages returns a copy of the transcript.
func (m *Manager) Messages() []Message {
	return m.Snapshot().Messages
}

func (m *Manager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

func (m *Manager) logError(msg string, err error) {
	if m.logger == nil {
		return
	}
	m.logger.Error("Chat", msg, map[string]interface{}{
		"username": m.username,
		"error":    err.Error(),
	})
}
