package store

import (
	"sync"

	"github.com/pawlog/pawlog/internal/models"
)

// MaxChatMessages is the number of chat messages retained after every
// append. Older messages are discarded first.
const MaxChatMessages = 50

// ChatLog is a bounded, ordered in-memory collection of chat messages.
type ChatLog struct {
	mu       sync.RWMutex
	messages []*models.ChatMessage
}

// NewChatLog creates an empty chat log
func NewChatLog() *ChatLog {
	return &ChatLog{
		messages: make([]*models.ChatMessage, 0),
	}
}

// Append adds a user/ai message pair in that order, then truncates the
// log to the most recent MaxChatMessages entries.
func (l *ChatLog) Append(user, ai *models.ChatMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, user, ai)
	if excess := len(l.messages) - MaxChatMessages; excess > 0 {
		l.messages = append(l.messages[:0:0], l.messages[excess:]...)
	}
}

// History returns a chronological snapshot of the log
func (l *ChatLog) History() []*models.ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*models.ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of retained messages
func (l *ChatLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}
