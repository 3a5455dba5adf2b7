package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageType distinguishes who authored a chat message
type MessageType string

const (
	MessageUser MessageType = "user"
	MessageAI   MessageType = "ai"
)

// ChatMessage represents one entry in the chat log. Messages are always
// appended as a user/ai pair in that order.
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	Type      MessageType `json:"type"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}
