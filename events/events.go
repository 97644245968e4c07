package events

import (
	"time"

	"github.com/google/uuid"
)

// Type 이벤트 타입 정의
type Type string

const (
	SessionCreated  Type = "chat.session_created"
	MessageAnswered Type = "chat.message_answered"
)

// ChatEvent is the payload published for every chat lifecycle event.
// Analytics consumers key on ChatID; the message texts are deliberately
// not included.
type ChatEvent struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	ChatID    string    `json:"chat_id"`
	Emergency bool      `json:"emergency,omitempty"`
	LatencyMs int64     `json:"latency_ms,omitempty"`
}

// NewChatEvent fills in the identity and timestamp fields.
func NewChatEvent(t Type, chatID string) ChatEvent {
	return ChatEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		ChatID:    chatID,
	}
}

// Publisher delivers chat events to the event stream. Implementations must
// be safe for concurrent use.
type Publisher interface {
	Publish(event ChatEvent)
	Close()
}
