package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultChatTitle is the placeholder title given to every new session.
const DefaultChatTitle = "New Chat"

// Message is one turn in a chat session. Ordering is the log's insertion
// order; messages carry no identifier or timestamp of their own.
type Message struct {
	Role string `bson:"role" json:"role"`
	Text string `bson:"text" json:"text"`
}

// ChatSession is a persisted, titled, ordered message log.
type ChatSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title     string             `bson:"title" json:"title"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	Messages  []Message          `bson:"messages" json:"messages"`
}
