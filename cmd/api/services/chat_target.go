package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatTarget is the resolved destination of a send operation: either a
// brand-new session or an existing one. It replaces sentinel id strings at
// the service boundary.
type ChatTarget struct {
	create bool
	id     primitive.ObjectID
}

func CreateChat() ChatTarget { return ChatTarget{create: true} }

func UseExistingChat(id primitive.ObjectID) ChatTarget { return ChatTarget{id: id} }

// ResolveChatTarget maps a path-supplied chat id to a ChatTarget. The
// sentinel values "", "null" and "undefined" mean "no id, create one";
// anything else must parse as a valid object id.
func ResolveChatTarget(raw string) (ChatTarget, error) {
	switch strings.TrimSpace(raw) {
	case "", "null", "undefined":
		return CreateChat(), nil
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return ChatTarget{}, ErrInvalidChatID
	}
	return UseExistingChat(id), nil
}
