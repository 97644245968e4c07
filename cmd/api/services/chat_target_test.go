package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveChatTargetSentinels(t *testing.T) {
	for _, raw := range []string{"", "null", "undefined", "  null  "} {
		target, err := ResolveChatTarget(raw)
		assert.NoError(t, err, "raw: %q", raw)
		assert.True(t, target.create, "raw: %q", raw)
	}
}

func TestResolveChatTargetValidHex(t *testing.T) {
	id := primitive.NewObjectID()
	target, err := ResolveChatTarget(id.Hex())
	assert.NoError(t, err)
	assert.False(t, target.create)
	assert.Equal(t, id, target.id)
}

func TestResolveChatTargetInvalid(t *testing.T) {
	for _, raw := range []string{"not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ResolveChatTarget(raw)
		assert.ErrorIs(t, err, ErrInvalidChatID, "raw: %q", raw)
	}
}
