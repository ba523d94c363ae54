package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReplySendsPersonaAndContext(t *testing.T) {
	completer := &fakeCompleter{reply: "We have two rooms free. Anything else I can help with?"}
	responder := NewResponder(completer, 300, zap.NewNop())

	got, err := responder.Reply(context.Background(), "Any rooms on Aug 20?", "Room: Veranda Room\nDescription: Ocean view")
	require.NoError(t, err)
	assert.Equal(t, "We have two rooms free. Anything else I can help with?", got)

	require.Len(t, completer.messages, 2)
	assert.Equal(t, "system", completer.messages[0].Role)
	assert.Contains(t, completer.messages[0].Content, "You are Maya")
	assert.Equal(t, "user", completer.messages[1].Role)
	assert.Equal(t, "Query: Any rooms on Aug 20?\nContext: Room: Veranda Room\nDescription: Ocean view", completer.messages[1].Content)
	assert.Equal(t, 300, completer.maxTokens)
}

func TestReplyWrapsTransportFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("api returned 500")}
	responder := NewResponder(completer, 300, zap.NewNop())

	_, err := responder.Reply(context.Background(), "hello", "context")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationUnavailable))
}
