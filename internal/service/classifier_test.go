package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/client"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCompleter canned completion client
type fakeCompleter struct {
	reply     string
	err       error
	calls     int
	messages  []client.Message
	maxTokens int
}

func (f *fakeCompleter) Chat(_ context.Context, messages []client.Message, maxTokens int) (string, error) {
	f.calls++
	f.messages = messages
	f.maxTokens = maxTokens
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestClassifyParsesLabels(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  model.Label
	}{
		{"exact", "booking_request", model.LabelBookingRequest},
		{"whitespace and case", "  Room_Availability\n", model.LabelRoomAvailability},
		{"quoted", `"facilities_info"`, model.LabelFacilitiesInfo},
		{"trailing period", "location_info.", model.LabelLocationInfo},
		{"wrapped in sentence", "The category is greeting", model.LabelGreeting},
		{"unknown passes through", "unknown", model.LabelUnknown},
		{"garbage falls back", "I cannot classify this message", model.LabelGeneralQuestion},
		{"ambiguous mention falls back", "greeting or booking_request", model.LabelGeneralQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{reply: tt.reply}
			classifier := NewClassifier(completer, 10, zap.NewNop())

			got, err := classifier.Classify(context.Background(), "hello")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySendsInstructionAndQuery(t *testing.T) {
	completer := &fakeCompleter{reply: "greeting"}
	classifier := NewClassifier(completer, 10, zap.NewNop())

	_, err := classifier.Classify(context.Background(), "Hi there")
	require.NoError(t, err)

	require.Len(t, completer.messages, 2)
	assert.Equal(t, "system", completer.messages[0].Role)
	assert.Contains(t, completer.messages[0].Content, "Classify the user's message")
	assert.Equal(t, "user", completer.messages[1].Role)
	assert.Equal(t, "Hi there", completer.messages[1].Content)
	assert.Equal(t, 10, completer.maxTokens)
}

func TestClassifyWrapsTransportFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	classifier := NewClassifier(completer, 10, zap.NewNop())

	_, err := classifier.Classify(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrClassifierUnavailable))
}
