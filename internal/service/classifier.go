package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/client"
	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrClassifierUnavailable the completion API failed to classify the query.
	ErrClassifierUnavailable = errors.New("classifier unavailable")
	// ErrGenerationUnavailable the completion API failed to generate a reply.
	ErrGenerationUnavailable = errors.New("reply generation unavailable")
)

const classifierPrompt = `You are a hotel chatbot assistant. Classify the user's message into one of these categories and respond with only the category name (no numbers or explanation):

- greeting: e.g. "Hi", "Hello", "Hey there"
- room_availability: e.g. "Do you have rooms?", "Is a room available on Aug 20?", "Are rooms vacant?"
- booking_request: e.g. "I want to book a room", "Can I book a room for 2 people?", "I'd like to make a reservation"
- facilities_info: e.g. "What facilities do you offer?", "Is there WiFi?", "Do you have a pool?"
- location_info: e.g. "Where is the hotel located?", "What's your address?", "How far are you from the beach?"
- general_question: any other valid query that doesn't fall into above
- unknown: if the message is irrelevant or can't be understood`

// Classifier assigns a category label to a guest query.
type Classifier struct {
	completer client.Completer
	maxTokens int
	logger    *zap.Logger
}

// NewClassifier creates a classifier
func NewClassifier(completer client.Completer, maxTokens int, logger *zap.Logger) *Classifier {
	return &Classifier{
		completer: completer,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Classify sends the query to the completion API and parses the label.
// Output that matches no known label falls back to general_question.
func (s *Classifier) Classify(ctx context.Context, query string) (model.Label, error) {
	messages := []client.Message{
		{Role: "system", Content: classifierPrompt},
		{Role: "user", Content: query},
	}

	raw, err := s.completer.Chat(ctx, messages, s.maxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	label, ok := parseLabel(raw)
	if !ok {
		s.logger.Warn("unparseable classifier output, falling back",
			zap.String("output", raw),
			zap.String("fallback", string(model.LabelGeneralQuestion)))
		return model.LabelGeneralQuestion, nil
	}

	s.logger.Info("query classified", zap.String("label", string(label)))
	return label, nil
}

// parseLabel normalizes the model output and matches it against the label set.
func parseLabel(raw string) (model.Label, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Trim(normalized, "\"'.`")

	for _, l := range model.KnownLabels() {
		if normalized == string(l) {
			return l, true
		}
	}

	// The model sometimes wraps the label in a sentence; accept a unique mention.
	var found model.Label
	hits := 0
	for _, l := range model.KnownLabels() {
		if strings.Contains(normalized, string(l)) {
			found = l
			hits++
		}
	}
	if hits == 1 {
		return found, true
	}

	return "", false
}
