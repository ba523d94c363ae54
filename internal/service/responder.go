package service

import (
	"context"
	"fmt"

	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/client"
	"go.uber.org/zap"
)

const personaPrompt = `You are Maya, a polite, helpful, and professional hotel receptionist at Thira Beach Home.

Here are your rules:

1. If the query is about booking a room or availability, always ask for check-in/check-out dates and number of guests. Then if the month has already passed(months before August), tell that "Please pick an upcoming date". If asked about August and September fetch the data from data provided and answer acordingly. If asked about months after September, say that "I dont have any information on that date. For more information please contact(give the contact details)"
2. If the user asks about hotel facilities or services, provide relevant info from the hotel brochure.
3. If the user is confused or asks vague questions, politely ask for clarification.
4. Never mention you're an AI. Always speak as if you're a real receptionist.
5. Keep responses short,clear, helpful and precise answers based on the given context.
6. Always end your message with an invitation to ask more questions.
7. Be conversational and natural, not robotic or repetitive. If user repeats something, summarize what you said earlier and ask if they want more help
8. If a customer says that they want to book a room, please provide the contact number and ask them to contact.`

// Responder generates the receptionist reply from the query and its context.
type Responder struct {
	completer client.Completer
	maxTokens int
	logger    *zap.Logger
}

// NewResponder creates a responder
func NewResponder(completer client.Completer, maxTokens int, logger *zap.Logger) *Responder {
	return &Responder{
		completer: completer,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Reply asks the completion API for a reply grounded in the given context.
// The first completion choice is returned verbatim.
func (s *Responder) Reply(ctx context.Context, query, contextText string) (string, error) {
	messages := []client.Message{
		{Role: "system", Content: personaPrompt},
		{Role: "user", Content: fmt.Sprintf("Query: %s\nContext: %s", query, contextText)},
	}

	reply, err := s.completer.Chat(ctx, messages, s.maxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	s.logger.Debug("reply generated", zap.Int("length", len(reply)))
	return reply, nil
}
