package handler

import (
	"context"

	"github.com/dakshinasree98/AI-powered-Hotel-Chatbot-using-LLM-integration-modified/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QueryClassifier assigns a label to a guest query.
type QueryClassifier interface {
	Classify(ctx context.Context, query string) (model.Label, error)
}

// ReplyGenerator produces the receptionist reply from query and context.
type ReplyGenerator interface {
	Reply(ctx context.Context, query, contextText string) (string, error)
}

// RoomContextFetcher reads the current room listing as prompt context.
type RoomContextFetcher interface {
	FetchRoomContext(ctx context.Context) (string, error)
}

// QueryHandler guest query processor
type QueryHandler struct {
	classifier  QueryClassifier
	responder   ReplyGenerator
	rooms       RoomContextFetcher
	hotelInfo   string
	serviceName string
	logger      *zap.Logger
}

// NewQueryHandler creates a query handler
func NewQueryHandler(
	classifier QueryClassifier,
	responder ReplyGenerator,
	rooms RoomContextFetcher,
	hotelInfo string,
	serviceName string,
	logger *zap.Logger,
) *QueryHandler {
	return &QueryHandler{
		classifier:  classifier,
		responder:   responder,
		rooms:       rooms,
		hotelInfo:   hotelInfo,
		serviceName: serviceName,
		logger:      logger,
	}
}

// HandleQuery guest query endpoint: validate, classify, select context, generate.
func (h *QueryHandler) HandleQuery(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(400, model.ErrorResponse{Error: "Query parameter is required"})
		return
	}

	ctx := c.Request.Context()

	label, err := h.classifier.Classify(ctx, query)
	if err != nil {
		h.logger.Error("classification failed", zap.Error(err))
		c.JSON(502, model.ErrorResponse{Error: "Query classification is temporarily unavailable"})
		return
	}

	var contextText string
	switch {
	case label.NeedsRoomContext():
		contextText, err = h.rooms.FetchRoomContext(ctx)
		if err != nil {
			h.logger.Error("room fetch failed",
				zap.String("label", string(label)),
				zap.Error(err))
			c.JSON(500, model.ErrorResponse{Error: "Room details are temporarily unavailable"})
			return
		}
	case label.NeedsHotelInfo():
		contextText = h.hotelInfo
	default:
		h.logger.Warn("label maps to no context branch",
			zap.String("label", string(label)),
			zap.String("query", query))
		c.JSON(500, model.ErrorResponse{Error: "Invalid query classification"})
		return
	}

	reply, err := h.responder.Reply(ctx, query, contextText)
	if err != nil {
		h.logger.Error("reply generation failed", zap.Error(err))
		c.JSON(502, model.ErrorResponse{Error: "Reply generation is temporarily unavailable"})
		return
	}

	c.JSON(200, model.QueryResponse{Response: reply})
}

// Home liveness endpoint
func (h *QueryHandler) Home(c *gin.Context) {
	c.String(200, "Maya is up and running!")
}

// Health health check endpoint
func (h *QueryHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "UP",
		"service": h.serviceName,
	})
}
