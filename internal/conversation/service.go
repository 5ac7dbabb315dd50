package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quillhq/chatdesk/internal/booking"
	"github.com/quillhq/chatdesk/internal/observability/metrics"
	"github.com/quillhq/chatdesk/pkg/logging"
)

const (
	llmTemperature = 0.1

	defaultMaxTokens = 1800

	// chatNote steers the model toward advertising the booking flow and
	// keeps replies widget-friendly.
	chatNote = "\n\nNote: If the user asks about booking appointments, calling, or scheduling, let them know I can help with that by saying phrases like 'book an appointment' or 'call me'. Please respond in plain text without any markdown formatting."

	defaultDocumentPrompt  = "Please analyze this document and provide a summary."
	defaultDocumentSummary = "Please analyze this document"
)

// Service is the chat gateway: it routes each message either into the
// booking dialogue or to the LLM with the shared transcript as context.
type Service struct {
	llm       LLMClient
	engine    *booking.Engine
	history   *History
	metrics   *metrics.ChatMetrics
	logger    *logging.Logger
	maxTokens int32
}

// NewService wires the gateway. metrics may be nil.
func NewService(llm LLMClient, engine *booking.Engine, history *History, m *metrics.ChatMetrics, logger *logging.Logger, maxTokens int32) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Service{
		llm:       llm,
		engine:    engine,
		history:   history,
		metrics:   m,
		logger:    logger,
		maxTokens: maxTokens,
	}
}

// Chat handles one plain message. Booking takes priority: an open session
// or a booking keyword routes the message into the dialogue engine and the
// LLM is not called at all.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (string, error) {
	active, err := s.engine.Active(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("conversation: session lookup failed: %w", err)
	}
	wantsToBook := booking.IsBookingRequest(message)

	if active || wantsToBook {
		if wantsToBook && !active {
			s.metrics.ObserveBookingStarted()
		}
		reply, complete, err := s.engine.Advance(ctx, sessionID, message)
		if err != nil {
			return "", err
		}
		if complete {
			// Only finished bookings enter the transcript, so the model
			// sees the outcome but not every intermediate prompt.
			s.history.Append(message, reply)
			status := "scheduled"
			if reply == booking.ReplySaveFailed {
				status = "failed"
			}
			s.metrics.ObserveBookingCompleted(status)
		}
		return reply, nil
	}

	reply, err := s.complete(ctx, "chat", message+chatNote)
	if err != nil {
		return "", err
	}
	s.history.Append(message, reply)
	return reply, nil
}

// ChatWithDocument handles a message with an uploaded text file attached.
// The file body is inlined into the prompt; the transcript records a short
// marker instead of the full content.
func (s *Service) ChatWithDocument(ctx context.Context, message, filename, content string) (string, error) {
	instruction := strings.TrimSpace(message)
	if instruction == "" {
		instruction = defaultDocumentPrompt
	}
	prompt := fmt.Sprintf("Here is the content of the uploaded file %q:\n\n%s\n\n%s\n\nPlease respond in plain text without any markdown formatting. But you can add spaces and text more attractive", filename, content, instruction)

	reply, err := s.complete(ctx, "chat_with_file", prompt)
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(message)
	if summary == "" {
		summary = defaultDocumentSummary
	}
	s.history.Append(fmt.Sprintf("[Uploaded file: %s] %s", filename, summary), reply)
	return reply, nil
}

func (s *Service) complete(ctx context.Context, route, outgoing string) (string, error) {
	msgs := append(s.history.Snapshot(), ChatMessage{Role: ChatRoleUser, Content: outgoing})

	start := time.Now()
	resp, err := s.llm.Complete(ctx, LLMRequest{
		Messages:    msgs,
		MaxTokens:   s.maxTokens,
		Temperature: llmTemperature,
	})
	s.metrics.ObserveLLMLatency(route, time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("conversation: llm completion failed", "route", route, "error", err)
		return "", err
	}

	s.logger.Debug("conversation: llm completion",
		"route", route,
		"stop_reason", resp.StopReason,
		"total_tokens", resp.Usage.TotalTokens,
	)
	return resp.Text, nil
}
