package assistant

import (
	"context"
	"strings"
	"time"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/logger"
	"baletrack/internal/period"
)

const (
	// DefaultThinkingBudget is used when a request leaves the budget unset.
	DefaultThinkingBudget = 5000

	serviceName = "BaleTrack AI"
)

// ChatInput is a user question with its conversation so far.
type ChatInput struct {
	Message         string
	History         []Turn
	IncludeThoughts bool
	ThinkingBudget  int
	Stream          bool
}

// ChatResult is the formatted answer returned to the caller.
type ChatResult struct {
	Answer    string    `json:"answer"`
	Thoughts  string    `json:"thoughts,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports whether the model is reachable.
type Health struct {
	Status           string    `json:"status"`
	Service          string    `json:"service"`
	GeminiConfigured bool      `json:"gemini_configured"`
	AIResponse       string    `json:"ai_response"`
	Timestamp        time.Time `json:"timestamp"`
}

// Healthy reports whether the status is "healthy".
func (h Health) Healthy() bool { return h.Status == "healthy" }

// Service answers chat requests through a Model. A nil model means no API
// key was configured.
type Service struct {
	prompt  *Prompt
	model   Model
	timeout time.Duration
	clock   period.Clock
}

// NewService creates an assistant. timeout bounds every upstream call when
// positive.
func NewService(prompt *Prompt, model Model, timeout time.Duration, clock period.Clock) *Service {
	return &Service{prompt: prompt, model: model, timeout: timeout, clock: clock}
}

// Configured reports whether a model is available.
func (s *Service) Configured() bool { return s.model != nil }

// Chat validates the input, sends the conversation to the model and formats
// the answer.
func (s *Service) Chat(ctx context.Context, in ChatInput) (*ChatResult, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Message is required")
	}
	if in.ThinkingBudget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Thinking budget must be a positive number")
	}
	if !s.Configured() {
		return nil, apperrors.ErrAssistantNotConfigured
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.model.Generate(ctx, GenerateRequest{
		Contents:        BuildContents(s.prompt, in.History, in.Message),
		IncludeThoughts: in.IncludeThoughts,
		ThinkingBudget:  in.ThinkingBudget,
		Stream:          in.Stream,
	})
	if err != nil {
		logger.Get().Warnw("assistant request failed", "stream", in.Stream, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrAssistantUnavailable, err)
	}

	result := &ChatResult{
		Answer:    FormatAnswer(s.prompt, reply.Answer, in.Message),
		Timestamp: s.clock.Now().UTC(),
	}
	if in.IncludeThoughts {
		result.Thoughts = reply.Thoughts
	}
	return result, nil
}

// Health sends the catalogue's probe message without thoughts.
func (s *Service) Health(ctx context.Context) Health {
	h := Health{
		Status:           "unhealthy",
		Service:          serviceName,
		GeminiConfigured: s.Configured(),
		AIResponse:       "unresponsive",
	}
	if _, err := s.Chat(ctx, ChatInput{Message: s.prompt.HealthCheckMessage}); err == nil {
		h.Status = "healthy"
		h.AIResponse = "responsive"
	}
	h.Timestamp = s.clock.Now().UTC()
	return h
}

// Examples returns the sample chat requests from the catalogue.
func (s *Service) Examples() []Example {
	return s.prompt.Examples
}
