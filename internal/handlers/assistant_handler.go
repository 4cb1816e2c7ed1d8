package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"baletrack/internal/assistant"
)

// Assistant is the chat capability the handler depends on.
type Assistant interface {
	Chat(ctx context.Context, in assistant.ChatInput) (*assistant.ChatResult, error)
	Health(ctx context.Context) assistant.Health
	Examples() []assistant.Example
}

// AssistantHandler proxies questions to the AI assistant.
type AssistantHandler struct {
	assistant Assistant
	now       func() time.Time
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(a Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: a, now: time.Now}
}

// ChatRequest represents a chat message with optional history. Omitted
// include_thoughts defaults to true and thinking_budget to 5000.
type ChatRequest struct {
	Message         string           `json:"message" binding:"required"`
	History         []assistant.Turn `json:"history" binding:"omitempty,dive"`
	IncludeThoughts *bool            `json:"include_thoughts"`
	ThinkingBudget  *int             `json:"thinking_budget" binding:"omitempty,gte=0"`
	Stream          bool             `json:"stream"`
}

// ChatResponse is the successful chat reply.
type ChatResponse struct {
	Success   bool      `json:"success"`
	Answer    string    `json:"answer"`
	Thoughts  string    `json:"thoughts,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *AssistantHandler) respondWithError(c *gin.Context, err error) {
	status, body := errorBody(c, err)
	body["timestamp"] = h.now().UTC()
	c.JSON(status, body)
}

// Chat handles a question to the assistant.
// @Summary     Ask the AI assistant
// @Tags        ai
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Message and history"
// @Success     200 {object} ChatResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Assistant unavailable"
// @Router      /ai/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithError(c, invalidInput(err))
		return
	}

	in := assistant.ChatInput{
		Message:         req.Message,
		History:         req.History,
		IncludeThoughts: true,
		ThinkingBudget:  assistant.DefaultThinkingBudget,
		Stream:          req.Stream,
	}
	if req.IncludeThoughts != nil {
		in.IncludeThoughts = *req.IncludeThoughts
	}
	if req.ThinkingBudget != nil {
		in.ThinkingBudget = *req.ThinkingBudget
	}

	res, err := h.assistant.Chat(c.Request.Context(), in)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Success:   true,
		Answer:    res.Answer,
		Thoughts:  res.Thoughts,
		Timestamp: res.Timestamp,
	})
}

// Health probes the assistant.
// @Summary     Assistant health
// @Tags        ai
// @Produce     json
// @Success     200 {object} assistant.Health
// @Failure     503 {object} assistant.Health
// @Router      /ai/health [get]
func (h *AssistantHandler) Health(c *gin.Context) {
	health := h.assistant.Health(c.Request.Context())
	status := http.StatusOK
	if !health.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}

// Examples lists sample chat requests.
// @Summary     Assistant request examples
// @Tags        ai
// @Produce     json
// @Success     200 {object} map[string][]assistant.Example
// @Router      /ai/examples [get]
func (h *AssistantHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"example_requests": h.assistant.Examples()})
}
