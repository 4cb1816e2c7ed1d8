package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GenerateRequest is one model invocation.
type GenerateRequest struct {
	Contents        []Content
	IncludeThoughts bool
	ThinkingBudget  int
	Stream          bool
}

// Reply is the model output split into answer text and thought summaries.
type Reply struct {
	Answer   string
	Thoughts string
}

// Model generates a reply for a conversation.
type Model interface {
	Generate(ctx context.Context, req GenerateRequest) (*Reply, error)
}

// ErrInvalidResponse is returned when the model answers without content.
var ErrInvalidResponse = errors.New("invalid response structure from model")

// GeminiClient generates replies through the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client for model. An empty baseURL selects the
// public Gemini endpoint.
func NewGeminiClient(ctx context.Context, baseURL, apiKey, model string, httpClient *http.Client) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func toGenaiContents(contents []Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, c := range contents {
		parts := make([]*genai.Part, 0, len(c.Parts))
		for _, p := range c.Parts {
			parts = append(parts, &genai.Part{Text: p.Text, Thought: p.Thought})
		}
		out = append(out, &genai.Content{Role: c.Role, Parts: parts})
	}
	return out
}

// collect appends the first candidate's parts to the reply builders.
func collect(resp *genai.GenerateContentResponse, answer, thoughts *strings.Builder) bool {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return false
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		if part.Thought {
			thoughts.WriteString(part.Text)
		} else {
			answer.WriteString(part.Text)
		}
	}
	return true
}

// Generate calls generateContent, or the streaming variant when req.Stream is
// set. Streamed chunks are accumulated before returning.
func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (*Reply, error) {
	contents := toGenaiContents(req.Contents)
	config := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: req.IncludeThoughts,
			ThinkingBudget:  genai.Ptr(int32(req.ThinkingBudget)),
		},
	}

	var answer, thoughts strings.Builder
	if req.Stream {
		chunks := 0
		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, contents, config) {
			if err != nil {
				return nil, fmt.Errorf("generating content: %w", err)
			}
			if collect(resp, &answer, &thoughts) {
				chunks++
			}
		}
		if chunks == 0 {
			return nil, ErrInvalidResponse
		}
	} else {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
		if err != nil {
			return nil, fmt.Errorf("generating content: %w", err)
		}
		if !collect(resp, &answer, &thoughts) {
			return nil, ErrInvalidResponse
		}
	}

	return &Reply{
		Answer:   strings.TrimSpace(answer.String()),
		Thoughts: strings.TrimSpace(thoughts.String()),
	}, nil
}
