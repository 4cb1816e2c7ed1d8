package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

// wireRequest is the subset of the generateContent body the tests inspect.
type wireRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ThinkingConfig struct {
			IncludeThoughts bool  `json:"includeThoughts"`
			ThinkingBudget  int32 `json:"thinkingBudget"`
		} `json:"thinkingConfig"`
	} `json:"generationConfig"`
}

func newTestClient(t *testing.T, srv *httptest.Server) *GeminiClient {
	t.Helper()
	client, err := NewGeminiClient(context.Background(), srv.URL+"/", "key", "gemini-test", srv.Client())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func apiStatus(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code
	}
	return 0
}

func TestGeminiClient_Generate(t *testing.T) {
	contents := []Content{textContent(roleUser, "hi")}

	t.Run("splits_thoughts_from_answer", func(t *testing.T) {
		var gotBody wireRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("x-goog-api-key") != "key" {
				t.Errorf("expected api key header, got %q", r.Header.Get("x-goog-api-key"))
			}
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[
				{"text":"thinking...","thought":true},
				{"text":"Hello "},
				{"text":"world"}]}}]}`)
		}))
		defer srv.Close()

		reply, err := newTestClient(t, srv).Generate(context.Background(), GenerateRequest{
			Contents: contents, IncludeThoughts: true, ThinkingBudget: 1234,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Answer != "Hello world" || reply.Thoughts != "thinking..." {
			t.Errorf("unexpected reply %+v", reply)
		}
		tc := gotBody.GenerationConfig.ThinkingConfig
		if !tc.IncludeThoughts || tc.ThinkingBudget != 1234 {
			t.Errorf("unexpected thinking config %+v", tc)
		}
		if len(gotBody.Contents) != 1 || gotBody.Contents[0].Role != "user" || gotBody.Contents[0].Parts[0].Text != "hi" {
			t.Errorf("unexpected contents %+v", gotBody.Contents)
		}
	})

	t.Run("stream_accumulates_chunks", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:streamGenerateContent") || r.URL.Query().Get("alt") != "sse" {
				t.Errorf("unexpected url %s", r.URL)
			}
			w.Header().Set("Content-Type", "text/event-stream")
			_, _ = fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"plan\",\"thought\":true}]}}]}\n\n")
			_, _ = fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"Part one, \"}]}}]}\n\n")
			_, _ = fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"part two.\"}]}}]}\n\n")
		}))
		defer srv.Close()

		reply, err := newTestClient(t, srv).Generate(context.Background(), GenerateRequest{Contents: contents, Stream: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Answer != "Part one, part two." || reply.Thoughts != "plan" {
			t.Errorf("unexpected reply %+v", reply)
		}
	})

	t.Run("upstream_error_status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
		}))
		defer srv.Close()

		_, err := newTestClient(t, srv).Generate(context.Background(), GenerateRequest{Contents: contents})
		if err == nil {
			t.Fatal("expected error")
		}
		if code := apiStatus(err); code != http.StatusBadRequest {
			t.Errorf("expected API error with status 400, got %v", err)
		}
	})

	t.Run("missing_candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprint(w, `{"candidates":[]}`)
		}))
		defer srv.Close()

		_, err := newTestClient(t, srv).Generate(context.Background(), GenerateRequest{Contents: contents})
		if !errors.Is(err, ErrInvalidResponse) {
			t.Errorf("expected ErrInvalidResponse, got %v", err)
		}
	})

	t.Run("context_cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestClient(t, srv).Generate(ctx, GenerateRequest{Contents: contents})
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
