package assistant

import (
	"strings"
	"testing"
)

func mustPrompt(t *testing.T) *Prompt {
	t.Helper()
	p, err := DefaultPrompt()
	if err != nil {
		t.Fatalf("failed to load prompt: %v", err)
	}
	return p
}

func TestDefaultPrompt(t *testing.T) {
	p := mustPrompt(t)

	if !strings.Contains(p.SystemInstruction, "Profit = Total Sales - (Bale Purchases + Expenses)") {
		t.Error("expected profit rule in system instruction")
	}
	if p.Acknowledgement == "" || p.HealthCheckMessage == "" {
		t.Error("expected acknowledgement and health check message")
	}
	if len(p.Templates) != 6 {
		t.Errorf("expected 6 templates, got %d", len(p.Templates))
	}
	for _, tmpl := range p.Templates {
		if !strings.Contains(tmpl.Body, answerPlaceholder) {
			t.Errorf("template %s lacks placeholder", tmpl.Name)
		}
	}
	if len(p.Examples) != 4 {
		t.Fatalf("expected 4 examples, got %d", len(p.Examples))
	}
	if p.Examples[0].Body["message"] != "How do I calculate profit for cotton bales?" {
		t.Errorf("unexpected first example body %v", p.Examples[0].Body)
	}
}

func TestParsePrompt(t *testing.T) {
	t.Run("invalid_yaml", func(t *testing.T) {
		if _, err := ParsePrompt([]byte("system_instruction: [")); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("missing_placeholder", func(t *testing.T) {
		_, err := ParsePrompt([]byte("system_instruction: hi\ndefault_template: plain\n"))
		if err == nil {
			t.Error("expected placeholder error")
		}
	})
}

func TestBuildContents(t *testing.T) {
	p := mustPrompt(t)
	history := []Turn{
		{Sender: "user", Text: "My gross profit is $5,000"},
		{Sender: "ai", Text: "Good start."},
		{Sender: "assistant", Text: "Anything else?"},
	}

	contents := BuildContents(p, history, "Net profit?")

	wantRoles := []string{"user", "model", "user", "model", "model", "user"}
	if len(contents) != len(wantRoles) {
		t.Fatalf("expected %d contents, got %d", len(wantRoles), len(contents))
	}
	for i, role := range wantRoles {
		if contents[i].Role != role {
			t.Errorf("content %d: expected role %s, got %s", i, role, contents[i].Role)
		}
	}
	if contents[0].Parts[0].Text != p.SystemInstruction {
		t.Error("expected system instruction first")
	}
	if contents[1].Parts[0].Text != p.Acknowledgement {
		t.Error("expected acknowledgement second")
	}
	if contents[5].Parts[0].Text != "Net profit?" {
		t.Errorf("expected new message last, got %q", contents[5].Parts[0].Text)
	}
}

func TestFormatAnswer(t *testing.T) {
	p := mustPrompt(t)

	tests := []struct {
		name    string
		raw     string
		message string
		prefix  string
	}{
		{name: "profit_keyword", raw: "Sell more.", message: "How is my PROFIT?", prefix: "💰 **Profit Management Guide**"},
		{name: "expense_keyword", raw: "Cut costs.", message: "my expenses are high", prefix: "💸 **Expense Management Strategy**"},
		{name: "stock_keyword", raw: "Count it.", message: "inventory check", prefix: "🏭 **Stock Management Overview**"},
		{name: "first_matching_template_wins", raw: "Both.", message: "profit and stock", prefix: "💰"},
		{name: "default_template", raw: "Hello.", message: "hi there", prefix: "🔍 **Here's Your Answer**"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAnswer(p, tt.raw, tt.message)
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
			if !strings.Contains(got, tt.raw) {
				t.Errorf("expected answer %q embedded in %q", tt.raw, got)
			}
		})
	}

	t.Run("already_formatted_is_unchanged", func(t *testing.T) {
		raw := "**Summary**\n• profit is up"
		if got := FormatAnswer(p, raw, "profit"); got != raw {
			t.Errorf("expected unchanged answer, got %q", got)
		}
	})

	t.Run("bold_without_markers_is_wrapped", func(t *testing.T) {
		got := FormatAnswer(p, "**Summary** all good", "hello")
		if !strings.HasPrefix(got, "🔍") {
			t.Errorf("expected default wrapping, got %q", got)
		}
	})

	t.Run("collapses_blank_lines", func(t *testing.T) {
		got := FormatAnswer(p, "  **A**\n\n\n\n• b  ", "")
		if got != "**A**\n\n• b" {
			t.Errorf("unexpected normalisation %q", got)
		}
	})
}
