// Package assistant proxies business questions to a generative model, wrapping
// them in the BaleTrack system prompt and tidying the answers it returns.
package assistant

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompt.yaml
var defaultPrompt []byte

const answerPlaceholder = "{{answer}}"

// Template wraps an answer when the user's message contains one of Keywords.
type Template struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Body     string   `yaml:"body"`
}

// Example is a sample chat request served to API clients.
type Example struct {
	Name     string         `yaml:"name" json:"name"`
	Method   string         `yaml:"method" json:"method"`
	Endpoint string         `yaml:"endpoint" json:"endpoint"`
	Body     map[string]any `yaml:"body" json:"body"`
}

// Prompt is the catalogue of fixed texts sent to, or applied to output from,
// the model.
type Prompt struct {
	SystemInstruction  string     `yaml:"system_instruction"`
	Acknowledgement    string     `yaml:"acknowledgement"`
	HealthCheckMessage string     `yaml:"health_check_message"`
	Templates          []Template `yaml:"templates"`
	DefaultTemplate    string     `yaml:"default_template"`
	Examples           []Example  `yaml:"examples"`
}

// DefaultPrompt parses the embedded catalogue.
func DefaultPrompt() (*Prompt, error) {
	return ParsePrompt(defaultPrompt)
}

// ParsePrompt decodes a YAML prompt catalogue.
func ParsePrompt(data []byte) (*Prompt, error) {
	var p Prompt
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing prompt catalogue: %w", err)
	}
	if strings.TrimSpace(p.SystemInstruction) == "" {
		return nil, fmt.Errorf("parsing prompt catalogue: system_instruction is empty")
	}
	if !strings.Contains(p.DefaultTemplate, answerPlaceholder) {
		return nil, fmt.Errorf("parsing prompt catalogue: default_template lacks %s", answerPlaceholder)
	}
	return &p, nil
}

// Turn is one earlier message of a conversation. Any sender other than
// "user" is treated as the model.
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Part is a fragment of model content. Thought marks reasoning summaries.
type Part struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

// Content is a single role-tagged message in a model request.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

const (
	roleUser  = "user"
	roleModel = "model"
)

func textContent(role, text string) Content {
	return Content{Role: role, Parts: []Part{{Text: text}}}
}

// BuildContents assembles the request in a fixed order: system instruction,
// acknowledgement, history, then the new message.
func BuildContents(p *Prompt, history []Turn, message string) []Content {
	contents := make([]Content, 0, len(history)+3)
	contents = append(contents,
		textContent(roleUser, p.SystemInstruction),
		textContent(roleModel, p.Acknowledgement),
	)
	for _, turn := range history {
		role := roleModel
		if turn.Sender == "user" {
			role = roleUser
		}
		contents = append(contents, textContent(role, turn.Text))
	}
	return append(contents, textContent(roleUser, message))
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// FormatAnswer normalises blank lines and, when the answer carries no bold
// heading plus list or emoji markers, wraps it in the template matching the
// user's message.
func FormatAnswer(p *Prompt, raw, message string) string {
	answer := strings.TrimSpace(excessNewlines.ReplaceAllString(raw, "\n\n"))
	if isFormatted(answer) {
		return answer
	}

	lower := strings.ToLower(message)
	for _, tmpl := range p.Templates {
		for _, kw := range tmpl.Keywords {
			if strings.Contains(lower, kw) {
				return strings.ReplaceAll(tmpl.Body, answerPlaceholder, answer)
			}
		}
	}
	return strings.ReplaceAll(p.DefaultTemplate, answerPlaceholder, answer)
}

func isFormatted(answer string) bool {
	if !strings.Contains(answer, "**") {
		return false
	}
	return strings.Contains(answer, "•") || strings.Contains(answer, "📊") || strings.Contains(answer, "💰")
}
