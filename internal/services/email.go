package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/draftwise/draftwise/pkg/logger"
)

const (
	defaultTone   = "professional"
	defaultLength = "medium"
)

// EmailService turns a caller-provided email body into an improved
// version with suggestions and corrections. All intelligence comes from
// the configured ChatProvider; this service only builds the prompt and
// shapes the reply.
type EmailService struct {
	provider ChatProvider
	timeout  time.Duration
}

func NewEmailService(provider ChatProvider, timeout time.Duration) *EmailService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EmailService{provider: provider, timeout: timeout}
}

// ImproveResult always carries exactly these three fields. Suggestions
// and Corrections are empty (never nil) when the provider reply could
// not be parsed.
type ImproveResult struct {
	ImprovedContent string   `json:"improved_content"`
	Suggestions     []string `json:"suggestions"`
	Corrections     []string `json:"corrections"`
}

// Improve sends a single bounded completion request and parses the reply.
// No retries: any provider failure is returned to the caller as-is.
func (s *EmailService) Improve(ctx context.Context, content, tone, length string) (*ImproveResult, error) {
	if tone == "" {
		tone = defaultTone
	}
	if length == "" {
		length = defaultLength
	}

	prompt := buildPrompt(content, tone, length)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := parseReply(reply)
	logger.Info().
		Int("reply_chars", len(reply)).
		Int("suggestions", len(result.Suggestions)).
		Int("corrections", len(result.Corrections)).
		Msg("email improved")
	return result, nil
}

func buildPrompt(content, tone, length string) string {
	var b strings.Builder
	b.WriteString("Please help me improve this email.\n")
	b.WriteString("Original content: ")
	b.WriteString(content)
	b.WriteString("\n\nPlease provide:\n")
	b.WriteString("1. An improved version of the email with a " + tone + " tone and " + length + " length\n")
	b.WriteString("2. Key suggestions for improvement\n")
	b.WriteString("3. Grammar and spelling corrections\n\n")
	b.WriteString("Format the response as a JSON object with the following keys:\n")
	b.WriteString("- improved_content: The improved email text\n")
	b.WriteString("- suggestions: List of improvement suggestions\n")
	b.WriteString("- corrections: List of grammar/spelling corrections\n")
	return b.String()
}

// parseReply extracts the three-field object from the provider reply.
// A reply that is not parseable JSON, or lacks improved_content, degrades
// gracefully: the raw text becomes improved_content and both lists stay
// empty. The caller always gets the full shape.
func parseReply(reply string) *ImproveResult {
	var parsed struct {
		ImprovedContent string   `json:"improved_content"`
		Suggestions     []string `json:"suggestions"`
		Corrections     []string `json:"corrections"`
	}

	candidate := extractJSONObject(reply)
	if candidate != "" && json.Unmarshal([]byte(candidate), &parsed) == nil && parsed.ImprovedContent != "" {
		result := &ImproveResult{
			ImprovedContent: parsed.ImprovedContent,
			Suggestions:     parsed.Suggestions,
			Corrections:     parsed.Corrections,
		}
		if result.Suggestions == nil {
			result.Suggestions = []string{}
		}
		if result.Corrections == nil {
			result.Corrections = []string{}
		}
		return result
	}

	logger.Debug().Msg("provider reply is not a JSON object, using raw text")
	return &ImproveResult{
		ImprovedContent: reply,
		Suggestions:     []string{},
		Corrections:     []string{},
	}
}

// extractJSONObject returns the JSON object embedded in s, tolerating
// markdown code fences and surrounding prose. Empty string if s contains
// no braces at all.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
