// Package nlp implements sentence labeling through external NLP providers.
// Providers receive a numbered sentence list and must return exactly one
// label per sentence; misaligned replies are an error so the caller can
// fall back to pattern rules.
package nlp

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/notesift/notesift/internal/model"
)

// Provider defines the interface for NLP providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// ClassifySentences labels each request sentence with one category
	ClassifySentences(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Request contains the sentences to label
type Request struct {
	// Sentences are labeled in order; the response must align with them
	Sentences []string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Response contains the provider's labels
type Response struct {
	// Labels holds exactly one category per request sentence, in order
	Labels []model.Category

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds NLP provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// systemPrompt primes every provider the same way
const systemPrompt = "You label sentences from meeting notes. You reply only with the requested label lines, nothing else."

// BuildPrompt constructs the labeling prompt for a sentence list
func BuildPrompt(sentences []string) string {
	var b strings.Builder
	b.WriteString(`Label each numbered sentence from a meeting's notes with exactly one of:
- ACTION: a task assigned to someone or the team
- DECISION: a resolution the participants reached
- QUESTION: an unresolved issue or open question
- NONE: none of the above

Reply with one line per sentence, in order, formatted "N: LABEL". No commentary.

Sentences:
`)
	for i, s := range sentences {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// labelLine matches one "N: LABEL" reply line, tolerating minor formatting drift
var labelLine = regexp.MustCompile(`(?i)^\s*(\d+)\s*[:.)\-]\s*(ACTION|DECISION|QUESTION|NONE)\b`)

// parseLabels extracts one category per sentence from the provider reply.
// A missing or duplicate index is an alignment error.
func parseLabels(text string, count int) ([]model.Category, error) {
	labels := make([]model.Category, count)
	seen := make([]bool, count)

	for _, line := range strings.Split(text, "\n") {
		m := labelLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil || idx < 1 || idx > count {
			return nil, fmt.Errorf("label index %s out of range 1..%d", m[1], count)
		}
		if seen[idx-1] {
			return nil, fmt.Errorf("duplicate label for sentence %d", idx)
		}
		seen[idx-1] = true
		labels[idx-1] = categoryForLabel(m[2])
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("no label for sentence %d of %d", i+1, count)
		}
	}

	return labels, nil
}

// categoryForLabel maps a reply label to a category
func categoryForLabel(label string) model.Category {
	switch strings.ToUpper(label) {
	case "ACTION":
		return model.CategoryActionItem
	case "DECISION":
		return model.CategoryDecision
	case "QUESTION":
		return model.CategoryOpenQuestion
	default:
		return model.CategoryUncategorized
	}
}
