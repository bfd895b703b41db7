// Package classify splits meeting-notes text into sentences and assigns
// each to zero or one extraction category. Two classifier variants exist:
// pattern rules and NLP-provider-backed, selected once at startup.
package classify

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/notesift/notesift/internal/model"
	"github.com/notesift/notesift/internal/nlp"
)

// Outcome is the result of one classification run plus its provenance
type Outcome struct {
	Result     model.AnalysisResult
	Method     string // "pattern" or the NLP provider name
	Model      string // NLP model, when one was used
	TokensUsed int
}

// Classifier produces a categorized sentence sequence from raw note text
type Classifier interface {
	// Name returns the classifier name
	Name() string

	// Classify segments text and assigns exactly one category per sentence
	Classify(ctx context.Context, text string) (*Outcome, error)
}

// Limiter gates NLP provider calls (e.g., during batch runs)
type Limiter interface {
	Wait(ctx context.Context, key string) error
}

// Select picks the classifier variant once, based on configuration and a
// capability check. An unreachable or unconfigured NLP provider silently
// yields the pattern classifier; it is never surfaced as an error.
func Select(ctx context.Context, cfg *model.Config, limiter Limiter) (Classifier, error) {
	pattern, err := NewPatternClassifier(cfg.Classifier)
	if err != nil {
		return nil, fmt.Errorf("build pattern classifier: %w", err)
	}

	if cfg.NLP.Provider == "" {
		return pattern, nil
	}

	provider, err := nlp.NewProvider(nlp.ConfigFromModel(cfg.NLP))
	if err != nil {
		// An unknown provider name is a configuration mistake; anything
		// else (missing credentials) is unavailability, same as a failed
		// capability check below
		if errors.Is(err, nlp.ErrUnknownProvider) {
			return nil, err
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "NLP provider %q unavailable (%v), using pattern matching\n", cfg.NLP.Provider, err)
		}
		return pattern, nil
	}
	if provider == nil || !provider.IsAvailable(ctx) {
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "NLP provider %q unavailable, using pattern matching\n", cfg.NLP.Provider)
		}
		return pattern, nil
	}

	return NewNLPClassifier(provider, pattern, limiter), nil
}
