package classify

import (
	"context"
	"fmt"
	"os"

	"github.com/notesift/notesift/internal/model"
	"github.com/notesift/notesift/internal/nlp"
)

// NLPClassifier labels sentences through an NLP provider. Sentence
// segmentation stays local so the coverage invariant never depends on the
// provider; a runtime provider failure falls back to the pattern rules for
// the whole document.
type NLPClassifier struct {
	provider nlp.Provider
	fallback *PatternClassifier
	limiter  Limiter // Optional; nil outside batch runs
}

// NewNLPClassifier wraps a provider with a pattern fallback
func NewNLPClassifier(provider nlp.Provider, fallback *PatternClassifier, limiter Limiter) *NLPClassifier {
	return &NLPClassifier{
		provider: provider,
		fallback: fallback,
		limiter:  limiter,
	}
}

// Name returns the underlying provider name
func (c *NLPClassifier) Name() string {
	return c.provider.Name()
}

// Classify labels every sentence via the provider, falling back to pattern
// rules if the provider errors or returns misaligned labels
func (c *NLPClassifier) Classify(ctx context.Context, text string) (*Outcome, error) {
	sentences := Split(text)
	if len(sentences) == 0 {
		return &Outcome{Method: c.Name()}, nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, c.provider.Name()); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}

	resp, err := c.provider.ClassifySentences(ctx, nlp.Request{Sentences: texts})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s classification failed: %v (using pattern rules)\n", c.provider.Name(), err)
		return c.fallback.Classify(ctx, text)
	}

	result := model.AnalysisResult{
		Sentences: make([]model.ClassifiedSentence, 0, len(sentences)),
	}
	for i, sentence := range sentences {
		cs := model.ClassifiedSentence{
			Sentence: sentence,
			Category: resp.Labels[i],
		}
		if cs.Category != model.CategoryUncategorized {
			cs.Rule = "nlp:" + c.provider.Name()
		}
		result.Sentences = append(result.Sentences, cs)
	}

	return &Outcome{
		Result:     result,
		Method:     c.provider.Name(),
		Model:      resp.Model,
		TokensUsed: resp.TokensUsed,
	}, nil
}
