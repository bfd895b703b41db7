// Package pipeline wires the analysis steps together: load document text,
// classify sentences, build the report, render or export it.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/notesift/notesift/internal/cache"
	"github.com/notesift/notesift/internal/classify"
	"github.com/notesift/notesift/internal/load"
	"github.com/notesift/notesift/internal/model"
	"github.com/notesift/notesift/internal/render"
)

// Pipeline orchestrates the analysis of meeting-notes documents.
// The classifier variant is selected once at construction.
type Pipeline struct {
	loader      *load.Loader
	classifier  classify.Classifier
	cache       cache.Cache // nil when caching is disabled
	fingerprint string
	config      *model.Config
}

// New creates a pipeline with the given configuration. The limiter is
// optional and gates NLP calls during batch runs.
func New(ctx context.Context, cfg *model.Config, limiter classify.Limiter) (*Pipeline, error) {
	classifier, err := classify.Select(ctx, cfg, limiter)
	if err != nil {
		return nil, err
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.CacheDir(), cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		loader:      load.NewLoader(),
		classifier:  classifier,
		cache:       c,
		fingerprint: fingerprint(classifier.Name(), cfg.Classifier),
		config:      cfg,
	}, nil
}

// Classifier exposes the selected classifier (for startup diagnostics)
func (p *Pipeline) Classifier() classify.Classifier {
	return p.classifier
}

// Analyze loads and classifies one document. Load failures abort only this
// operation; any previously produced report is untouched.
func (p *Pipeline) Analyze(ctx context.Context, path string) (*model.Report, error) {
	text, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}

	key := cache.Key(text, p.fingerprint)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var outcome classify.Outcome
			if err := json.Unmarshal(data, &outcome); err == nil {
				if p.config.Output.Verbose {
					fmt.Fprintf(os.Stderr, "✓ Cache hit: %s\n", path)
				}
				return buildReport(path, &outcome), nil
			}
		}
	}

	outcome, err := p.classifier.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", path, err)
	}

	if p.cache != nil {
		if data, err := json.Marshal(outcome); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	return buildReport(path, outcome), nil
}

// RenderReport displays the report and writes the requested exports
func (p *Pipeline) RenderReport(report *model.Report, txtPath, jsonPath, mdPath string) error {
	theme, err := render.ThemeByName(p.config.Output.Theme)
	if err != nil {
		return err
	}
	r := render.New(theme, p.config.Output.IncludeFooter)

	r.RenderText(os.Stdout, report)
	fmt.Println()

	if txtPath != "" {
		if err := r.ExportText(report, txtPath); err != nil {
			return fmt.Errorf("export text: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Printf("✓ Wrote text report: %s\n", txtPath)
		}
	}

	if jsonPath != "" {
		if err := r.ExportJSON(report, jsonPath); err != nil {
			return fmt.Errorf("export JSON: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := r.ExportMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("export markdown: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	r.RenderSummary(report)
	return nil
}

// buildReport assembles the report from a classification outcome
func buildReport(path string, outcome *classify.Outcome) *model.Report {
	report := model.NewReport(path, outcome.Method, outcome.Model, outcome.Result)
	report.TokensUsed = outcome.TokensUsed
	return report
}

// fingerprint digests the rule configuration so cached results are
// invalidated when keyword lists, priority, or the classifier change
func fingerprint(classifierName string, cfg model.ClassifierConfig) string {
	parts := []string{
		classifierName,
		strings.Join(cfg.Priority, ","),
		strings.Join(cfg.ActionKeywords, ","),
		strings.Join(cfg.DecisionKeywords, ","),
		strings.Join(cfg.QuestionKeywords, ","),
	}
	return strings.Join(parts, "|")
}
