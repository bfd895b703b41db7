package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notesift/notesift/internal/model"
	"github.com/notesift/notesift/internal/pipeline"
)

var (
	outTxt      string
	outJSON     string
	outMD       string
	themeName   string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	nlpEnabled  bool
	nlpProvider string
	nlpModel    string
	httpProxy   string
	httpsProxy  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze one meeting-notes document",
	Long: `Analyze reads a meeting-notes document and extracts:
- Action items (tasks assigned to someone)
- Decisions made by the participants
- Open questions left unresolved

Results are displayed grouped by category and can be exported to text,
JSON, or Markdown files.

Example:
  notesift analyze minutes.txt
  notesift analyze minutes.docx --txt report.txt --json report.json
  notesift analyze minutes.md --theme dark
  notesift analyze minutes.txt --nlp openai --nlp-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outTxt, "txt", "", "export plain-text report to path")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "export JSON report to path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "export Markdown report to path")
	analyzeCmd.Flags().StringVar(&themeName, "theme", "", "display theme (light, dark, none)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in exported reports")

	// Behavior flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force re-classification)")

	// NLP flags
	analyzeCmd.Flags().BoolVar(&nlpEnabled, "nlp", false, "enable NLP-backed classification")
	analyzeCmd.Flags().StringVar(&nlpProvider, "nlp-provider", "openai", "NLP provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&nlpModel, "nlp-model", "", "NLP model name")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

// applyNLPFlags overlays NLP flag and environment values on the loaded
// configuration, respecting the flag > env > file hierarchy: unset flags
// leave config-file values alone. Shared with the batch command.
func applyNLPFlags(cfg *model.Config) {
	if httpProxy != "" {
		cfg.NLP.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		cfg.NLP.HTTPSProxy = httpsProxy
	}

	if nlpEnabled {
		cfg.NLP.Provider = nlpProvider
		if nlpModel != "" {
			cfg.NLP.Model = nlpModel
		}
	}

	// Environment credentials apply whether the provider came from a flag
	// or the config file. A provider left without credentials is handled
	// as unavailable at classifier selection, never as a CLI error.
	switch cfg.NLP.Provider {
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.NLP.APIKey = key
		}
	case "anthropic", "claude":
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			cfg.NLP.APIKey = key
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.NLP.BaseURL = baseURL
		}
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flags on top of file/env configuration
	if themeName != "" {
		cfg.Output.Theme = themeName
	}
	cfg.Output.IncludeFooter = cfg.Output.IncludeFooter && !noFooter
	if noCache {
		cfg.Cache.Enabled = false
	}
	applyNLPFlags(cfg)

	p, err := pipeline.New(ctx, cfg, nil)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Classifier: %s\n\n", p.Classifier().Name())
	}

	report, err := p.Analyze(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if err := p.RenderReport(report, outTxt, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
