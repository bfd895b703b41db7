package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/notesift/notesift/internal/load"
	"github.com/notesift/notesift/internal/pipeline"
	"github.com/notesift/notesift/internal/render"
	"github.com/notesift/notesift/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchJSON    bool
	batchMD      bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list-file>",
	Short: "Analyze multiple meeting-notes documents in parallel",
	Long: `Batch analyzes many documents concurrently:
- Pass a directory to analyze every supported file in it, or a list
  file with one document path per line (# comments allowed)
- Documents are processed in parallel with a configurable worker count
- NLP provider calls are rate limited across workers
- A per-document report is written to the output directory; a failed
  document is reported and skipped, the rest of the batch proceeds

Example:
  notesift batch ./minutes
  notesift batch notes.list --concurrency 8 --output-dir ./reports
  notesift batch ./minutes --nlp openai --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./notesift-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Output flags
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "also write a JSON report per document")
	batchCmd.Flags().BoolVar(&batchMD, "md", false, "also write a Markdown report per document")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in exported reports")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force re-classification)")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// NLP flags
	batchCmd.Flags().BoolVar(&nlpEnabled, "nlp", false, "enable NLP-backed classification")
	batchCmd.Flags().StringVar(&nlpProvider, "nlp-provider", "openai", "NLP provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&nlpModel, "nlp-model", "", "NLP model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Output.IncludeFooter = cfg.Output.IncludeFooter && !noFooter
	if noCache {
		cfg.Cache.Enabled = false
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	applyNLPFlags(cfg)

	paths, err := worker.CollectPaths(args[0], load.NewLoader().Supported)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no documents to analyze in %s", args[0])
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// One limiter shared by all workers keeps NLP traffic bounded
	limiter := worker.NewLimiter(cfg.Concurrency.NLPRequestsPerSecond, cfg.Concurrency.NLPBurst)
	for provider, rps := range cfg.Concurrency.NLPProviderRates {
		limiter.SetProviderRate(provider, rps, cfg.Concurrency.NLPBurst)
	}
	p, err := pipeline.New(ctx, cfg, limiter)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d documents with %d workers (classifier: %s)\n\n",
			len(paths), cfg.Concurrency.Workers, p.Classifier().Name())
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results := processor.ProcessPaths(ctx, paths)

	renderer := render.New(render.NoTheme(), cfg.Output.IncludeFooter)
	var failed int
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		if err := renderer.ExportText(result.Report, filepath.Join(outputDir, base+".txt")); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}
		if batchJSON {
			if err := renderer.ExportJSON(result.Report, filepath.Join(outputDir, base+".json")); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", result.Path, err)
			}
		}
		if batchMD {
			if err := renderer.ExportMarkdown(result.Report, filepath.Join(outputDir, base+".md")); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", result.Path, err)
			}
		}

		fmt.Printf("✓ %s: %d actions, %d decisions, %d questions\n",
			result.Path, result.Report.Actions, result.Report.Decisions, result.Report.Questions)
	}

	fmt.Printf("\nProcessed %d documents (%d failed), reports in %s\n", len(results), failed, outputDir)

	if failed == len(results) {
		return fmt.Errorf("all %d documents failed", failed)
	}
	return nil
}
