package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/notesift/notesift/internal/model"
)

// Analyzer defines the interface for analyzing one document
type Analyzer interface {
	Analyze(ctx context.Context, path string) (*model.Report, error)
}

// AnalyzeJob represents a single-document analysis job
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute executes the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.Analyze(ctx, j.Path)
	return &AnalyzeResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// AnalyzeResult represents the result of an analysis job.
// A failed document carries its error; the rest of the batch proceeds.
type AnalyzeResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the analysis result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given documents concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// The pool's queues are bounded; feed them from a goroutine and
	// drain results concurrently so large batches never block Submit
	go func() {
		for _, path := range paths {
			pool.Submit(&AnalyzeJob{
				Path:     path,
				Analyzer: b.analyzer,
			})
		}
		pool.Close()
	}()

	analyzeResults := make([]*AnalyzeResult, 0, len(paths))
	for result := range pool.Results() {
		analyzeResults = append(analyzeResults, result.(*AnalyzeResult))
	}

	// Pool completion order is nondeterministic; keep output stable
	sort.Slice(analyzeResults, func(i, j int) bool {
		return analyzeResults[i].Path < analyzeResults[j].Path
	})

	return analyzeResults
}

// CollectPaths resolves a batch argument into document paths: a directory
// yields its supported files (non-recursive), anything else is read as a
// list file with one path per line.
func CollectPaths(arg string, supported func(path string) bool) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", arg, err)
	}

	if info.IsDir() {
		return collectDir(arg, supported)
	}
	return ReadPathsFromFile(arg)
}

// collectDir lists the supported documents in a directory
func collectDir(dir string, supported func(path string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if supported(path) {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// ReadPathsFromFile reads document paths from a file (one per line)
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate paths
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
