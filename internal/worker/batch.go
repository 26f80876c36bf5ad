package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caseglance/caseglance/internal/model"
)

// Runner summarizes one exported payload file into per-client
// summaries.
type Runner interface {
	SummarizeFile(ctx context.Context, path string) ([]*model.Summary, error)
}

// FileJob summarizes one export file.
type FileJob struct {
	Path   string
	Runner Runner
}

// Execute runs the job.
func (j *FileJob) Execute(ctx context.Context) Result {
	summaries, err := j.Runner.SummarizeFile(ctx, j.Path)
	return &FileResult{Path: j.Path, Summaries: summaries, Error: err}
}

// FileResult is the outcome for one export file.
type FileResult struct {
	Path      string
	Summaries []*model.Summary
	Error     error
}

// GetError returns the job error, if any.
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor summarizes many export files concurrently.
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{runner: runner, concurrency: concurrency}
}

// ProcessFiles summarizes the given files on the pool. Results come
// back in completion order, not input order.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()
	for _, path := range paths {
		pool.Submit(&FileJob{Path: path, Runner: b.runner})
	}
	results := pool.Wait()

	out := make([]*FileResult, len(results))
	for i, r := range results {
		out[i] = r.(*FileResult)
	}
	return out
}

// ProcessDir summarizes every JSON export under dir.
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*FileResult, error) {
	paths, err := ListExports(dir)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return b.ProcessFiles(ctx, paths), nil
}

// ListExports finds the JSON export files in a directory, sorted by
// name, skipping dotfiles.
func ListExports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
