package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caseglance/caseglance/internal/engine"
	"github.com/caseglance/caseglance/internal/model"
	"github.com/caseglance/caseglance/internal/pipeline"
	"github.com/caseglance/caseglance/internal/worker"
)

var batchOutputDir string

// batchCmd summarizes a directory of export files concurrently
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Render summaries for every export file in a directory",
	Long: `Batch finds the JSON export files under a directory and summarizes
them concurrently on a worker pool. Each client's reports land in the
output directory regardless of which export file they came from.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "output", "o", "", "output directory (default: config output dir)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg.Output.Verbose)
	defer func() { _ = log.Sync() }()

	p, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results, err := processor.ProcessDir(context.Background(), args[0])
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no export files in %s", args[0])
	}

	dir := batchOutputDir
	if dir == "" {
		dir = cfg.Output.Dir
	}

	var summaries []*model.Summary
	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Error)
			continue
		}
		summaries = append(summaries, res.Summaries...)
	}
	if _, err := p.WriteReports(summaries, dir); err != nil {
		return err
	}

	fmt.Printf("Processed %d file(s): %d client summaries, %d failed\n",
		len(results), len(summaries), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// newMarkdownRenderer builds a standalone output renderer for stdout use.
func newMarkdownRenderer(cfg *model.Config) *engine.Renderer {
	return engine.NewRenderer(cfg.Output.IncludeFooter)
}
