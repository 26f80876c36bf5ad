package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caseglance/caseglance/internal/pipeline"
)

var (
	renderOutputDir string
	renderStdout    bool
)

// renderCmd summarizes one export file
var renderCmd = &cobra.Command{
	Use:   "render <export.json>",
	Short: "Render client summaries from a record export file",
	Long: `Render reads a JSON record export, groups the records per client,
and writes one JSON and one Markdown summary per client.

All known export shapes are accepted: flat record arrays, {"records":
[...]} envelopes, bucket-grouped objects, and single {"fields": {...}}
records.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutputDir, "output", "o", "", "output directory (default: config output dir)")
	renderCmd.Flags().BoolVar(&renderStdout, "stdout", false, "print Markdown to stdout instead of writing files")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg.Output.Verbose)
	defer func() { _ = log.Sync() }()

	p, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}

	summaries, err := p.SummarizeFile(context.Background(), args[0])
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		return fmt.Errorf("no records in %s", args[0])
	}

	if renderStdout {
		renderer := newMarkdownRenderer(cfg)
		for _, s := range summaries {
			fmt.Print(renderer.Markdown(s))
			fmt.Println()
		}
		return nil
	}

	dir := renderOutputDir
	if dir == "" {
		dir = cfg.Output.Dir
	}
	paths, err := p.WriteReports(summaries, dir)
	if err != nil {
		return err
	}
	if cfg.Output.Verbose {
		for _, path := range paths {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
		}
	}
	fmt.Printf("Summarized %d client(s) into %s\n", len(summaries), dir)
	return nil
}
