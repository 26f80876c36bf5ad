package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caseglance/caseglance/internal/pipeline"
)

var (
	pullTables    []string
	pullOutputDir string
)

// pullCmd fetches records from the store API and summarizes them
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull records from the store API and render summaries",
	Long: `Pull fetches the configured tables from the record store API,
groups the records per client, and writes summaries.

Requires source.base_url in the config file or CASEGLANCE_SOURCE_BASE_URL,
and usually an API key via CASEGLANCE_API_KEY. Responses are cached, so
re-running shortly after a pull will not hit the API again.`,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().StringSliceVarP(&pullTables, "table", "t", []string{"clients"}, "tables to pull (repeatable)")
	pullCmd.Flags().StringVarP(&pullOutputDir, "output", "o", "", "output directory (default: config output dir)")
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.Source.BaseURL == "" {
		return fmt.Errorf("no source base URL configured (set source.base_url or CASEGLANCE_SOURCE_BASE_URL)")
	}
	log := newLogger(cfg.Output.Verbose)
	defer func() { _ = log.Sync() }()

	p, err := pipeline.New(cfg, log)
	if err != nil {
		return err
	}

	summaries, err := p.SummarizePull(context.Background(), pullTables)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		return fmt.Errorf("no records in tables %v", pullTables)
	}

	dir := pullOutputDir
	if dir == "" {
		dir = cfg.Output.Dir
	}
	if _, err := p.WriteReports(summaries, dir); err != nil {
		return err
	}
	fmt.Printf("Summarized %d client(s) into %s\n", len(summaries), dir)
	return nil
}
