package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caseglance/caseglance/internal/catalog"
)

// catalogCmd manages the field catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the field catalog",
	Long: `The field catalog drives everything caseglance does with a record:
which fields are meaningful, what they mean, how they render, and how
matters are detected. These commands inspect the active catalog and
write a starting point for customization.`,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active catalog as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		cat := catalog.Default()
		if cfg.CatalogPath != "" {
			loaded, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			cat = loaded
			fmt.Fprintf(os.Stderr, "Catalog file: %s\n\n", cfg.CatalogPath)
		} else {
			fmt.Fprintf(os.Stderr, "Using built-in catalog\n\n")
		}
		data, err := cat.Marshal()
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var catalogInitCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write the built-in catalog to a file for customization",
	Long: `Writes the built-in catalog as YAML. Edit the file, then point
caseglance at it with --catalog or catalog_path in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s", path)
		}
		data, err := catalog.Default().Marshal()
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		fmt.Printf("✓ Wrote catalog: %s\n", path)
		fmt.Printf("\nUse it with:\n  caseglance render --catalog %s <export.json>\n", path)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogInitCmd)
	rootCmd.AddCommand(catalogCmd)
}
