// Package cli implements the caseglance command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caseglance/caseglance/internal/model"
)

var (
	cfgFile     string
	verbose     bool
	catalogPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "caseglance",
	Short: "Caseglance - one-glance summaries of legal case records",
	Long: `Caseglance turns raw case-management records into short, readable
client summaries: who the client is, what is coming up, and where each
matter stands.

Every piece of output text is a rendered field value from the source
records. Caseglance arranges data; it never writes prose of its own.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("caseglance v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.caseglance/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "field catalog file (default: built-in catalog)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("catalog_path", rootCmd.PersistentFlags().Lookup("catalog"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and CASEGLANCE_* environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".caseglance"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CASEGLANCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the runtime configuration: defaults, then config
// file / environment, then flags.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("source.base_url"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := viper.GetString("api_key"); v != "" {
		cfg.Source.APIKey = v
	}
	if v := viper.Get("source.timeout"); v != nil {
		if d := cast.ToDuration(v); d > 0 {
			cfg.Source.Timeout = d
		}
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetInt("concurrency.workers"); v > 0 {
		cfg.Concurrency.Workers = v
	}
	if v := viper.GetString("output.dir"); v != "" {
		cfg.Output.Dir = v
	}
	if v := viper.GetString("narrative.subject"); v != "" {
		cfg.Narrative.Subject = v
	}
	if v := viper.GetString("catalog_path"); v != "" {
		cfg.CatalogPath = v
	}
	cfg.Output.Verbose = viper.GetBool("verbose")

	if cfg.Cache.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".caseglance", "cache")
		} else {
			cfg.Cache.Enabled = false
		}
	}
	return cfg
}

// newLogger builds the CLI logger: debug-level development output when
// verbose, warnings only otherwise. Logs go to stderr, reports to files.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
