package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resourcedex/internal/adapters/sources"
	"resourcedex/internal/config"
	"resourcedex/internal/logging"
	"resourcedex/internal/ports"
)

var (
	cfgFile string
	v       = config.NewViper()
	cfg     config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "resourcedex-cli",
	Short: "Query a catalog of learning resources",
	Long: `resourcedex-cli queries a catalog of learning resources loaded from a
JSON export, a CSV spreadsheet export, or a local SQLite snapshot.

Filters match column values exactly and combine with AND. A search term
ranks results by fuzzy relevance, and --sort orders them by one column.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return initConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/resourcedex/config.yaml)")
	flags.StringP("data", "d", config.DefaultDataPath, "dataset file (.json, .csv, or .db snapshot)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("db", "", "SQLite snapshot path used by import and snapshot")

	_ = v.BindPFlag(config.KeyData, flags.Lookup("data"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyDB, flags.Lookup("db"))
}

func initConfig() error {
	if err := config.ReadFile(v, cfgFile); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	cfg = config.FromViper(v)

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("configuration loaded",
		zap.String("data", cfg.DataPath),
		zap.String("config", v.ConfigFileUsed()),
	)
	return nil
}

// openDataset opens the configured dataset. The returned close function is
// always safe to call.
func openDataset() (ports.DatasetSource, func() error, error) {
	return sources.Open(cfg.DataPath, logger)
}
