package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resourcedex/internal/adapters/sources"
	"resourcedex/internal/adapters/sqlite"
	"resourcedex/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a dataset as the local SQLite snapshot",
	Long: `Load a JSON or CSV dataset and replace the local SQLite snapshot with it.
Browse the snapshot afterwards with --data pointing at the .db file.

Examples:
  resourcedex-cli import Resources.csv
  resourcedex-cli import resources.json --db ./resources.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc, err := sources.Open(args[0], logger)
		if err != nil {
			return err
		}
		defer closeSrc()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := commands.NewImportCommand(src, store, logger).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d resources into %s (replaced %d) in %s\n",
			stats.RecordsRead, store.Describe(), stats.RecordsReplaced, stats.Duration.Round(time.Millisecond))
		return nil
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show what the local SQLite snapshot holds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		info, err := store.Info(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if info == nil {
			fmt.Fprintf(out, "No snapshot in %s yet, run import first\n", store.Describe())
			return nil
		}
		fmt.Fprintf(out, "Snapshot: %s\n", store.Describe())
		fmt.Fprintf(out, "Source:   %s\n", info.Source)
		fmt.Fprintf(out, "Records:  %d\n", info.Records)
		fmt.Fprintf(out, "Imported: %s\n", info.ImportedAt.Local().Format(time.RFC1123))
		return nil
	},
}

func openStore() (*sqlite.Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = sqlite.DefaultPath()
	}
	store := sqlite.NewStore(logger)
	if err := store.Open(path); err != nil {
		return nil, err
	}
	return store, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(snapshotCmd)
}
