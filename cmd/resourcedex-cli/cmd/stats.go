package cmd

import (
	"context"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"resourcedex/internal/application/commands"
)

var statsBy string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count resources per column value",
	Long: `Count resources per value of a filterable column.

Examples:
  resourcedex-cli stats
  resourcedex-cli stats --by cost`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc, err := openDataset()
		if err != nil {
			return err
		}
		defer closeSrc()

		stats, err := commands.NewStatsCommand(src, logger, statsBy).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d resources by %s\n\n", stats.Total, stats.Field.Key())
		for _, c := range stats.Counts {
			value := c.Value
			if value == "" {
				value = "(empty)"
			}
			fmt.Fprintf(out, "  %s %5d\n", runewidth.FillRight(truncate(value, 30), 30), c.Count)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsBy, "by", "category", "column to group by")
	rootCmd.AddCommand(statsCmd)
}
