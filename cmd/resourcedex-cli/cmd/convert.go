package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resourcedex/internal/adapters/jsonfile"
	"resourcedex/internal/adapters/sources"
	"resourcedex/internal/application/commands"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output.json>",
	Short: "Convert a spreadsheet export to the JSON dataset format",
	Long: `Convert a CSV export (or any readable dataset) into the JSON array the
browser loads. Non-ASCII text is written as-is.

Examples:
  resourcedex-cli convert Resources.csv resources.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc, err := sources.Open(args[0], logger)
		if err != nil {
			return err
		}
		defer closeSrc()

		n, err := commands.NewConvertCommand(src, jsonfile.NewWriter(args[1]), logger).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d resources to %s\n", n, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
