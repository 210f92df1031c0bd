package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resourcedex/internal/application/commands"
)

var facetsCmd = &cobra.Command{
	Use:   "facets [field]",
	Short: "List the values each filter accepts",
	Long: `List the distinct values of the filterable columns (category,
subcategory, type, cost, skill, priority), or of one column.

Examples:
  resourcedex-cli facets
  resourcedex-cli facets skill`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := ""
		if len(args) == 1 {
			field = args[0]
		}

		src, closeSrc, err := openDataset()
		if err != nil {
			return err
		}
		defer closeSrc()

		facetsCmd := commands.NewFacetsCommand(src, logger, field)
		if err := facetsCmd.Validate(); err != nil {
			return err
		}
		facets, err := facetsCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range facets {
			fmt.Fprintf(out, "%s (--%s):\n", f.Field.Key(), f.Field.Name())
			for _, v := range f.Values {
				if v == "" {
					v = "(empty)"
				}
				fmt.Fprintf(out, "  %s\n", v)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}
