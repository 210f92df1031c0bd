package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources, optionally filtered and sorted",
	Long: `List resources in dataset order, narrowed by exact column filters.

Examples:
  resourcedex-cli list
  resourcedex-cli list --category AI --cost Free
  resourcedex-cli list --sort priority --desc --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, listFlags, "")
	},
}

var listFlags *queryFlags

func init() {
	listFlags = addQueryFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}
