package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Fuzzy search the catalog",
	Long: `Search resources by category, subcategory, name, type, description
and URL.

Results are ranked by relevance using fuzzy matching: an exact substring
ranks highest, then tighter subsequence matches. --sort overrides the
ranking with a column order.

Examples:
  resourcedex-cli search deep
  resourcedex-cli search "prompt guide" --category AI
  resourcedex-cli search python --sort cost`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, searchFlags, strings.Join(args, " "))
	},
}

var searchFlags *queryFlags

func init() {
	searchFlags = addQueryFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
