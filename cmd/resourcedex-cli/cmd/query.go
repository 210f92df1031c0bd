package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"resourcedex/internal/adapters/jsonfile"
	"resourcedex/internal/application"
	"resourcedex/internal/application/commands"
	"resourcedex/internal/domain"
)

// queryFlags holds the filter and sort flags shared by list and search
type queryFlags struct {
	filters    map[domain.Field]*string
	sort       string
	descending bool
	jsonOut    bool
	limit      int
}

func addQueryFlags(cmd *cobra.Command) *queryFlags {
	qf := &queryFlags{filters: make(map[domain.Field]*string, len(domain.FilterFields))}
	for _, f := range domain.FilterFields {
		qf.filters[f] = cmd.Flags().String(f.Name(), "", fmt.Sprintf("only resources whose %s is exactly this value", f.Key()))
	}
	cmd.Flags().StringVarP(&qf.sort, "sort", "s", "", "sort by column (category, subcategory, name, type, cost, description, url, skill, priority)")
	cmd.Flags().BoolVar(&qf.descending, "desc", false, "sort descending")
	cmd.Flags().BoolVar(&qf.jsonOut, "json", false, "print matching resources as JSON")
	cmd.Flags().IntVarP(&qf.limit, "limit", "n", 0, "print at most this many resources (0 for all)")
	return qf
}

func runQuery(cmd *cobra.Command, qf *queryFlags, term string) error {
	src, closeSrc, err := openDataset()
	if err != nil {
		return err
	}
	defer closeSrc()

	q := commands.NewQueryCommand(src, logger)
	for f, v := range qf.filters {
		if *v != "" {
			q.Filters[f.Name()] = *v
		}
	}
	q.Search = term
	q.SortField = qf.sort
	q.Descending = qf.descending

	if err := q.Validate(); err != nil {
		return err
	}

	result, err := q.Execute(context.Background())
	if err != nil {
		return err
	}

	records := result.Records
	if qf.limit > 0 && len(records) > qf.limit {
		records = records[:qf.limit]
	}

	out := cmd.OutOrStdout()
	if qf.jsonOut {
		return jsonfile.Encode(out, records)
	}
	printResult(out, result, records)
	return nil
}

// printed columns and their widths
var listColumns = []struct {
	field domain.Field
	width int
}{
	{domain.FieldName, 36},
	{domain.FieldCategory, 16},
	{domain.FieldType, 10},
	{domain.FieldCost, 8},
	{domain.FieldSkillLevel, 12},
	{domain.FieldURL, 40},
}

func printResult(w io.Writer, result application.Result, records []domain.Record) {
	if result.Empty() {
		fmt.Fprintln(w, "No results")
	} else {
		var header []string
		for _, c := range listColumns {
			header = append(header, runewidth.FillRight(c.field.Key(), c.width))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(header, " "), " "))

		for _, r := range records {
			var cells []string
			for _, c := range listColumns {
				cells = append(cells, runewidth.FillRight(truncate(r.Value(c.field), c.width), c.width))
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
		}
		if len(records) < result.ResultCount {
			fmt.Fprintf(w, "... %d more\n", result.ResultCount-len(records))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s. %s.\n", result.Summary(), domain.DescribeDimensions(result.ActiveDimensions))
}

func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
