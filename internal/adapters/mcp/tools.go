package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"resourcedex/internal/application/commands"
	"resourcedex/internal/domain"
	"resourcedex/internal/ports"
)

// DefaultLimit caps how many records the query tool prints
const DefaultLimit = 50

// RegisterTools adds the read-only catalog tools to the MCP server.
func RegisterTools(s *server.MCPServer, source ports.DatasetSource, logger *zap.Logger) {
	s.AddTool(queryTool(), queryHandler(source, logger))
	s.AddTool(facetsTool(), facetsHandler(source, logger))
	s.AddTool(statsTool(), statsHandler(source, logger))
}

// --- query ---

func queryTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Query the resource catalog. Filters are exact matches and combine with AND. A search term ranks results by fuzzy relevance; an explicit sort orders them by one column instead."),
	}
	for _, f := range domain.FilterFields {
		opts = append(opts, mcp.WithString(f.Name(),
			mcp.Description(fmt.Sprintf("Exact %s value (use the facets tool to list values)", f.Key())),
		))
	}
	opts = append(opts,
		mcp.WithString("search",
			mcp.Description("Fuzzy search term matched against category, subcategory, name, type, description and URL"),
		),
		mcp.WithString("sort",
			mcp.Description("Column to sort by (category, subcategory, name, type, cost, description, url, skill, priority)"),
		),
		mcp.WithBoolean("descending",
			mcp.Description("Sort descending instead of ascending"),
		),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum records to return (default %d, 0 for all)", DefaultLimit)),
		),
	)
	return mcp.NewTool("query", opts...)
}

func queryHandler(source ports.DatasetSource, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewQueryCommand(source, logger)
		for _, f := range domain.FilterFields {
			if v := req.GetString(f.Name(), ""); v != "" {
				cmd.Filters[f.Name()] = v
			}
		}
		cmd.Search = req.GetString("search", "")
		cmd.SortField = req.GetString("sort", "")
		cmd.Descending = req.GetBool("descending", false)

		if err := cmd.Validate(); err != nil {
			return toolError(err)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		limit := req.GetInt("limit", DefaultLimit)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s. %s.\n", result.Summary(), domain.DescribeDimensions(result.ActiveDimensions))
		if result.Empty() {
			sb.WriteString("No results.\n")
			return mcp.NewToolResultText(sb.String()), nil
		}

		sb.WriteByte('\n')
		for i, r := range result.Records {
			if limit > 0 && i >= limit {
				fmt.Fprintf(&sb, "... %d more\n", result.ResultCount-limit)
				break
			}
			sb.WriteString(formatRecord(r))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- facets ---

func facetsTool() mcp.Tool {
	return mcp.NewTool("facets",
		mcp.WithDescription("List the distinct values of the filterable columns, usable as query filters."),
		mcp.WithString("field",
			mcp.Description("Only list this column (category, subcategory, type, cost, skill, priority). Omit for all."),
		),
	)
}

func facetsHandler(source ports.DatasetSource, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewFacetsCommand(source, logger, req.GetString("field", ""))
		if err := cmd.Validate(); err != nil {
			return toolError(err)
		}

		facets, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, f := range facets {
			fmt.Fprintf(&sb, "%s (%s):\n", f.Field.Key(), f.Field.Name())
			if len(f.Values) == 0 {
				sb.WriteString("  (none)\n")
			}
			for _, v := range f.Values {
				fmt.Fprintf(&sb, "  %s\n", v)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Count resources per value of a filterable column."),
		mcp.WithString("field",
			mcp.Description("Column to group by (default category)"),
		),
	)
}

func statsHandler(source ports.DatasetSource, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewStatsCommand(source, logger, req.GetString("field", ""))
		stats, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d resources by %s:\n", stats.Total, stats.Field.Key())
		for _, c := range stats.Counts {
			fmt.Fprintf(&sb, "  %-24s %d\n", c.Value, c.Count)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatRecord(r domain.Record) string {
	var parts []string
	for _, f := range domain.FilterFields {
		if v := r.Value(f); v != "" {
			parts = append(parts, v)
		}
	}

	line := r.Name
	if len(parts) > 0 {
		line += "  [" + strings.Join(parts, " / ") + "]"
	}
	if r.URL != "" {
		line += "  " + r.URL
	}
	return line
}
