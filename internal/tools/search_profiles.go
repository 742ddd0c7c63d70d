package tools

import (
	"context"

	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultSearchLimit  = 10
	defaultSearchOffset = 0
)

// SearchProfilesTool searches profiles by a free-text query matched against
// first name, last name, and email.
type SearchProfilesTool struct {
	client *unomi.Client
}

// NewSearchProfilesTool creates a SearchProfilesTool.
func NewSearchProfilesTool(client *unomi.Client) *SearchProfilesTool {
	return &SearchProfilesTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchProfilesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_profiles",
		mcp.WithDescription(
			"Search Unomi profiles. The query is matched (contains) against "+
				"firstName, lastName, and email.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 10)"),
		),
		mcp.WithNumber("offset",
			mcp.Description("Result offset for pagination (default 0)"),
		),
	)
}

// Handle processes the search_profiles tool call.
func (t *SearchProfilesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if !isValidSearchProfilesArgs(args) {
		return nil, invalidParams("search_profiles",
			"'query' must be a string; 'limit' and 'offset' must be numbers when present")
	}

	query := args["query"].(string)
	search := unomi.Query{
		Offset: intArg(args, "offset", defaultSearchOffset),
		Limit:  intArg(args, "limit", defaultSearchLimit),
		Condition: unomi.BooleanOr(
			unomi.PropertyCondition("properties.firstName", "contains", query),
			unomi.PropertyCondition("properties.lastName", "contains", query),
			unomi.PropertyCondition("properties.email", "contains", query),
		),
	}

	result, err := t.client.SearchProfiles(ctx, search)
	if err != nil {
		return primaryActionError("searching profiles", err), nil
	}
	return jsonResult(result)
}
