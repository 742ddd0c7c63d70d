package tools

import (
	"context"

	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetProfileTool fetches a profile by its literal identifier.
type GetProfileTool struct {
	client *unomi.Client
}

// NewGetProfileTool creates a GetProfileTool.
func NewGetProfileTool(client *unomi.Client) *GetProfileTool {
	return &GetProfileTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("get_profile",
		mcp.WithDescription(
			"Fetch a Unomi profile by its identifier. "+
				"Returns the raw profile record including properties, segments, and scores.",
		),
		mcp.WithString("profileId",
			mcp.Required(),
			mcp.Description("The profile identifier to fetch"),
		),
	)
}

// Handle processes the get_profile tool call.
func (t *GetProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if !isValidGetProfileArgs(args) {
		return nil, invalidParams("get_profile", "'profileId' must be a string")
	}

	result, err := t.client.GetProfile(ctx, args["profileId"].(string))
	if err != nil {
		return primaryActionError("fetching profile", err), nil
	}
	return jsonResult(result)
}
