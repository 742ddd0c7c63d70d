package tools

import (
	"context"
	"fmt"

	"github.com/cdp-labs/unomi-mcp/internal/profile"
	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetMyProfileTool reads the effective profile's properties through the
// context endpoint, optionally including segments and scores.
type GetMyProfileTool struct {
	client   *unomi.Client
	resolver *profile.Resolver
}

// NewGetMyProfileTool creates a GetMyProfileTool.
func NewGetMyProfileTool(client *unomi.Client, resolver *profile.Resolver) *GetMyProfileTool {
	return &GetMyProfileTool{client: client, resolver: resolver}
}

// Definition returns the MCP tool definition for registration.
func (t *GetMyProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("get_my_profile",
		mcp.WithDescription(
			"Read your own Unomi profile: all profile and session properties, "+
				"optionally segments and scores.",
		),
		mcp.WithBoolean("requireSegments",
			mcp.Description("Include the profile's segment memberships"),
		),
		mcp.WithBoolean("requireScores",
			mcp.Description("Include the profile's scores"),
		),
	)
}

// Handle processes the get_my_profile tool call.
func (t *GetMyProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := profile.EnsureScope(ctx, t.client, profile.DefaultScope); err != nil {
		return nil, fmt.Errorf("ensuring scope: %w", err)
	}

	args := req.GetArguments()
	if !isValidGetMyProfileArgs(args) {
		return nil, invalidParams("get_my_profile",
			"'requireSegments' and 'requireScores' must be booleans when present")
	}

	res, err := t.resolver.Resolve(ctx)
	if err != nil {
		return primaryActionError("resolving profile", err), nil
	}

	contextReq := unomi.ContextRequest{
		SessionID:                 res.SessionID,
		ProfileID:                 res.ProfileID,
		Source:                    t.resolver.Source(),
		RequiredProfileProperties: []string{"*"},
		RequiredSessionProperties: []string{"*"},
		RequireSegments:           boolArg(args, "requireSegments"),
		RequireScores:             boolArg(args, "requireScores"),
	}
	result, err := t.client.Context(ctx, contextReq)
	if err != nil {
		return primaryActionError("reading profile", err), nil
	}

	// Absent response fields stay nil in the payload; the remote schema is
	// not under this adapter's control.
	return jsonResult(map[string]any{
		"profileProperties": result["profileProperties"],
		"sessionProperties": result["sessionProperties"],
		"segments":          result["profileSegments"],
		"scores":            result["profileScores"],
		"profileId":         res.ProfileID,
		"sessionId":         res.SessionID,
		"resolvedVia":       res.Via,
	})
}
