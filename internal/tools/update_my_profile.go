package tools

import (
	"context"
	"fmt"

	"github.com/cdp-labs/unomi-mcp/internal/profile"
	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/mcp"
)

// UpdateMyProfileTool updates properties on the effective profile — the one
// resolved for the configured identity, not an arbitrary profile id.
type UpdateMyProfileTool struct {
	client   *unomi.Client
	resolver *profile.Resolver
}

// NewUpdateMyProfileTool creates an UpdateMyProfileTool.
func NewUpdateMyProfileTool(client *unomi.Client, resolver *profile.Resolver) *UpdateMyProfileTool {
	return &UpdateMyProfileTool{client: client, resolver: resolver}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateMyProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("update_my_profile",
		mcp.WithDescription(
			"Update properties on your own Unomi profile. Values may be "+
				"strings, numbers, booleans, or null.",
		),
		mcp.WithObject("properties",
			mcp.Required(),
			mcp.Description("Map of property name to new value"),
		),
	)
}

// Handle processes the update_my_profile tool call. The default scope is a
// precondition: without it the server drops update events without an error,
// so a scope-ensure failure is escalated rather than shaped into content.
func (t *UpdateMyProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := profile.EnsureScope(ctx, t.client, profile.DefaultScope); err != nil {
		return nil, fmt.Errorf("ensuring scope: %w", err)
	}

	args := req.GetArguments()
	if !isValidUpdateMyProfileArgs(args) {
		return nil, invalidParams("update_my_profile",
			"'properties' must be an object with string, number, boolean, or null values")
	}
	props := args["properties"].(map[string]any)

	res, err := t.resolver.Resolve(ctx)
	if err != nil {
		return primaryActionError("resolving profile", err), nil
	}

	// Unomi addresses profile properties with a "properties." prefix in
	// updateProperties events.
	update := make(map[string]any, len(props))
	for k, v := range props {
		update["properties."+k] = v
	}

	source := t.resolver.Source()
	contextReq := unomi.ContextRequest{
		SessionID: res.SessionID,
		ProfileID: res.ProfileID,
		Source:    source,
		Events: []unomi.Event{{
			EventType:  "updateProperties",
			Scope:      profile.DefaultScope,
			Source:     source,
			Properties: map[string]any{"update": update},
		}},
	}
	if _, err := t.client.Context(ctx, contextReq); err != nil {
		return primaryActionError("updating profile", err), nil
	}

	return jsonResult(map[string]any{
		"updatedProperties": update,
		"profileId":         res.ProfileID,
		"sessionId":         res.SessionID,
		"resolvedVia":       res.Via,
	})
}
