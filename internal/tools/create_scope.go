package tools

import (
	"context"

	"github.com/cdp-labs/unomi-mcp/internal/profile"
	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/mcp"
)

// CreateScopeTool creates a Unomi scope. Scopes are namespaces the server
// requires before it accepts profile-update events for them.
type CreateScopeTool struct {
	client *unomi.Client
}

// NewCreateScopeTool creates a CreateScopeTool.
func NewCreateScopeTool(client *unomi.Client) *CreateScopeTool {
	return &CreateScopeTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateScopeTool) Definition() mcp.Tool {
	return mcp.NewTool("create_scope",
		mcp.WithDescription(
			"Create a scope in Unomi. Scopes must exist before profile "+
				"update events in them are accepted.",
		),
		mcp.WithString("scope",
			mcp.Required(),
			mcp.Description("Scope identifier"),
		),
		mcp.WithString("name",
			mcp.Description("Display name (defaults to 'Scope <id>')"),
		),
		mcp.WithString("description",
			mcp.Description("Scope description"),
		),
	)
}

// Handle processes the create_scope tool call.
func (t *CreateScopeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if !isValidCreateScopeArgs(args) {
		return nil, invalidParams("create_scope",
			"'scope' must be a string; 'name' and 'description' must be strings when present")
	}

	scope := profile.NewScope(
		args["scope"].(string),
		stringArg(args, "name"),
		stringArg(args, "description"),
	)
	if err := t.client.SaveScope(ctx, scope); err != nil {
		return primaryActionError("creating scope", err), nil
	}
	return jsonResult(scope)
}
