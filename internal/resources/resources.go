// Package resources implements the MCP resource handlers.
//
// One resource is exposed: a listing of the first profiles on the server,
// addressed as unomi://profiles/list. Unknown URIs are rejected by the MCP
// server before any handler runs.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/mcp"
)

// ProfilesURI is the only resource URI this server serves.
const ProfilesURI = "unomi://profiles/list"

const profileListLimit = 10

// Handler serves Unomi-backed MCP resources.
type Handler struct {
	client *unomi.Client
}

// NewHandler creates a resource Handler.
func NewHandler(client *unomi.Client) *Handler {
	return &Handler{client: client}
}

// ProfilesResource returns the MCP resource definition for registration.
func (h *Handler) ProfilesResource() mcp.Resource {
	return mcp.NewResource(
		ProfilesURI,
		"Unomi Profiles",
		mcp.WithResourceDescription("List of profiles from the Unomi server (first 10)"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleProfiles returns the first profiles from the server as raw JSON.
func (h *Handler) HandleProfiles(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	result, err := h.client.SearchProfiles(ctx, unomi.Query{
		Offset:    0,
		Limit:     profileListLimit,
		Condition: unomi.MatchAll(),
	})
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling profile list: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
