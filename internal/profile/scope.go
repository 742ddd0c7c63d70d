package profile

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/rs/zerolog/log"
)

// DefaultScope is the namespace used for identity-scoped operations.
const DefaultScope = "claude-desktop"

const scopeDescription = "Scope created automatically by the Unomi MCP server"

// NewScope builds a scope record, filling in the display name and
// description when the caller left them empty. The scope id is echoed into
// the metadata, which is how the server keys scope lookups.
func NewScope(id, name, description string) unomi.Scope {
	if name == "" {
		name = "Scope " + id
	}
	if description == "" {
		description = scopeDescription
	}
	return unomi.Scope{
		ItemID:      id,
		ItemType:    "scope",
		Name:        name,
		Description: description,
		Metadata:    map[string]any{"id": id},
	}
}

// EnsureScope checks that the named scope exists on the server and creates
// it when absent. The server answers a missing scope with either 204 or an
// empty object, so both are treated as absent. Without the scope, profile
// update events are silently dropped by the server, which is why any
// failure here is escalated to the caller instead of being converted into
// tool output.
func EnsureScope(ctx context.Context, client *unomi.Client, scopeID string) error {
	status, body, err := client.GetScope(ctx, scopeID)
	if err != nil {
		return fmt.Errorf("checking scope %q: %w", scopeID, err)
	}
	if status != http.StatusNoContent && len(body) > 0 {
		return nil
	}

	scope := NewScope(scopeID, "", "")
	if err := client.SaveScope(ctx, scope); err != nil {
		return fmt.Errorf("creating scope %q: %w", scopeID, err)
	}
	log.Info().Str("scope", scopeID).Msg("created missing scope")
	return nil
}
