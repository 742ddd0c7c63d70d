// Package profile resolves which remote profile an identity-scoped tool
// call operates on, and owns the session-id and scope preconditions that
// those calls depend on.
package profile

import (
	"context"
	"fmt"

	"github.com/cdp-labs/unomi-mcp/internal/config"
	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/rs/zerolog/log"
)

// Via tags which resolution path produced the effective profile id.
type Via string

const (
	// ViaEmailLookup means the profile was found by exact email match.
	ViaEmailLookup Via = "email_lookup"
	// ViaEnvironment means the statically configured fallback id was used.
	ViaEnvironment Via = "environment"
)

// Resolution is the outcome of resolving the effective profile.
type Resolution struct {
	ProfileID string
	SessionID string
	Via       Via
}

// Resolver determines the effective profile id for "my profile" operations.
type Resolver struct {
	client *unomi.Client
	cfg    *config.Config
}

// NewResolver creates a Resolver bound to the given client and config.
func NewResolver(client *unomi.Client, cfg *config.Config) *Resolver {
	return &Resolver{client: client, cfg: cfg}
}

// Source is the event/context source descriptor for this integration.
func (r *Resolver) Source() unomi.Source {
	return unomi.Source{
		ItemID:   r.cfg.SourceID,
		ItemType: "site",
		Scope:    DefaultScope,
	}
}

// Resolve determines the effective profile id.
//
// When an email is configured, the profile index is searched for an exact
// match on properties.email. A hit wins over the configured fallback id.
// On a miss the fallback id is used, and the configured email is stamped
// onto that profile with a best-effort updateProperties event: a failed
// stamp is logged and swallowed, never surfaced to the tool caller.
//
// A transport failure during the lookup itself is returned as an error and
// handled by the caller like any other failure of the primary action.
func (r *Resolver) Resolve(ctx context.Context) (Resolution, error) {
	if r.cfg.Email == "" {
		return r.fallback(), nil
	}

	profileID, found, err := r.lookupByEmail(ctx)
	if err != nil {
		return Resolution{}, err
	}
	if found {
		return Resolution{
			ProfileID: profileID,
			SessionID: SessionID(profileID),
			Via:       ViaEmailLookup,
		}, nil
	}

	r.stampEmail(ctx)
	return r.fallback(), nil
}

func (r *Resolver) fallback() Resolution {
	return Resolution{
		ProfileID: r.cfg.ProfileID,
		SessionID: SessionID(r.cfg.ProfileID),
		Via:       ViaEnvironment,
	}
}

// lookupByEmail searches for a single profile whose email property equals
// the configured address.
func (r *Resolver) lookupByEmail(ctx context.Context) (string, bool, error) {
	query := unomi.Query{
		Offset:    0,
		Limit:     1,
		Condition: unomi.PropertyCondition("properties.email", "equals", r.cfg.Email),
	}
	result, err := r.client.SearchProfiles(ctx, query)
	if err != nil {
		return "", false, fmt.Errorf("email lookup: %w", err)
	}

	list, _ := result["list"].([]any)
	if len(list) == 0 {
		return "", false, nil
	}
	entry, _ := list[0].(map[string]any)
	id, _ := entry["itemId"].(string)
	if id == "" {
		return "", false, nil
	}
	return id, true, nil
}

// stampEmail opportunistically writes the configured email onto the
// fallback profile so the next lookup can find it. Best-effort: failure is
// logged at warn level and swallowed.
func (r *Resolver) stampEmail(ctx context.Context) {
	source := r.Source()
	req := unomi.ContextRequest{
		SessionID: SessionID(r.cfg.ProfileID),
		ProfileID: r.cfg.ProfileID,
		Source:    source,
		Events: []unomi.Event{{
			EventType: "updateProperties",
			Scope:     DefaultScope,
			Source:    source,
			Properties: map[string]any{
				"update": map[string]any{"properties.email": r.cfg.Email},
			},
		}},
	}
	if _, err := r.client.Context(ctx, req); err != nil {
		log.Warn().Err(err).Str("profileId", r.cfg.ProfileID).
			Msg("best-effort email stamp failed")
	}
}
