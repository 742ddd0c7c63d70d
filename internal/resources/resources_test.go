package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesResource_Definition(t *testing.T) {
	h := NewHandler(nil)
	res := h.ProfilesResource()

	assert.Equal(t, ProfilesURI, res.URI)
	assert.Equal(t, "Unomi Profiles", res.Name)
	assert.Equal(t, "application/json", res.MIMEType)
}

func TestHandleProfiles(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cxs/profiles/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"list":  []any{map[string]any{"itemId": "p1"}},
		})
	}))
	t.Cleanup(srv.Close)
	h := NewHandler(unomi.New(unomi.ClientConfig{BaseURL: srv.URL, Key: "k"}))

	req := mcp.ReadResourceRequest{}
	req.Params.URI = ProfilesURI

	contents, err := h.HandleProfiles(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, ProfilesURI, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)
	assert.Contains(t, text.Text, "p1")

	assert.Equal(t, float64(10), received["limit"])
	assert.Equal(t, float64(0), received["offset"])
	cond := received["condition"].(map[string]any)
	assert.Equal(t, "matchAllCondition", cond["type"])
}

func TestHandleProfiles_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	h := NewHandler(unomi.New(unomi.ClientConfig{BaseURL: srv.URL, Key: "k"}))

	req := mcp.ReadResourceRequest{}
	req.Params.URI = ProfilesURI

	_, err := h.HandleProfiles(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing profiles")
}
