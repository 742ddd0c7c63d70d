// Package server wires the MCP components and creates the server instance.
//
// This is the composition root: it builds the Unomi client and the profile
// resolver from the validated configuration and registers every tool and
// resource. No business logic lives here, only wiring.
package server

import (
	"github.com/cdp-labs/unomi-mcp/internal/config"
	"github.com/cdp-labs/unomi-mcp/internal/profile"
	"github.com/cdp-labs/unomi-mcp/internal/resources"
	"github.com/cdp-labs/unomi-mcp/internal/tools"
	"github.com/cdp-labs/unomi-mcp/internal/unomi"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all tools and resources registered.
// cfg must already be validated by config.Load.
func New(cfg *config.Config) *server.MCPServer {
	client := unomi.New(unomi.ClientConfig{
		BaseURL:  cfg.BaseURL,
		Username: cfg.Username,
		Password: cfg.Password,
		Key:      cfg.Key,
	})
	resolver := profile.NewResolver(client, cfg)

	s := server.NewMCPServer(
		"unomi-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	getProfile := tools.NewGetProfileTool(client)
	s.AddTool(getProfile.Definition(), getProfile.Handle)

	searchProfiles := tools.NewSearchProfilesTool(client)
	s.AddTool(searchProfiles.Definition(), searchProfiles.Handle)

	getMyProfile := tools.NewGetMyProfileTool(client, resolver)
	s.AddTool(getMyProfile.Definition(), getMyProfile.Handle)

	updateMyProfile := tools.NewUpdateMyProfileTool(client, resolver)
	s.AddTool(updateMyProfile.Definition(), updateMyProfile.Handle)

	createScope := tools.NewCreateScopeTool(client)
	s.AddTool(createScope.Definition(), createScope.Handle)

	resourceHandler := resources.NewHandler(client)
	s.AddResource(resourceHandler.ProfilesResource(), resourceHandler.HandleProfiles)

	return s
}

// serverInstructions tells the host how to use the toolset.
func serverInstructions() string {
	return `You have access to an Apache Unomi customer data platform.

Tools:
- get_profile: fetch any profile by its id
- search_profiles: find profiles by name or email fragments
- get_my_profile: read the profile of the configured identity (properties,
  optionally segments and scores)
- update_my_profile: set properties on the configured identity's profile
- create_scope: create a scope (namespace) for tracked events

"My profile" tools operate on the profile resolved for the configured
identity: when an email address is configured, the profile matching it wins
over the statically configured profile id. Responses report which
resolution path was used (email_lookup or environment).

Profile properties are free-form; use update_my_profile with any
string/number/boolean values that are useful to remember about the user.`
}
