// Package tools implements the MCP tool handlers for the Unomi adapter.
//
// Each tool is a struct receiving its dependencies via constructor and
// exposing Definition() plus a Handle method compatible with mcp-go's
// CallToolRequest signature. One file per tool.
//
// Failures are shaped by three distinct policies, and the distinction is
// load-bearing for callers:
//   - argument validation and scope preconditions fault at the protocol
//     level (Handle returns a non-nil error);
//   - the tool's primary remote call degrades to isError tool content;
//   - the resolver's opportunistic email write is swallowed entirely
//     (see the profile package).
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// invalidParams signals an argument-validation failure as a protocol-level
// fault. Raised before any remote call.
func invalidParams(tool, detail string) error {
	return fmt.Errorf("invalid arguments for %s: %s", tool, detail)
}

// primaryActionError converts a transport failure on the tool's main remote
// call into error content, keeping the protocol channel reserved for
// validation and precondition faults.
func primaryActionError(action string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err))
}

// jsonResult renders the payload as indented JSON tool content.
func jsonResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// intArg reads an optional numeric argument, tolerating both float64 (JSON
// decoding) and int (direct construction in tests).
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

// boolArg reads an optional boolean argument.
func boolArg(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

// stringArg reads an optional string argument, empty when absent.
func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}
