package tools

import "testing"

func TestIsValidGetProfileArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want bool
	}{
		{"valid", map[string]any{"profileId": "user123"}, true},
		{"missing", map[string]any{}, false},
		{"nil args", nil, false},
		{"wrong type", map[string]any{"profileId": 42}, false},
		{"null", map[string]any{"profileId": nil}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isValidGetProfileArgs(tc.args); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidSearchProfilesArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want bool
	}{
		{"query only", map[string]any{"query": "john"}, true},
		{"with limit and offset", map[string]any{"query": "john", "limit": float64(5), "offset": float64(2)}, true},
		{"int limit", map[string]any{"query": "john", "limit": 5}, true},
		{"missing query", map[string]any{"limit": float64(5)}, false},
		{"query wrong type", map[string]any{"query": 42}, false},
		{"limit wrong type", map[string]any{"query": "john", "limit": "5"}, false},
		{"offset wrong type", map[string]any{"query": "john", "offset": true}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isValidSearchProfilesArgs(tc.args); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidGetMyProfileArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want bool
	}{
		{"empty", map[string]any{}, true},
		{"nil args", nil, true},
		{"both flags", map[string]any{"requireSegments": true, "requireScores": false}, true},
		{"segments wrong type", map[string]any{"requireSegments": "yes"}, false},
		{"scores wrong type", map[string]any{"requireScores": 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isValidGetMyProfileArgs(tc.args); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidUpdateMyProfileArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want bool
	}{
		{"string value", map[string]any{"properties": map[string]any{"firstName": "John"}}, true},
		{"number value", map[string]any{"properties": map[string]any{"age": float64(30)}}, true},
		{"bool value", map[string]any{"properties": map[string]any{"optIn": true}}, true},
		{"null value", map[string]any{"properties": map[string]any{"nickname": nil}}, true},
		{"mixed values", map[string]any{"properties": map[string]any{
			"firstName": "John", "age": 30, "optIn": false, "nickname": nil,
		}}, true},
		{"missing properties", map[string]any{}, false},
		{"properties not object", map[string]any{"properties": "firstName=John"}, false},
		{"nested object value", map[string]any{"properties": map[string]any{
			"address": map[string]any{"city": "Geneva"},
		}}, false},
		{"array value", map[string]any{"properties": map[string]any{
			"tags": []any{"a", "b"},
		}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isValidUpdateMyProfileArgs(tc.args); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidCreateScopeArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want bool
	}{
		{"scope only", map[string]any{"scope": "web"}, true},
		{"all fields", map[string]any{"scope": "web", "name": "Web", "description": "Web site"}, true},
		{"missing scope", map[string]any{"name": "Web"}, false},
		{"scope wrong type", map[string]any{"scope": 1}, false},
		{"name wrong type", map[string]any{"scope": "web", "name": 1}, false},
		{"description wrong type", map[string]any{"scope": "web", "description": false}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isValidCreateScopeArgs(tc.args); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
