package unomi

// The remote schema is owned by the Unomi server, not by this adapter, so
// profile properties, scores and segments are modeled as open string-keyed
// maps rather than fixed structs. Only the envelopes this adapter builds
// itself get concrete types.

// Scope is a namespace that must exist before profile-update events are
// accepted by the server.
type Scope struct {
	ItemID      string         `json:"itemId"`
	ItemType    string         `json:"itemType"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Source identifies the origin of an event or context request.
type Source struct {
	ItemID   string `json:"itemId"`
	ItemType string `json:"itemType"`
	Scope    string `json:"scope"`
}

// Event is a single tracked event carried inside a context request.
type Event struct {
	EventType  string         `json:"eventType"`
	Scope      string         `json:"scope"`
	Source     Source         `json:"source"`
	Properties map[string]any `json:"properties,omitempty"`
}

// ContextRequest is the envelope POSTed to /context.json for both reads
// (property/segment/score retrieval) and writes (events).
type ContextRequest struct {
	SessionID                 string   `json:"sessionId"`
	ProfileID                 string   `json:"profileId"`
	Source                    Source   `json:"source"`
	Events                    []Event  `json:"events,omitempty"`
	RequiredProfileProperties []string `json:"requiredProfileProperties,omitempty"`
	RequiredSessionProperties []string `json:"requiredSessionProperties,omitempty"`
	RequireSegments           bool     `json:"requireSegments,omitempty"`
	RequireScores             bool     `json:"requireScores,omitempty"`
}

// Condition is a node in Unomi's query condition tree.
type Condition struct {
	Type            string         `json:"type"`
	ParameterValues map[string]any `json:"parameterValues"`
}

// Query is the body of a profile search request.
type Query struct {
	Offset    int       `json:"offset"`
	Limit     int       `json:"limit"`
	Condition Condition `json:"condition"`
}

// PropertyCondition matches a single profile property against a value.
// Property names are addressed with the "properties." prefix, e.g.
// "properties.email".
func PropertyCondition(name, operator string, value any) Condition {
	return Condition{
		Type: "profilePropertyCondition",
		ParameterValues: map[string]any{
			"propertyName":       name,
			"comparisonOperator": operator,
			"propertyValue":      value,
		},
	}
}

// BooleanOr combines sub-conditions with OR.
func BooleanOr(subConditions ...Condition) Condition {
	return Condition{
		Type: "booleanCondition",
		ParameterValues: map[string]any{
			"operator":      "or",
			"subConditions": subConditions,
		},
	}
}

// MatchAll matches every profile.
func MatchAll() Condition {
	return Condition{
		Type:            "matchAllCondition",
		ParameterValues: map[string]any{},
	}
}
