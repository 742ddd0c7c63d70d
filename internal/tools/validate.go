package tools

// Argument validators. Pure predicates over the decoded argument map: no
// coercion, no defaulting, no panics. Required fields must be present with
// the right primitive type; optional fields, when present, must match
// theirs. Defaulting happens in the handlers, after validation.

func isValidGetProfileArgs(args map[string]any) bool {
	return isString(args["profileId"])
}

func isValidSearchProfilesArgs(args map[string]any) bool {
	if !isString(args["query"]) {
		return false
	}
	return optional(args, "limit", isNumber) && optional(args, "offset", isNumber)
}

func isValidGetMyProfileArgs(args map[string]any) bool {
	return optional(args, "requireSegments", isBool) && optional(args, "requireScores", isBool)
}

func isValidUpdateMyProfileArgs(args map[string]any) bool {
	props, ok := args["properties"].(map[string]any)
	if !ok {
		return false
	}
	for _, v := range props {
		if !isScalarOrNull(v) {
			return false
		}
	}
	return true
}

func isValidCreateScopeArgs(args map[string]any) bool {
	if !isString(args["scope"]) {
		return false
	}
	return optional(args, "name", isString) && optional(args, "description", isString)
}

func optional(args map[string]any, key string, pred func(any) bool) bool {
	v, present := args[key]
	return !present || pred(v)
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// isNumber accepts float64 (what encoding/json produces) and int (what
// in-process callers tend to hand over).
func isNumber(v any) bool {
	switch v.(type) {
	case float64, int:
		return true
	default:
		return false
	}
}

// isScalarOrNull accepts the value types a profile property may carry:
// string, number, boolean, or null. Nested containers are rejected.
func isScalarOrNull(v any) bool {
	if v == nil {
		return true
	}
	return isString(v) || isBool(v) || isNumber(v)
}
