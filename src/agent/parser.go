package agent

import (
	"encoding/json"
	"strings"
)

// The model is steered toward a fixed two-line convention for tool calls:
//
//	USE_TOOL: tool_name
//	PARAMETERS: {"param": "value"}
//
// Free-text function calling is fragile, so the parser degrades instead of
// failing: a missing marker means "no call", unparseable parameters mean
// "call with empty parameters". It never returns an error.

const (
	toolMarker   = "USE_TOOL:"
	paramsMarker = "PARAMETERS:"
)

// ParseOutcome classifies what Parse found, so callers branch on an enum
// instead of catching faults.
type ParseOutcome int

const (
	// NoCall means the response contains no tool invocation.
	NoCall ParseOutcome = iota
	// Call means a tool name and a valid JSON parameter object were found.
	Call
	// CallBadParams means the tool marker was present but the parameter
	// line was missing or not valid JSON; Params is empty.
	CallBadParams
)

// Invocation is a parsed tool call. Transient: produced per model turn,
// never persisted.
type Invocation struct {
	Tool   string
	Params map[string]any
}

// Parse extracts at most one tool invocation from raw model output. Only the
// first occurrence of each marker is honored; the protocol supports exactly
// one tool call per model turn, and multi-step flows take a new turn per
// call.
func Parse(text string) (Invocation, ParseOutcome) {
	var (
		tool        string
		params      map[string]any
		paramsValid bool
		paramsSeen  bool
	)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		switch {
		case tool == "" && strings.HasPrefix(line, toolMarker):
			tool = strings.TrimSpace(strings.TrimPrefix(line, toolMarker))
		case !paramsSeen && strings.HasPrefix(line, paramsMarker):
			paramsSeen = true
			raw := strings.TrimSpace(strings.TrimPrefix(line, paramsMarker))
			if err := json.Unmarshal([]byte(raw), &params); err == nil && params != nil {
				paramsValid = true
			}
		}
	}

	if tool == "" {
		return Invocation{Params: map[string]any{}}, NoCall
	}
	if !paramsValid {
		return Invocation{Tool: tool, Params: map[string]any{}}, CallBadParams
	}
	return Invocation{Tool: tool, Params: params}, Call
}
