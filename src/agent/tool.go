package agent

import (
	"context"
	"fmt"
)

// ToolSpec describes a single invocable operation: its name, a description
// the model sees when choosing tools, and a JSON-schema-like parameter
// object (properties, required, defaults). Specs are immutable once
// registered.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Handler executes one tool call. Implementations must convert every
// underlying fault into a failed Result; the catalog additionally converts
// panics, so a raw fault never reaches the runtime.
type Handler func(ctx context.Context, params map[string]any) Result

// Result is the normalized envelope returned by every tool execution.
// Success=false implies Err is set.
type Result struct {
	Success bool   `json:"success"`
	Payload any    `json:"payload,omitempty"`
	Err     string `json:"error,omitempty"`
}

// OK wraps a payload in a successful Result.
func OK(payload any) Result {
	return Result{Success: true, Payload: payload}
}

// Text wraps a pre-formatted, human-readable message. The formatter returns
// such payloads to the user verbatim.
func Text(format string, args ...any) Result {
	return Result{Success: true, Payload: fmt.Sprintf(format, args...)}
}

// Errorf builds a failed Result.
func Errorf(format string, args ...any) Result {
	return Result{Success: false, Err: fmt.Sprintf(format, args...)}
}

// StringParam reads an optional string parameter, falling back to def when
// the key is absent, empty, or not a string.
func StringParam(params map[string]any, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// IntParam reads an optional integer parameter. JSON numbers arrive as
// float64, but tolerate native ints from direct callers too.
func IntParam(params map[string]any, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}
