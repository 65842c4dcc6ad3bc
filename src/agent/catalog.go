package agent

import (
	"context"
	"fmt"
	"strings"
)

// Catalog is an ordered collection of tool specs with their handlers.
// Registration order is preserved so prompts and discovery endpoints render
// tools deterministically. Handlers are bound at construction; a spec without
// a handler is a registration error, never a silent dead entry.
type Catalog struct {
	specs    map[string]ToolSpec
	handlers map[string]Handler
	order    []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		specs:    make(map[string]ToolSpec),
		handlers: make(map[string]Handler),
	}
}

// Register adds a tool under a lower-cased key. Duplicate names and nil
// handlers return an error.
func (c *Catalog) Register(spec ToolSpec, handler Handler) error {
	key := strings.ToLower(strings.TrimSpace(spec.Name))
	if key == "" {
		return fmt.Errorf("tool name is empty")
	}
	if handler == nil {
		return fmt.Errorf("tool %s has no handler", spec.Name)
	}
	if _, exists := c.specs[key]; exists {
		return fmt.Errorf("tool %s already registered", spec.Name)
	}
	c.specs[key] = spec
	c.handlers[key] = handler
	c.order = append(c.order, key)
	return nil
}

// MustRegister is Register for static catalogs built at agent construction,
// where a bad entry is a programming error.
func (c *Catalog) MustRegister(spec ToolSpec, handler Handler) {
	if err := c.Register(spec, handler); err != nil {
		panic(err)
	}
}

// Specs returns the tool specifications in registration order.
func (c *Catalog) Specs() []ToolSpec {
	specs := make([]ToolSpec, 0, len(c.order))
	for _, key := range c.order {
		specs = append(specs, c.specs[key])
	}
	return specs
}

// Len reports the number of registered tools.
func (c *Catalog) Len() int { return len(c.order) }

// Execute dispatches a tool call to its handler and returns the normalized
// Result. Unknown names and handler panics are converted to failed Results;
// no fault escapes this boundary.
func (c *Catalog) Execute(ctx context.Context, name string, params map[string]any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Errorf("tool %s failed: %v", name, r)
		}
	}()

	handler, ok := c.handlers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Errorf("Unknown tool: %s", name)
	}
	if params == nil {
		params = map[string]any{}
	}
	return handler(ctx, params)
}
