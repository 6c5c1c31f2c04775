// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a service client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "akamai_list_properties")
	Name string

	// Method is the client method name (e.g., "ListProperties")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (read, write, activation, ...)
	Category string

	// Service indicates which Akamai API this tool talks to
	Service string

	// ReadOnly indicates the tool doesn't modify control-plane state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}

// ToolsByService returns the tools that talk to one Akamai API.
func ToolsByService(service string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Service == service {
			specs = append(specs, spec)
		}
	}
	return specs
}

// ToolsByCategory returns the tools in one category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
