package schema

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

// ToolDefinition represents a provider-agnostic tool definition.
// Backends reshape this into their required payloads.
type ToolDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	InputSchema *jsonschema.Schema `json:"input_schema,omitempty"`
}
