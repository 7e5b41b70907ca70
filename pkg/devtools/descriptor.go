package devtools

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	calculator "github.com/mutablelogic/go-devhelper/pkg/calculator"
	notes "github.com/mutablelogic/go-devhelper/pkg/notes"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Param is a named, typed tool parameter
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Descriptor describes a tool: its name, what it does, the executor
// which owns it and its ordered parameters
type Descriptor struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Executor    string  `json:"executor"`
	Params      []Param `json:"params"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TypeInteger = "integer"
	TypeString  = "string"
)

var (
	binaryParams = []Param{{"a", TypeInteger}, {"b", TypeInteger}}

	descriptors = []Descriptor{
		{"add", "Adds two integers together.", calculator.Name, binaryParams},
		{"subtract", "Subtracts the second integer from the first.", calculator.Name, binaryParams},
		{"multiply", "Multiplies two integers together.", calculator.Name, binaryParams},
		{"divide", "Divides the first integer by the second. Returns a float or an error message if dividing by zero.", calculator.Name, binaryParams},
		{"add_note", "Adds a note to the notes server.", notes.Name, []Param{{"message", TypeString}}},
		{"read_notes", "Retrieves all notes from the notes server.", notes.Name, nil},
	}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Descriptors returns the descriptors of all tools, in a fixed order
func Descriptors() []Descriptor {
	result := make([]Descriptor, len(descriptors))
	copy(result, descriptors)
	return result
}

// Lookup returns the descriptor for the named tool
func Lookup(name string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Definitions returns the tool definitions presented to the model
func Definitions() []schema.ToolDefinition {
	result := make([]schema.ToolDefinition, 0, len(descriptors))
	for _, d := range descriptors {
		result = append(result, d.Definition())
	}
	return result
}

// Schema returns the JSON schema of the tool input. All parameters
// are required and no others are allowed.
func (d Descriptor) Schema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(d.Params)),
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
	for _, p := range d.Params {
		s.Properties[p.Name] = &jsonschema.Schema{Type: p.Type}
		s.Required = append(s.Required, p.Name)
	}
	return s
}

// Definition returns the provider-agnostic tool definition
func (d Descriptor) Definition() schema.ToolDefinition {
	return schema.ToolDefinition{
		Name:        d.Name,
		Description: d.Description,
		InputSchema: d.Schema(),
	}
}
