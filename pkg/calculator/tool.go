package calculator

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	devhelper "github.com/mutablelogic/go-devhelper"
	tool "github.com/mutablelogic/go-devhelper/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Operands are the arguments of every calculator tool
type Operands struct {
	A int `json:"a" jsonschema:"The first integer"`
	B int `json:"b" jsonschema:"The second integer"`
}

type operation struct {
	name        string
	description string
	fn          func(a, b int) any
}

var _ tool.Tool = (*operation)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Name of the executor, as announced to clients
const Name = "calculator"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the add, subtract, multiply and divide tools
func NewTools() []tool.Tool {
	return []tool.Tool{
		&operation{"add", "Adds two integers together.", func(a, b int) any { return Add(a, b) }},
		&operation{"subtract", "Subtracts the second integer from the first.", func(a, b int) any { return Subtract(a, b) }},
		&operation{"multiply", "Multiplies two integers together.", func(a, b int) any { return Multiply(a, b) }},
		&operation{"divide", "Divides the first integer by the second. Returns a float or an error message if dividing by zero.", func(a, b int) any { return Divide(a, b) }},
	}
}

// NewToolkit returns a toolkit containing the calculator tools
func NewToolkit() (*tool.Toolkit, error) {
	return tool.NewToolkit(NewTools()...)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (op *operation) Name() string {
	return op.name
}

func (op *operation) Description() string {
	return op.description
}

// Return the JSON schema for the tool input
func (*operation) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[Operands](nil)
}

// Run the tool with the given input
func (op *operation) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req Operands
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, devhelper.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}
	return op.fn(req.A, req.B), nil
}
