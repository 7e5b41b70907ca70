// Package devtools defines the closed set of tools available to the
// conversation engine, and the adapter which dispatches them to the
// remote executors that own them.
package devtools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Call is a request to run one of the six tools, with typed arguments.
// The set of implementations is closed.
type Call interface {
	// Tool returns the tool name
	Tool() string

	// Args returns the arguments as sent to the executor
	Args() map[string]any

	// String returns the call as it would be written, for example multiply(7, 6)
	String() string

	sealed()
}

type Add struct{ A, B int }
type Subtract struct{ A, B int }
type Multiply struct{ A, B int }
type Divide struct{ A, B int }

type AddNote struct{ Message string }
type ReadNotes struct{}

var _ Call = Add{}
var _ Call = Subtract{}
var _ Call = Multiply{}
var _ Call = Divide{}
var _ Call = AddNote{}
var _ Call = ReadNotes{}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Largest integer a float64 holds exactly
const maxExactInt = 1 << 53

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Parse resolves a tool call requested by the model into a Call.
// Unknown tools return ErrNotFound; missing, unknown or mistyped
// arguments return ErrBadParameter.
func Parse(call schema.ToolCall) (Call, error) {
	d, ok := Lookup(call.Name)
	if !ok {
		return nil, devhelper.ErrNotFound.Withf("unknown tool %q", call.Name)
	}

	// Decode the arguments object
	args := make(map[string]json.RawMessage)
	if input := bytes.TrimSpace(call.Input); len(input) > 0 && !bytes.Equal(input, []byte("null")) {
		if err := json.Unmarshal(input, &args); err != nil {
			return nil, devhelper.ErrBadParameter.Withf("%s: arguments are not an object: %v", d.Name, err)
		}
	}
	for name := range args {
		if !d.hasParam(name) {
			return nil, devhelper.ErrBadParameter.Withf("%s: unexpected argument %q", d.Name, name)
		}
	}

	// Decode each parameter by type
	ints := make(map[string]int, len(d.Params))
	strs := make(map[string]string, len(d.Params))
	for _, p := range d.Params {
		raw, exists := args[p.Name]
		if !exists {
			return nil, devhelper.ErrBadParameter.Withf("%s: missing argument %q", d.Name, p.Name)
		}
		switch p.Type {
		case TypeInteger:
			v, err := parseInt(raw)
			if err != nil {
				return nil, devhelper.ErrBadParameter.Withf("%s: argument %q: %v", d.Name, p.Name, err)
			}
			ints[p.Name] = v
		case TypeString:
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, devhelper.ErrBadParameter.Withf("%s: argument %q is not a string", d.Name, p.Name)
			}
			strs[p.Name] = v
		}
	}

	switch d.Name {
	case "add":
		return Add{ints["a"], ints["b"]}, nil
	case "subtract":
		return Subtract{ints["a"], ints["b"]}, nil
	case "multiply":
		return Multiply{ints["a"], ints["b"]}, nil
	case "divide":
		return Divide{ints["a"], ints["b"]}, nil
	case "add_note":
		return AddNote{strs["message"]}, nil
	case "read_notes":
		return ReadNotes{}, nil
	}
	return nil, devhelper.ErrNotImplemented.Withf("tool %q", d.Name)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (Add) Tool() string       { return "add" }
func (Subtract) Tool() string  { return "subtract" }
func (Multiply) Tool() string  { return "multiply" }
func (Divide) Tool() string    { return "divide" }
func (AddNote) Tool() string   { return "add_note" }
func (ReadNotes) Tool() string { return "read_notes" }

func (c Add) Args() map[string]any      { return operands(c.A, c.B) }
func (c Subtract) Args() map[string]any { return operands(c.A, c.B) }
func (c Multiply) Args() map[string]any { return operands(c.A, c.B) }
func (c Divide) Args() map[string]any   { return operands(c.A, c.B) }
func (c AddNote) Args() map[string]any  { return map[string]any{"message": c.Message} }
func (ReadNotes) Args() map[string]any  { return map[string]any{} }

func (c Add) String() string       { return binary(c.Tool(), c.A, c.B) }
func (c Subtract) String() string  { return binary(c.Tool(), c.A, c.B) }
func (c Multiply) String() string  { return binary(c.Tool(), c.A, c.B) }
func (c Divide) String() string    { return binary(c.Tool(), c.A, c.B) }
func (c AddNote) String() string   { return fmt.Sprintf("%s(%q)", c.Tool(), c.Message) }
func (c ReadNotes) String() string { return c.Tool() + "()" }

func (Add) sealed()       {}
func (Subtract) sealed()  {}
func (Multiply) sealed()  {}
func (Divide) sealed()    {}
func (AddNote) sealed()   {}
func (ReadNotes) sealed() {}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (d Descriptor) hasParam(name string) bool {
	for _, p := range d.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

func operands(a, b int) map[string]any {
	return map[string]any{"a": a, "b": b}
}

func binary(name string, a, b int) string {
	return fmt.Sprintf("%s(%d, %d)", name, a, b)
}

// parseInt accepts an integral JSON number, or a string holding one,
// since models sometimes quote numbers
func parseInt(raw json.RawMessage) (int, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(strings.TrimSpace(s))
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("not an integer")
	}
	v, err := strconv.ParseInt(n.String(), 10, strconv.IntSize)
	if err == nil {
		return int(v), nil
	} else if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%s is out of range", n)
	}

	// Integral values written as floats, such as 7.0, only where float64 is exact
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not an integer", n)
	}
	if math.Abs(f) > maxExactInt {
		return 0, fmt.Errorf("%s is out of range", n)
	}
	return int(f), nil
}
