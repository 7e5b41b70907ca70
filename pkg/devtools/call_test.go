package devtools_test

import (
	"encoding/json"
	"testing"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func toolCall(name, input string) schema.ToolCall {
	return schema.ToolCall{ID: "1", Name: name, Input: json.RawMessage(input)}
}

func Test_parse_001(t *testing.T) {
	assert := assert.New(t)

	// Each tool resolves to its variant
	tests := []struct {
		name, input string
		expect      devtools.Call
	}{
		{"add", `{"a":1,"b":2}`, devtools.Add{A: 1, B: 2}},
		{"subtract", `{"a":-1,"b":2}`, devtools.Subtract{A: -1, B: 2}},
		{"multiply", `{"a":7,"b":6}`, devtools.Multiply{A: 7, B: 6}},
		{"divide", `{"a":5,"b":0}`, devtools.Divide{A: 5, B: 0}},
		{"add_note", `{"message":"the deploy key rotates monthly"}`, devtools.AddNote{Message: "the deploy key rotates monthly"}},
		{"read_notes", `{}`, devtools.ReadNotes{}},
		{"read_notes", ``, devtools.ReadNotes{}},
		{"read_notes", `null`, devtools.ReadNotes{}},
	}
	for _, test := range tests {
		call, err := devtools.Parse(toolCall(test.name, test.input))
		if assert.NoError(err, test.name) {
			assert.Equal(test.expect, call)
			assert.Equal(test.name, call.Tool())
		}
	}
}

func Test_parse_002(t *testing.T) {
	assert := assert.New(t)

	// Models sometimes send integral floats or quoted numbers
	call, err := devtools.Parse(toolCall("multiply", `{"a":7.0,"b":"6"}`))
	assert.NoError(err)
	assert.Equal(devtools.Multiply{A: 7, B: 6}, call)
}

func Test_parse_003(t *testing.T) {
	assert := assert.New(t)

	// Unknown tools
	_, err := devtools.Parse(toolCall("sqrt", `{"a":4}`))
	assert.ErrorIs(err, devhelper.ErrNotFound)

	// Malformed arguments
	for _, input := range []string{
		`[1,2]`,
		`{"a":1}`,
		`{"a":1,"b":2,"c":3}`,
		`{"a":1.5,"b":2}`,
		`{"a":"seven","b":2}`,
		`{"a":true,"b":2}`,
		`not json`,
	} {
		_, err := devtools.Parse(toolCall("add", input))
		assert.ErrorIs(err, devhelper.ErrBadParameter, input)
	}
	_, err = devtools.Parse(toolCall("add_note", `{"message":42}`))
	assert.ErrorIs(err, devhelper.ErrBadParameter)
	_, err = devtools.Parse(toolCall("add_note", `{}`))
	assert.ErrorIs(err, devhelper.ErrBadParameter)
}

func Test_parse_004(t *testing.T) {
	assert := assert.New(t)

	// Large integers are exact
	call, err := devtools.Parse(toolCall("add", `{"a":9007199254740993,"b":0}`))
	assert.NoError(err)
	assert.Equal(devtools.Add{A: 9007199254740993, B: 0}, call)
	call, err = devtools.Parse(toolCall("subtract", `{"a":"-9223372036854775808","b":1}`))
	assert.NoError(err)
	assert.Equal(devtools.Subtract{A: -9223372036854775808, B: 1}, call)

	// Out of range values are rejected, not wrapped
	for _, input := range []string{
		`{"a":9223372036854775808,"b":1}`,
		`{"a":-9223372036854775809,"b":1}`,
		`{"a":1e19,"b":1}`,
		`{"a":9007199254740993.0,"b":1}`,
	} {
		_, err := devtools.Parse(toolCall("add", input))
		assert.ErrorIs(err, devhelper.ErrBadParameter, input)
	}
}

func Test_call_001(t *testing.T) {
	assert := assert.New(t)

	// Calls render as they would be written
	assert.Equal("multiply(7, 6)", devtools.Multiply{A: 7, B: 6}.String())
	assert.Equal(`add_note("x")`, devtools.AddNote{Message: "x"}.String())
	assert.Equal("read_notes()", devtools.ReadNotes{}.String())

	// Arguments match the executor schema
	assert.Equal(map[string]any{"a": 5, "b": 0}, devtools.Divide{A: 5, B: 0}.Args())
	assert.Equal(map[string]any{"message": "x"}, devtools.AddNote{Message: "x"}.Args())
	assert.Empty(devtools.ReadNotes{}.Args())
}
