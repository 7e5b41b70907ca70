package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_message_001(t *testing.T) {
	assert := assert.New(t)

	// Basic message creation
	msg := schema.NewMessage(schema.RoleUser, "what is 7 times 6?")
	assert.Equal(schema.RoleUser, msg.Role)
	assert.Len(msg.Content, 1)
	assert.Equal("what is 7 times 6?", msg.Text())
	assert.Empty(msg.ToolCalls())
}

func Test_message_002(t *testing.T) {
	assert := assert.New(t)

	// Text and tool calls in one message
	text := "Let me calculate"
	msg := schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{Text: &text},
			{ToolCall: &schema.ToolCall{ID: "1", Name: "multiply", Input: json.RawMessage(`{"a":7,"b":6}`)}},
			{ToolCall: &schema.ToolCall{ID: "2", Name: "read_notes"}},
		},
		Result: schema.ResultToolCall,
	}
	assert.Equal("Let me calculate", msg.Text())
	if calls := msg.ToolCalls(); assert.Len(calls, 2) {
		assert.Equal("multiply", calls[0].Name)
		assert.Equal("read_notes", calls[1].Name)
	}
}

func Test_message_003(t *testing.T) {
	assert := assert.New(t)

	// Tool results keep text and error flags
	ok := schema.NewToolResult("1", "divide", "Error: Cannot divide by zero.")
	fail := schema.NewToolError("2", "add", errors.New("connection refused"))
	msg := schema.Message{Role: schema.RoleUser, Content: []schema.ContentBlock{ok, fail}}

	results := msg.ToolResults()
	if assert.Len(results, 2) {
		assert.False(results[0].IsError)
		assert.Equal("Error: Cannot divide by zero.", results[0].Text())
		assert.True(results[1].IsError)
		assert.Equal("connection refused", results[1].Text())
	}

	// Numbers are returned as raw JSON
	assert.Equal("42", schema.NewToolResult("3", "multiply", 42).ToolResult.Text())
}

func Test_message_004(t *testing.T) {
	assert := assert.New(t)

	// Result type round trip
	data, err := json.Marshal(schema.ResultToolCall)
	assert.NoError(err)
	assert.Equal(`"tool_call"`, string(data))

	var r schema.ResultType
	assert.NoError(json.Unmarshal([]byte(`"max_tokens"`), &r))
	assert.Equal(schema.ResultMaxTokens, r)
	assert.Error(json.Unmarshal([]byte(`"sideways"`), &r))
}
