package ollama

import (
	"encoding/json"

	// Packages
	uuid "github.com/google/uuid"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is a chat message on the wire
type Message struct {
	Role      string     `json:"role"`                 // assistant, user, tool, system
	Content   string     `json:"content"`              // text content
	ToolCalls []ToolCall `json:"tool_calls,omitempty"` // calls requested by the assistant
	ToolName  string     `json:"tool_name,omitempty"`  // function name when role is tool
}

type ToolCall struct {
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Index     int            `json:"index,omitempty"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Tool is a function definition offered to the model
type Tool struct {
	Type     string       `json:"type"` // function
	Function ToolFunction `json:"function"`
}

type ToolFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toMessages converts a schema message into wire messages. Each tool
// result becomes its own message with the tool role.
func toMessages(m *schema.Message) ([]Message, error) {
	if results := m.ToolResults(); len(results) > 0 {
		messages := make([]Message, 0, len(results))
		for _, result := range results {
			messages = append(messages, Message{
				Role:     schema.RoleTool,
				Content:  result.Text(),
				ToolName: result.Name,
			})
		}
		return messages, nil
	}

	message := Message{
		Role:    m.Role,
		Content: m.Text(),
	}
	for i, call := range m.ToolCalls() {
		var args map[string]any
		if len(call.Input) > 0 {
			if err := json.Unmarshal(call.Input, &args); err != nil {
				return nil, err
			}
		}
		message.ToolCalls = append(message.ToolCalls, ToolCall{
			Function: ToolCallFunction{Index: i, Name: call.Name, Arguments: args},
		})
	}
	return []Message{message}, nil
}

// toSchema converts a response message into a schema message
func (m Message) toSchema() (*schema.Message, error) {
	result := &schema.Message{Role: m.Role}
	if result.Role == "" {
		result.Role = schema.RoleAssistant
	}
	if m.Content != "" || len(m.ToolCalls) == 0 {
		text := m.Content
		result.Content = append(result.Content, schema.ContentBlock{Text: &text})
	}
	for _, call := range m.ToolCalls {
		args := call.Function.Arguments
		if args == nil {
			args = map[string]any{}
		}
		data, err := json.Marshal(args)
		if err != nil {
			return nil, err
		}
		result.Content = append(result.Content, schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    uuid.NewString(),
				Name:  call.Function.Name,
				Input: json.RawMessage(data),
			},
		})
	}
	return result, nil
}

func toTools(defs []schema.ToolDefinition) []Tool {
	if len(defs) == 0 {
		return nil
	}
	tools := make([]Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, Tool{
			Type: "function",
			Function: ToolFunction{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.InputSchema,
			},
		})
	}
	return tools
}
