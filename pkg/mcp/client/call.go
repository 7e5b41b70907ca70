package client

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	devhelper "github.com/mutablelogic/go-devhelper"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	server "github.com/mutablelogic/go-devhelper/pkg/mcp/server"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE CHECK

var _ devtools.Caller = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListTools returns the tools the executor advertises
func (c *Client) ListTools(ctx context.Context) ([]schema.ToolDefinition, error) {
	session, release, err := c.acquire(ctx)
	if err != nil {
		return nil, c.unavailable(err)
	}
	defer release()

	var result []schema.ToolDefinition
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			c.discard(session)
			return nil, c.unavailable(err)
		}
		def := schema.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
		}
		if s, err := toSchema(tool.InputSchema); err != nil {
			return nil, devhelper.ErrUnavailable.Withf("%s: %s: %v", c.name, tool.Name, err)
		} else {
			def.InputSchema = s
		}
		result = append(result, def)
	}
	return result, nil
}

// CallTool calls the named tool with args and returns its single result.
// A tool which reports an error returns ErrToolFailed; any transport or
// protocol failure returns ErrUnavailable.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (devtools.Result, error) {
	session, release, err := c.acquire(ctx)
	if err != nil {
		return devtools.Result{}, c.unavailable(err)
	}
	defer release()

	if args == nil {
		args = map[string]any{}
	}
	c.log.Debug().Str("executor", c.name).Str("tool", name).Interface("args", args).Msg("call")
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		c.discard(session)
		return devtools.Result{}, devhelper.ErrUnavailable.Withf("%s: %s: %v", c.name, name, err)
	} else if result == nil {
		return devtools.Result{}, devhelper.ErrUnavailable.Withf("%s: %s: empty response", c.name, name)
	}
	return decode(result)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decode(result *mcp.CallToolResult) (devtools.Result, error) {
	text := textContent(result.Content)
	if result.IsError {
		if text == "" {
			text = "unknown error"
		}
		return devtools.Result{}, devhelper.ErrToolFailed.With(text)
	}

	// Prefer the structured result, which keeps numbers as numbers
	if m, ok := result.StructuredContent.(map[string]any); ok {
		if v, exists := m[server.ResultKey]; exists {
			// Whole numbers are exact in the text content, not in a float64
			if _, ok := v.(float64); ok {
				if i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err == nil {
					return devtools.NewInteger(i), nil
				}
			}
			return devtools.Decode(v)
		}
	}
	if len(result.Content) == 0 {
		return devtools.Result{}, devhelper.ErrUnavailable.With("malformed response: no content")
	}
	return devtools.NewText(text), nil
}

func textContent(content []mcp.Content) string {
	var parts []string
	for _, c := range content {
		if text, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// toSchema converts an input schema as received over the wire
func toSchema(v any) (*jsonschema.Schema, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *jsonschema.Schema:
		return v, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
