// Package server exposes a toolkit as an MCP (Model Context Protocol) tool
// executor, over standard input and output or streamable HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	devhelper "github.com/mutablelogic/go-devhelper"
	tool "github.com/mutablelogic/go-devhelper/pkg/tool"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////
// TYPES

// Server serves the tools of a toolkit to MCP clients
type Server struct {
	name    string
	version string
	toolkit *tool.Toolkit
	server  *mcp.Server
	log     zerolog.Logger
}

///////////////////////////////////////////////////////////////////////
// GLOBALS

// ResultKey is the key of the tool result within structured content
const ResultKey = "result"

///////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new MCP server with the given name and version, serving
// every tool in the toolkit
func New(name, version string, toolkit *tool.Toolkit, opts ...Opt) (*Server, error) {
	if toolkit == nil {
		return nil, devhelper.ErrBadParameter.With("toolkit is required")
	}
	self := &Server{
		name:    name,
		version: version,
		toolkit: toolkit,
		log:     zerolog.Nop(),
	}
	if err := self.apply(opts...); err != nil {
		return nil, err
	}

	// Register the tools
	self.server = mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)
	defs, err := toolkit.Definitions()
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		self.server.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, self.handler(def.Name))
	}
	self.log.Debug().Str("executor", name).Stringer("tools", toolkit).Msg("registered")

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the executor name announced to clients
func (server *Server) Name() string {
	return server.name
}

// RunStdio serves a single client on standard input and output,
// and runs in the foreground until the context is done or the
// client disconnects.
func (server *Server) RunStdio(ctx context.Context) error {
	server.log.Debug().Str("executor", server.name).Msg("serving on stdio")
	return server.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single client on the given transport, returning
// the session without waiting for it to end
func (server *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return server.server.Connect(ctx, transport, nil)
}

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// handler returns the MCP handler for the named tool. Tool failures are
// reported in-band with IsError set, never as protocol errors.
func (server *Server) handler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}
		result, err := server.toolkit.Run(ctx, name, args)
		if err != nil {
			server.log.Warn().Err(err).Str("executor", server.name).Str("tool", name).Msg("tool failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}
		server.log.Debug().Str("executor", server.name).Str("tool", name).RawJSON("args", rawOrEmpty(args)).Msg("tool called")
		return &mcp.CallToolResult{
			Content:           []mcp.Content{&mcp.TextContent{Text: Text(result)}},
			StructuredContent: map[string]any{ResultKey: result},
		}, nil
	}
}

// Text renders a tool result as text content
func Text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

func rawOrEmpty(data json.RawMessage) []byte {
	if len(data) == 0 || !json.Valid(data) {
		return []byte("{}")
	}
	return data
}
