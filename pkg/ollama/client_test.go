package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	// Packages
	opts "github.com/mutablelogic/go-client"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	ollama "github.com/mutablelogic/go-devhelper/pkg/ollama"
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// fakeOllama serves /api/chat and /api/tags, recording each chat request
type fakeOllama struct {
	requests  []map[string]any
	responses []string
}

func (f *fakeOllama) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/tags":
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models":[{"name":"llama3.1:8b","model":"llama3.1:8b","size":4920753328,"details":{"family":"llama","parameter_size":"8.0B"}}]}`))
	case "/api/chat":
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.requests = append(f.requests, req)
		if len(f.responses) == 0 {
			http.Error(w, "no more responses", http.StatusInternalServerError)
			return
		}
		response := f.responses[0]
		f.responses = f.responses[1:]
		if stream, _ := req["stream"].(bool); stream {
			w.Header().Set("Content-Type", "application/x-ndjson")
		} else {
			w.Header().Set("Content-Type", "application/json")
		}
		w.Write([]byte(response))
	default:
		http.NotFound(w, r)
	}
}

func newClient(t *testing.T, fake *fakeOllama) *ollama.Client {
	t.Helper()
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)
	client, err := ollama.New(ts.URL+"/api", opts.OptTimeout(10*time.Second))
	require.NoError(t, err)
	return client
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	client := newClient(t, &fakeOllama{})
	assert.Equal("ollama", client.Name())

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	if assert.Len(models, 1) {
		assert.Equal("llama3.1:8b", models[0].Name)
		assert.Equal("llama", models[0].Family)
		assert.Equal("ollama", models[0].OwnedBy)
	}
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)
	fake := &fakeOllama{responses: []string{
		`{"model":"llama3.1:8b","message":{"role":"assistant","content":"","tool_calls":[{"function":{"name":"multiply","arguments":{"a":7,"b":6}}}]},"done":true,"done_reason":"stop"}`,
		`{"model":"llama3.1:8b","message":{"role":"assistant","content":"7 times 6 is 42."},"done":true,"done_reason":"stop"}`,
	}}
	client := newClient(t, fake)
	model := schema.Model{Name: "llama3.1:8b"}
	ctx := context.Background()

	// The first response is a tool call
	var session schema.Conversation
	response, err := client.WithSession(ctx, model, &session, schema.NewMessage(schema.RoleUser, "what is 7 times 6?"),
		opt.WithString(opt.SystemPromptKey, "You are DevHelper."),
		opt.WithFloat64(opt.TemperatureKey, 0.2),
		opt.SetAny(opt.ToolsKey, devtools.Definitions()),
	)
	require.NoError(t, err)
	assert.Equal(schema.ResultToolCall, response.Result)
	calls := response.ToolCalls()
	if assert.Len(calls, 1) {
		assert.Equal("multiply", calls[0].Name)
		assert.NotEmpty(calls[0].ID)
		assert.JSONEq(`{"a":7,"b":6}`, string(calls[0].Input))
	}
	assert.Len(session, 2)

	// The request carried the system prompt, tools and temperature
	req := fake.requests[0]
	assert.Equal("llama3.1:8b", req["model"])
	assert.Equal(false, req["stream"])
	messages, _ := req["messages"].([]any)
	if assert.Len(messages, 2) {
		assert.Equal("system", messages[0].(map[string]any)["role"])
		assert.Equal("user", messages[1].(map[string]any)["role"])
	}
	tools, _ := req["tools"].([]any)
	assert.Len(tools, len(devtools.Descriptors()))
	assert.Equal(0.2, req["options"].(map[string]any)["temperature"])

	// The tool result goes back with the tool role
	result := schema.Message{Role: schema.RoleUser, Content: []schema.ContentBlock{
		schema.NewToolResult(calls[0].ID, calls[0].Name, 42),
	}}
	response, err = client.WithSession(ctx, model, &session, &result)
	require.NoError(t, err)
	assert.Equal(schema.ResultStop, response.Result)
	assert.Equal("7 times 6 is 42.", response.Text())
	assert.Len(session, 4)

	messages, _ = fake.requests[1]["messages"].([]any)
	if assert.Len(messages, 3) {
		assistant := messages[1].(map[string]any)
		assert.NotEmpty(assistant["tool_calls"])
		tool := messages[2].(map[string]any)
		assert.Equal("tool", tool["role"])
		assert.Equal("42", tool["content"])
		assert.Equal("multiply", tool["tool_name"])
	}
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)
	fake := &fakeOllama{responses: []string{
		strings.Join([]string{
			`{"model":"m","message":{"role":"assistant","content":"Hello"},"done":false}`,
			`{"model":"m","message":{"role":"assistant","content":", world"},"done":false}`,
			`{"model":"m","message":{"role":"assistant","content":""},"done":true,"done_reason":"length"}`,
		}, "\n") + "\n",
	}}
	client := newClient(t, fake)

	// Streamed text is delivered in pieces and accumulated
	var pieces []string
	var session schema.Conversation
	response, err := client.WithSession(context.Background(), schema.Model{Name: "m"}, &session, schema.NewMessage(schema.RoleUser, "hi"), ollama.WithStream(func(text string) {
		pieces = append(pieces, text)
	}))
	require.NoError(t, err)
	assert.Equal([]string{"Hello", ", world"}, pieces)
	assert.Equal("Hello, world", response.Text())
	assert.Equal(schema.ResultMaxTokens, response.Result)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)
	client := newClient(t, &fakeOllama{})

	// Bad parameters
	var session schema.Conversation
	_, err := client.WithSession(context.Background(), schema.Model{}, &session, schema.NewMessage(schema.RoleUser, "hi"))
	assert.Error(err)
	_, err = client.WithSession(context.Background(), schema.Model{Name: "m"}, nil, schema.NewMessage(schema.RoleUser, "hi"))
	assert.Error(err)

	// A backend failure is an error, and the session is unchanged
	_, err = client.WithSession(context.Background(), schema.Model{Name: "m"}, &session, schema.NewMessage(schema.RoleUser, "hi"))
	assert.Error(err)
	assert.Empty(session)
}

// Test_client_005 talks to a real server when OLLAMA_URL and OLLAMA_MODEL are set
func Test_client_005(t *testing.T) {
	assert := assert.New(t)
	endpoint, name := os.Getenv("OLLAMA_URL"), os.Getenv("OLLAMA_MODEL")
	if endpoint == "" || name == "" {
		t.Skip("OLLAMA_URL or OLLAMA_MODEL not set")
	}
	client, err := ollama.New(endpoint, opts.OptTimeout(5*time.Minute))
	require.NoError(t, err)

	var session schema.Conversation
	response, err := client.WithSession(context.Background(), schema.Model{Name: name}, &session, schema.NewMessage(schema.RoleUser, "what is 7 times 6?"), opt.SetAny(opt.ToolsKey, devtools.Definitions()))
	if !assert.NoError(err) {
		t.FailNow()
	}
	t.Log(response)
}
