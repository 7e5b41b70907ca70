package ollama

import (
	"context"
	"encoding/json"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	devhelper "github.com/mutablelogic/go-devhelper"
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Chat Response
type Response struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Message   Message   `json:"message"`
	Done      bool      `json:"done"`
	Reason    string    `json:"done_reason,omitempty"`
	Metrics
}

// Metrics
type Metrics struct {
	TotalDuration      time.Duration `json:"total_duration,omitempty"`
	LoadDuration       time.Duration `json:"load_duration,omitempty"`
	PromptEvalCount    int           `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration time.Duration `json:"prompt_eval_duration,omitempty"`
	EvalCount          int           `json:"eval_count,omitempty"`
	EvalDuration       time.Duration `json:"eval_duration,omitempty"`
}

// StreamFn receives text as it is generated
type StreamFn func(text string)

type reqChat struct {
	Model     string         `json:"model"`
	Messages  []Message      `json:"messages"`
	Tools     []Tool         `json:"tools,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
	Stream    bool           `json:"stream"`
	KeepAlive string         `json:"keep_alive,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	reasonLength = "length"
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithSession sends message to the model in the context of session, and
// returns the response. Both the message and the response are appended
// to the session on success.
//
// Options: opt.SystemPromptKey, opt.TemperatureKey, opt.KeepAliveKey,
// opt.ToolsKey ([]schema.ToolDefinition) and opt.StreamKey (StreamFn).
func (ollama *Client) WithSession(ctx context.Context, model schema.Model, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if session == nil || message == nil {
		return nil, devhelper.ErrBadParameter.With("session and message are required")
	} else if model.Name == "" {
		return nil, devhelper.ErrBadParameter.With("model is required")
	}
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Build the request
	request := reqChat{
		Model: model.Name,
	}
	if system := options.GetString(opt.SystemPromptKey); system != "" {
		request.Messages = append(request.Messages, Message{Role: schema.RoleSystem, Content: system})
	}
	for _, m := range append(*session, message) {
		messages, err := toMessages(m)
		if err != nil {
			return nil, devhelper.ErrBadParameter.Withf("message: %v", err)
		}
		request.Messages = append(request.Messages, messages...)
	}
	if defs, ok := options.Get(opt.ToolsKey).([]schema.ToolDefinition); ok {
		request.Tools = toTools(defs)
	}
	if options.Has(opt.TemperatureKey) {
		request.Options = map[string]any{"temperature": options.GetFloat64(opt.TemperatureKey)}
	}
	if options.Has(opt.KeepAliveKey) {
		request.KeepAlive = options.GetDuration(opt.KeepAliveKey).String()
	}
	stream, _ := options.Get(opt.StreamKey).(StreamFn)
	request.Stream = stream != nil

	// Send the request
	response, err := ollama.chat(ctx, request, stream)
	if err != nil {
		return nil, err
	}

	// Convert the response
	result, err := response.Message.toSchema()
	if err != nil {
		return nil, devhelper.ErrInternalServerError.Withf("response: %v", err)
	}
	switch {
	case len(result.ToolCalls()) > 0:
		result.Result = schema.ResultToolCall
	case response.Reason == reasonLength:
		result.Result = schema.ResultMaxTokens
	default:
		result.Result = schema.ResultStop
	}

	// Append both to the session
	session.Append(*message)
	session.Append(*result)
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (ollama *Client) chat(ctx context.Context, request reqChat, stream StreamFn) (*Response, error) {
	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Without streaming, there is a single response
	var response Response
	if stream == nil {
		if err := ollama.DoWithContext(ctx, req, &response, client.OptPath("chat")); err != nil {
			return nil, err
		}
		return &response, nil
	}

	// With streaming, accumulate the deltas
	var delta Response
	if err := ollama.DoWithContext(ctx, req, &delta, client.OptPath("chat"), client.OptJsonStreamCallback(func(v any) error {
		if v, ok := v.(*Response); !ok || v == nil {
			return devhelper.ErrConflict.Withf("Invalid stream response: %v", v)
		} else {
			response.Model = v.Model
			response.CreatedAt = v.CreatedAt
			response.Message.Role = v.Message.Role
			response.Message.Content += v.Message.Content
			response.Message.ToolCalls = append(response.Message.ToolCalls, v.Message.ToolCalls...)
			if v.Message.Content != "" {
				stream(v.Message.Content)
			}
			if v.Done {
				response.Done = v.Done
				response.Metrics = v.Metrics
				response.Reason = v.Reason
			}
		}
		return nil
	})); err != nil {
		return nil, err
	}
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithStream sets a function which receives text as it is generated
func WithStream(fn StreamFn) opt.Opt {
	return opt.SetAny(opt.StreamKey, fn)
}
