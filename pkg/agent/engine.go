// Package agent implements the conversation engine: given user input it
// lets a model decide whether to call tools, dispatches those calls and
// returns the model's composed answer.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	devhelper "github.com/mutablelogic/go-devhelper"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	zerolog "github.com/rs/zerolog"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator is a model backend which can hold a conversation
type Generator interface {
	Name() string
	devhelper.Messenger
}

// Dispatcher performs a tool call against its executor
type Dispatcher interface {
	Call(ctx context.Context, call devtools.Call) (devtools.Result, error)
}

// Engine answers one request at a time. It holds no state between
// requests other than its configuration.
type Engine struct {
	generator     Generator
	model         schema.Model
	tools         Dispatcher
	system        string
	maxIterations uint
	timeout       time.Duration
	parallel      int
	maxInput      int
	opts          []opt.Opt
	tracer        trace.Tracer
	log           zerolog.Logger
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultMaxIterations = 50
	DefaultTimeout       = 5 * time.Minute
	DefaultMaxInput      = 32 * 1024
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an engine which answers with model on generator, calling
// tools through tools
func New(generator Generator, model schema.Model, tools Dispatcher, opts ...Opt) (*Engine, error) {
	if generator == nil {
		return nil, devhelper.ErrBadParameter.With("generator is required")
	} else if tools == nil {
		return nil, devhelper.ErrBadParameter.With("tools are required")
	} else if model.Name == "" {
		return nil, devhelper.ErrBadParameter.With("model is required")
	}

	self := &Engine{
		generator:     generator,
		model:         model,
		tools:         tools,
		system:        SystemPrompt,
		maxIterations: DefaultMaxIterations,
		timeout:       DefaultTimeout,
		parallel:      1,
		maxInput:      DefaultMaxInput,
		tracer:        noop.NewTracerProvider().Tracer(""),
		log:           zerolog.Nop(),
	}
	if err := self.apply(opts...); err != nil {
		return nil, err
	}
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Model returns the model the engine answers with
func (e *Engine) Model() schema.Model {
	return e.model
}

// Ask answers input in the context of history. It never fails: any error
// or panic is returned as a displayable message.
func (e *Engine) Ask(ctx context.Context, input string, history schema.History) (response string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Msg("ask")
			response = FormatError(fmt.Errorf("%v", r))
		}
	}()
	text, err := e.Run(ctx, input, history)
	if err != nil {
		e.log.Warn().Err(err).Msg("ask")
		return FormatError(err)
	}
	return text
}

// Run answers input in the context of history, returning an error if no
// answer could be composed
func (e *Engine) Run(ctx context.Context, input string, history schema.History) (result string, err error) {
	ctx, endSpan := otel.StartSpan(e.tracer, ctx, "Ask",
		attribute.String("model", e.model.Name),
		attribute.Int("input.length", len(input)),
		attribute.Int("history.turns", len(history)),
	)
	defer func() { endSpan(err) }()

	// Check the input
	input = strings.ToValidUTF8(input, "\uFFFD")
	if strings.TrimSpace(input) == "" {
		return "", devhelper.ErrBadParameter.With("empty input")
	} else if e.maxInput > 0 && len(input) > e.maxInput {
		return "", devhelper.ErrBadParameter.Withf("input is longer than %d bytes", e.maxInput)
	}

	// Bound the whole request
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	// Decide
	session := history.Conversation()
	opts := []opt.Opt{
		opt.WithString(opt.SystemPromptKey, e.system),
		opt.SetAny(opt.ToolsKey, devtools.Definitions()),
		opt.WithOpts(e.opts...),
	}
	response, err := e.generator.WithSession(ctx, e.model, &session, schema.NewMessage(schema.RoleUser, input), opts...)
	if err != nil {
		return "", e.failed(ctx, err)
	}

	// Dispatch and compose until the model stops calling tools
	for n := uint(0); response.Result == schema.ResultToolCall; n++ {
		calls := response.ToolCalls()
		if len(calls) == 0 {
			break
		}
		if n >= e.maxIterations {
			return "", devhelper.ErrMaxIterations.Withf("stopped after %d rounds of tool calls", n)
		}
		results, err := e.dispatch(ctx, calls)
		if err != nil {
			return "", err
		}
		response, err = e.generator.WithSession(ctx, e.model, &session, &schema.Message{
			Role:    schema.RoleUser,
			Content: results,
		}, opts...)
		if err != nil {
			return "", e.failed(ctx, err)
		}
	}

	// Terminal
	text := strings.TrimSpace(response.Text())
	if text == "" {
		return "", devhelper.ErrInternalServerError.With("the model returned an empty response")
	}
	return text, nil
}

// FormatError renders err as a message for the user
func FormatError(err error) string {
	desc := "unknown error"
	if err != nil {
		desc = strings.TrimRight(strings.TrimSpace(err.Error()), ".")
	}
	return "Error: " + desc + ". Try phrasing it differently."
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// failed reports a model failure, naming the deadline if it expired
func (e *Engine) failed(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return devhelper.ErrUnavailable.Withf("no answer within %v", e.timeout)
	}
	return err
}
