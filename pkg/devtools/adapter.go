package devtools

import (
	"context"
	"errors"
	"time"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	calculator "github.com/mutablelogic/go-devhelper/pkg/calculator"
	notes "github.com/mutablelogic/go-devhelper/pkg/notes"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Caller is a handle on a remote tool executor
type Caller interface {
	// CallTool runs the named tool on the executor. Transport failures
	// are returned as ErrUnavailable and tool failures as ErrToolFailed.
	CallTool(ctx context.Context, name string, args map[string]any) (Result, error)
}

// Adapter dispatches calls to the executor which owns each tool
type Adapter struct {
	executors map[string]Caller
	timeout   time.Duration
	log       zerolog.Logger
}

type Opt func(*Adapter) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultTimeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewAdapter returns an adapter for the calculator and notes executors
func NewAdapter(calc, note Caller, opts ...Opt) (*Adapter, error) {
	if calc == nil || note == nil {
		return nil, devhelper.ErrBadParameter.With("calculator and notes executors are required")
	}
	self := &Adapter{
		executors: map[string]Caller{
			calculator.Name: calc,
			notes.Name:      note,
		},
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithTimeout bounds each call. Zero disables the bound.
func WithTimeout(v time.Duration) Opt {
	return func(a *Adapter) error {
		if v < 0 {
			return devhelper.ErrBadParameter.Withf("invalid timeout %v", v)
		}
		a.timeout = v
		return nil
	}
}

// WithLogger sets the logger which receives a trace line per call
func WithLogger(log zerolog.Logger) Opt {
	return func(a *Adapter) error {
		a.log = log
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Call runs the call on its executor and returns the result unmodified.
// Any failure, including a timeout, is returned as an error wrapping
// ErrUnavailable or ErrToolFailed.
func (a *Adapter) Call(ctx context.Context, call Call) (Result, error) {
	d, ok := Lookup(call.Tool())
	if !ok {
		return Result{}, devhelper.ErrNotFound.Withf("unknown tool %q", call.Tool())
	}
	executor, ok := a.executors[d.Executor]
	if !ok {
		return Result{}, devhelper.ErrNotFound.Withf("no executor %q for tool %q", d.Executor, d.Name)
	}

	a.log.Info().Str("tool", call.Tool()).Str("executor", d.Executor).Msgf("Calling MCP Tool: %s", call)

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := executor.CallTool(ctx, call.Tool(), call.Args())
	switch {
	case err == nil:
		a.log.Debug().Str("tool", call.Tool()).Stringer("result", result).Dur("duration", time.Since(start)).Msg("tool returned")
		return result, nil
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		err = devhelper.ErrUnavailable.Withf("%s: no response after %v", call, a.timeout)
	case !errors.Is(err, devhelper.ErrUnavailable) && !errors.Is(err, devhelper.ErrToolFailed):
		err = devhelper.ErrUnavailable.Withf("%s: %v", call, err)
	}
	a.log.Warn().Err(err).Str("tool", call.Tool()).Str("executor", d.Executor).Msg("tool call failed")
	return Result{}, err
}
