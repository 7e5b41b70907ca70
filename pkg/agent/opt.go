package agent

import (
	"strings"
	"time"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring an engine
type Opt func(*Engine) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (e *Engine) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return err
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithMaxIterations bounds the rounds of tool calls in one request
func WithMaxIterations(n uint) Opt {
	return func(e *Engine) error {
		if n == 0 {
			return devhelper.ErrBadParameter.With("max iterations must be at least one")
		}
		e.maxIterations = n
		return nil
	}
}

// WithTimeout bounds the whole of one request. Zero disables the bound.
func WithTimeout(d time.Duration) Opt {
	return func(e *Engine) error {
		if d < 0 {
			return devhelper.ErrBadParameter.Withf("invalid timeout %v", d)
		}
		e.timeout = d
		return nil
	}
}

// WithParallel sets how many tool calls of one round may run at once
func WithParallel(n int) Opt {
	return func(e *Engine) error {
		if n < 1 {
			return devhelper.ErrBadParameter.With("parallel must be at least one")
		}
		e.parallel = n
		return nil
	}
}

// WithMaxInput sets the longest input accepted, in bytes. Zero disables the bound.
func WithMaxInput(n int) Opt {
	return func(e *Engine) error {
		if n < 0 {
			return devhelper.ErrBadParameter.Withf("invalid max input %d", n)
		}
		e.maxInput = n
		return nil
	}
}

// WithSystemPrompt replaces the system prompt
func WithSystemPrompt(value string) Opt {
	return func(e *Engine) error {
		if value = strings.TrimSpace(value); value == "" {
			return devhelper.ErrBadParameter.With("system prompt is empty")
		}
		e.system = value
		return nil
	}
}

// WithGeneratorOpts adds options to every request to the model
func WithGeneratorOpts(opts ...opt.Opt) Opt {
	return func(e *Engine) error {
		e.opts = append(e.opts, opts...)
		return nil
	}
}

// WithTracer sets the tracer for request and tool spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(e *Engine) error {
		if tracer == nil {
			return devhelper.ErrBadParameter.With("tracer is required")
		}
		e.tracer = tracer
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Opt {
	return func(e *Engine) error {
		e.log = log
		return nil
	}
}
