package repl

import (
	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*REPL) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithExitOnEmpty ends the loop on an empty line
func WithExitOnEmpty(v bool) Opt {
	return func(r *REPL) error {
		r.exitOnEmpty = v
		return nil
	}
}

// WithHistory sets whether earlier turns are sent with each input
func WithHistory(v bool) Opt {
	return func(r *REPL) error {
		r.keep = v
		return nil
	}
}

// WithBanner sets text printed before the first prompt
func WithBanner(banner string) Opt {
	return func(r *REPL) error {
		r.banner = banner
		return nil
	}
}

// WithLabels replaces the prompt and the label printed before each answer
func WithLabels(prompt, reply string) Opt {
	return func(r *REPL) error {
		r.prompt = prompt
		r.reply = reply
		return nil
	}
}

// WithRenderer formats each answer before it is printed
func WithRenderer(renderer Renderer) Opt {
	return func(r *REPL) error {
		r.renderer = renderer
		return nil
	}
}

// WithMaxLine sets the longest line read, in bytes
func WithMaxLine(n int) Opt {
	return func(r *REPL) error {
		if n <= 0 {
			return devhelper.ErrBadParameter.Withf("invalid max line %d", n)
		}
		r.maxLine = n
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Opt {
	return func(r *REPL) error {
		r.log = log
		return nil
	}
}
