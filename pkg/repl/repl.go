// Package repl implements the interactive loop: it reads a line at a
// time, forwards it to an engine and prints the answer, until the user
// quits.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Asker answers input in the context of history, and never fails
type Asker interface {
	Ask(ctx context.Context, input string, history schema.History) string
}

// Renderer formats an answer for display
type Renderer interface {
	Render(text string) (string, error)
}

// REPL owns the conversation history for one session
type REPL struct {
	asker       Asker
	in          io.Reader
	out         io.Writer
	banner      string
	prompt      string
	reply       string
	exitOnEmpty bool
	keep        bool
	maxLine     int
	renderer    Renderer
	log         zerolog.Logger
	history     schema.History
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Prompt  = "You: "
	Reply   = "Agent: "
	Goodbye = "Goodbye!"

	defaultMaxLine = 1024 * 1024
)

var (
	sentinels = map[string]bool{"quit": true, "exit": true, "q": true}
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a loop which reads from in and writes to out
func New(asker Asker, in io.Reader, out io.Writer, opts ...Opt) (*REPL, error) {
	if asker == nil {
		return nil, devhelper.ErrBadParameter.With("asker is required")
	} else if in == nil || out == nil {
		return nil, devhelper.ErrBadParameter.With("input and output are required")
	}
	self := &REPL{
		asker:   asker,
		in:      in,
		out:     out,
		prompt:  Prompt,
		reply:   Reply,
		keep:    true,
		maxLine: defaultMaxLine,
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
// PUBLIC METHODS

// Run reads and answers lines until the user quits, the input ends or
// the context is cancelled. None of these are errors.
func (r *REPL) Run(ctx context.Context) error {
	if r.banner != "" {
		fmt.Fprintln(r.out, r.banner)
	}

	lines, errs := r.read()
	for {
		fmt.Fprint(r.out, r.prompt)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case err := <-errs:
			fmt.Fprintln(r.out)
			return err
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				select {
				case err := <-errs:
					return err
				default:
					return nil
				}
			}
			line = l
		}

		// Sentinels
		input := strings.TrimSpace(line)
		if sentinels[strings.ToLower(input)] || (input == "" && r.exitOnEmpty) {
			fmt.Fprintln(r.out, Goodbye)
			return nil
		} else if input == "" {
			continue
		}

		// Answer
		var history schema.History
		if r.keep {
			history = r.history
		}
		response := r.asker.Ask(ctx, input, history)
		fmt.Fprint(r.out, r.reply, r.render(response), "\n\n")
		if r.keep {
			r.history.Append(input, response)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// History returns the turns of the session so far
func (r *REPL) History() schema.History {
	return r.history
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// read delivers lines from the input until it ends. A read error is sent
// on the second channel, and the end of input closes the first.
func (r *REPL) read() (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		scanner.Buffer(make([]byte, 0, min(4096, r.maxLine)), r.maxLine)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()
	return lines, errs
}

func (r *REPL) render(text string) string {
	if r.renderer == nil {
		return text
	}
	rendered, err := r.renderer.Render(text)
	if err != nil {
		r.log.Debug().Err(err).Msg("render")
		return text
	}
	return strings.TrimSpace(rendered)
}
