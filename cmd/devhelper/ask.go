package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	ollama "github.com/mutablelogic/go-devhelper/pkg/ollama"
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCmd struct {
	Text   []string `arg:"" help:"The question"`
	Stream bool     `name:"stream" help:"Print text as it is generated"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskCommand")
	defer func() { endSpan(err) }()

	var opts []opt.Opt
	var streamed strings.Builder
	if cmd.Stream {
		opts = append(opts, ollama.WithStream(func(text string) {
			streamed.WriteString(text)
			fmt.Print(text)
		}))
	}
	engine, err := ctx.Engine(opts...)
	if err != nil {
		return err
	}

	// Errors are part of the answer
	response := engine.Ask(parent, strings.Join(cmd.Text, " "), nil)
	finish(os.Stdout, streamed.String(), response)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// finish ends the output of a question. The response is printed unless it
// was the last text streamed, which covers errors raised after streaming.
func finish(w io.Writer, streamed, response string) {
	if streamed == "" {
		fmt.Fprintln(w, response)
		return
	}
	fmt.Fprintln(w)
	if !strings.HasSuffix(strings.TrimSpace(streamed), strings.TrimSpace(response)) {
		fmt.Fprintln(w, response)
	}
}
