package main

import (
	"os"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	repl "github.com/mutablelogic/go-devhelper/pkg/repl"
	attribute "go.opentelemetry.io/otel/attribute"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	NoHistory   bool `name:"no-history" env:"DEVHELPER_NO_HISTORY" help:"Answer each question without earlier turns"`
	ExitOnEmpty bool `name:"exit-on-empty" env:"DEVHELPER_EXIT_ON_EMPTY" help:"End the session on an empty line"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand",
		attribute.String("model", ctx.Model),
	)
	defer func() { endSpan(err) }()

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	// Plain output when piped, styled on a terminal
	opts := []repl.Opt{
		repl.WithHistory(!cmd.NoHistory),
		repl.WithExitOnEmpty(cmd.ExitOnEmpty),
		repl.WithBanner(repl.Banner(ctx.tty, "Model: "+ctx.Model)),
		repl.WithLogger(ctx.log),
	}
	if ctx.tty {
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return err
		}
		opts = append(opts, repl.WithRenderer(renderer), repl.StyledLabels())
	}

	loop, err := repl.New(engine, os.Stdin, os.Stdout, opts...)
	if err != nil {
		return err
	}
	return loop.Run(parent)
}
