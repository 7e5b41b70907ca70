package main

import (
	"fmt"

	// Packages
	calculator "github.com/mutablelogic/go-devhelper/pkg/calculator"
	server "github.com/mutablelogic/go-devhelper/pkg/mcp/server"
	notes "github.com/mutablelogic/go-devhelper/pkg/notes"
	tool "github.com/mutablelogic/go-devhelper/pkg/tool"
	version "github.com/mutablelogic/go-devhelper/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCmd struct {
	Calculator ServeCalculatorCmd `cmd:"" name:"calculator" help:"Serve the add, subtract, multiply and divide tools"`
	Notes      ServeNotesCmd      `cmd:"" name:"notes" help:"Serve the add_note and read_notes tools"`
}

type ServeFlags struct {
	Stdio  bool   `name:"stdio" help:"Serve over standard input and output"`
	Listen string `name:"listen" default:"localhost:8084" help:"Serve streamable HTTP on this address"`
}

type ServeCalculatorCmd struct {
	ServeFlags
}

type ServeNotesCmd struct {
	ServeFlags
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCalculatorCmd) Run(ctx *Globals) error {
	toolkit, err := calculator.NewToolkit()
	if err != nil {
		return err
	}
	return cmd.serve(ctx, calculator.Name, toolkit)
}

func (cmd *ServeNotesCmd) Run(ctx *Globals) error {
	store := notes.NewMemoryStore()
	if ctx.NotesDB != "" {
		var err error
		if store, err = notes.NewBoltStore(ctx.NotesDB); err != nil {
			return err
		}
	}
	ctx.closers = append(ctx.closers, store.Close)

	toolkit, err := notes.NewToolkit(store)
	if err != nil {
		return err
	}
	return cmd.serve(ctx, notes.Name, toolkit)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *ServeFlags) serve(ctx *Globals, name string, toolkit *tool.Toolkit) error {
	log := ctx.log.With().Str("executor", name).Logger()
	srv, err := server.New(name, version.Version(), toolkit, server.WithLogger(log))
	if err != nil {
		return err
	}

	// Standard output carries the protocol, so only log to stderr
	if cmd.Stdio {
		return srv.RunStdio(ctx.ctx)
	}
	if cmd.Listen == "" {
		return fmt.Errorf("an address to listen on is required")
	}
	return srv.ListenAndServe(ctx.ctx, cmd.Listen)
}
