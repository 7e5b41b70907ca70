package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	calculator "github.com/mutablelogic/go-devhelper/pkg/calculator"
	notes "github.com/mutablelogic/go-devhelper/pkg/notes"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	table "github.com/mutablelogic/go-devhelper/pkg/ui/table"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

type toolRow struct {
	Executor string `json:"executor"`
	schema.ToolDefinition
}

type toolRows []toolRow

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ToolsCommand")
	defer func() { endSpan(err) }()

	// list_tools against each executor
	var rows toolRows
	for _, name := range []string{calculator.Name, notes.Name} {
		executor, err := ctx.Executor(name)
		if err != nil {
			return err
		}
		tools, err := executor.ListTools(parent)
		if err != nil {
			return err
		}
		for _, tool := range tools {
			rows = append(rows, toolRow{Executor: name, ToolDefinition: tool})
		}
	}

	if cmd.JSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(table.Render(rows, width()))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// TABLE

func (toolRows) Header() []string {
	return []string{"Executor", "Tool", "Parameters", "Description"}
}

func (r toolRows) Len() int {
	return len(r)
}

func (r toolRows) Row(i int) []any {
	var params []string
	if s := r[i].InputSchema; s != nil {
		for _, name := range s.Required {
			if p, ok := s.Properties[name]; ok && p != nil {
				params = append(params, name+":"+p.Type)
			} else {
				params = append(params, name)
			}
		}
	}
	return []any{r[i].Executor, r[i].Name, strings.Join(params, ", "), r[i].Description}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// width returns the terminal width, or zero when output is not a terminal
func width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}
