package main

import (
	"encoding/json"
	"fmt"
	"sort"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	table "github.com/mutablelogic/go-devhelper/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

type modelRows []schema.Model

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ModelsCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ModelsCommand")
	defer func() { endSpan(err) }()

	client, err := ctx.Client()
	if err != nil {
		return err
	}
	models, err := client.ListModels(parent)
	if err != nil {
		return err
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})

	if cmd.JSON {
		data, err := json.MarshalIndent(models, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(table.Render(modelRows(models), width()))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// TABLE

func (modelRows) Header() []string {
	return []string{"Model", "Family", "Parameters", "Size", "Modified"}
}

func (r modelRows) Len() int {
	return len(r)
}

func (r modelRows) Row(i int) []any {
	m := r[i]
	return []any{m.Name, m.Family, m.Description, table.Bytes(m.Size), m.Modified}
}
