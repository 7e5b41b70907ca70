package agent

import (
	"context"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	devhelper "github.com/mutablelogic/go-devhelper"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// dispatch resolves every call before running any, then runs them and
// returns one result block per call, in the order requested. A call the
// model got wrong fails the request; a call the executor could not
// answer becomes an error result for the model to report.
func (e *Engine) dispatch(ctx context.Context, calls []schema.ToolCall) ([]schema.ContentBlock, error) {
	resolved := make([]devtools.Call, len(calls))
	for i, call := range calls {
		c, err := devtools.Parse(call)
		if err != nil {
			return nil, err
		}
		resolved[i] = c
	}

	results := make([]schema.ContentBlock, len(calls))
	var g errgroup.Group
	g.SetLimit(max(e.parallel, 1))
	for i := range resolved {
		g.Go(func() error {
			results[i] = e.call(ctx, calls[i], resolved[i])
			return nil
		})
	}
	g.Wait()
	return results, nil
}

func (e *Engine) call(ctx context.Context, request schema.ToolCall, call devtools.Call) (block schema.ContentBlock) {
	var err error
	ctx, endSpan := otel.StartSpan(e.tracer, ctx, "Tool",
		attribute.String("tool", call.Tool()),
		attribute.String("call", call.String()),
	)
	defer func() { endSpan(err) }()

	defer func() {
		if r := recover(); r != nil {
			err = devhelper.ErrInternalServerError.Withf("%s: %v", call.Tool(), r)
			block = schema.NewToolError(request.ID, request.Name, err)
		}
	}()

	result, err := e.tools.Call(ctx, call)
	if err != nil {
		e.log.Warn().Err(err).Str("call", call.String()).Msg("tool failed")
		return schema.NewToolError(request.ID, request.Name, err)
	}
	e.log.Debug().Str("call", call.String()).Stringer("result", result).Msg("tool")
	return schema.NewToolResult(request.ID, request.Name, result)
}
