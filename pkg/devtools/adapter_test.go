package devtools_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// fakeExecutor records calls and returns a canned response
type fakeExecutor struct {
	sync.Mutex
	calls  []string
	result devtools.Result
	err    error
	delay  time.Duration
}

func (f *fakeExecutor) CallTool(ctx context.Context, name string, _ map[string]any) (devtools.Result, error) {
	f.Lock()
	f.calls = append(f.calls, name)
	f.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return devtools.Result{}, ctx.Err()
		}
	}
	return f.result, f.err
}

func Test_adapter_001(t *testing.T) {
	assert := assert.New(t)

	// Both executors are required
	_, err := devtools.NewAdapter(nil, &fakeExecutor{})
	assert.ErrorIs(err, devhelper.ErrBadParameter)
	_, err = devtools.NewAdapter(&fakeExecutor{}, &fakeExecutor{}, devtools.WithTimeout(-time.Second))
	assert.ErrorIs(err, devhelper.ErrBadParameter)
}

func Test_adapter_002(t *testing.T) {
	assert := assert.New(t)
	calc := &fakeExecutor{result: devtools.NewNumber(42)}
	note := &fakeExecutor{result: devtools.NewText("Note added: x")}
	adapter, err := devtools.NewAdapter(calc, note)
	require.NoError(t, err)

	// Calls are routed to the executor which owns the tool
	result, err := adapter.Call(context.Background(), devtools.Multiply{A: 7, B: 6})
	assert.NoError(err)
	assert.Equal("42", result.String())

	result, err = adapter.Call(context.Background(), devtools.AddNote{Message: "x"})
	assert.NoError(err)
	assert.Equal("Note added: x", result.String())

	assert.Equal([]string{"multiply"}, calc.calls)
	assert.Equal([]string{"add_note"}, note.calls)
}

func Test_adapter_003(t *testing.T) {
	assert := assert.New(t)

	// The divide-by-zero text is returned unmodified as a success
	calc := &fakeExecutor{result: devtools.NewText("Error: Cannot divide by zero.")}
	adapter, err := devtools.NewAdapter(calc, &fakeExecutor{})
	require.NoError(t, err)

	result, err := adapter.Call(context.Background(), devtools.Divide{A: 5, B: 0})
	assert.NoError(err)
	text, ok := result.Text()
	assert.True(ok)
	assert.Equal("Error: Cannot divide by zero.", text)
}

func Test_adapter_004(t *testing.T) {
	assert := assert.New(t)

	// Plain errors are reported as transport failures
	calc := &fakeExecutor{err: errors.New("connection refused")}
	adapter, err := devtools.NewAdapter(calc, &fakeExecutor{})
	require.NoError(t, err)
	_, err = adapter.Call(context.Background(), devtools.Add{A: 1, B: 2})
	assert.ErrorIs(err, devhelper.ErrUnavailable)

	// Tool failures keep their kind
	calc.err = devhelper.ErrToolFailed.With("bad input")
	_, err = adapter.Call(context.Background(), devtools.Add{A: 1, B: 2})
	assert.ErrorIs(err, devhelper.ErrToolFailed)
	assert.NotErrorIs(err, devhelper.ErrUnavailable)
}

func Test_adapter_005(t *testing.T) {
	assert := assert.New(t)

	// An unresponsive executor times out as a transport failure
	calc := &fakeExecutor{result: devtools.NewNumber(1), delay: time.Minute}
	adapter, err := devtools.NewAdapter(calc, &fakeExecutor{}, devtools.WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	_, err = adapter.Call(context.Background(), devtools.Add{A: 1, B: 2})
	assert.ErrorIs(err, devhelper.ErrUnavailable)
	assert.Less(time.Since(start), 5*time.Second)
}
