package opt_test

import (
	"testing"
	"time"

	// Packages
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func Test_opt_001(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
	assert.Nil(opts.Get("missing"))
	assert.Empty(opts.GetString("missing"))
}

func Test_opt_002(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.WithString(opt.SystemPromptKey, " You are DevHelper ", "second"))
	assert.NoError(err)
	assert.Equal("You are DevHelper", opts.GetString(opt.SystemPromptKey))
}

func Test_opt_003(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(
		opt.WithFloat64(opt.TemperatureKey, 0.5),
		opt.WithDuration(opt.KeepAliveKey, 5*time.Minute),
	)
	assert.NoError(err)
	assert.Equal(0.5, opts.GetFloat64(opt.TemperatureKey))
	assert.Equal(5*time.Minute, opts.GetDuration(opt.KeepAliveKey))
	assert.True(opts.Has(opt.TemperatureKey))
	assert.False(opts.Has(opt.StreamKey))
}

func Test_opt_004(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetAny(opt.ToolsKey, []string{"a"}), opt.SetAny(opt.ToolsKey, []string{"b"}))
	assert.NoError(err)
	assert.True(opts.Has(opt.ToolsKey))
	assert.Equal([]string{"b"}, opts.Get(opt.ToolsKey))
}

func Test_opt_005(t *testing.T) {
	assert := assert.New(t)

	// Grouped options apply in order
	opts, err := opt.Apply(opt.WithOpts(
		opt.WithFloat64(opt.TemperatureKey, 0.1),
		opt.SetAny(opt.ToolsKey, "tools"),
	))
	assert.NoError(err)
	assert.Equal(0.1, opts.GetFloat64(opt.TemperatureKey))
	assert.Equal("tools", opts.Get(opt.ToolsKey))
}
