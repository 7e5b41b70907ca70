package opt

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a generator request
type Opt func(*opts) error

// set of options
type opts struct {
	url.Values
	values map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Well-known option keys shared between the engine and model backends
const (
	SystemPromptKey = "system"
	TemperatureKey  = "temperature"
	KeepAliveKey    = "keep_alive"
	ToolsKey        = "tools"
	StreamKey       = "stream"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*opts, error) {
	opts := &opts{Values: make(url.Values), values: make(map[string]any)}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetString returns the trimmed value for key, or empty string if not set
func (o *opts) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *opts) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetDuration returns the duration value for key, or 0 if not set or invalid
func (o *opts) GetDuration(key string) time.Duration {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := time.ParseDuration(strings.TrimSpace(values[0])); err == nil {
			return v
		}
	}
	return 0
}

// Get returns an arbitrary value stored with SetAny, or nil
func (o *opts) Get(key string) any {
	return o.values[key]
}

// Has returns true if the key exists
func (o *opts) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.values[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *opts) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

func WithString(key string, value ...string) Opt {
	return func(o *opts) error {
		for _, v := range value {
			o.Values.Add(key, v)
		}
		return nil
	}
}

func WithFloat64(key string, value float64) Opt {
	return func(o *opts) error {
		o.Values.Add(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

func WithDuration(key string, value time.Duration) Opt {
	return func(o *opts) error {
		o.Values.Set(key, value.String())
		return nil
	}
}

// SetAny stores an arbitrary value, replacing any previous value for key
func SetAny(key string, value any) Opt {
	return func(o *opts) error {
		o.values[key] = value
		return nil
	}
}
