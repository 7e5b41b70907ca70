package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	agent "github.com/mutablelogic/go-devhelper/pkg/agent"
	calculator "github.com/mutablelogic/go-devhelper/pkg/calculator"
	devtools "github.com/mutablelogic/go-devhelper/pkg/devtools"
	mcpclient "github.com/mutablelogic/go-devhelper/pkg/mcp/client"
	notes "github.com/mutablelogic/go-devhelper/pkg/notes"
	ollama "github.com/mutablelogic/go-devhelper/pkg/ollama"
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
	zerolog "github.com/rs/zerolog"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output, including HTTP requests"`

	// Configuration
	Config  kong.ConfigFlag `name:"config" help:"YAML configuration file, with flag names as keys"`
	EnvFile string          `name:"env-file" default:"${envfile}" help:"Environment file loaded before parsing flags"`

	// Model
	Ollama `embed:"" help:"Ollama configuration"`

	// Engine
	MaxIterations uint          `name:"max-iterations" env:"DEVHELPER_MAX_ITERATIONS" default:"50" help:"Most rounds of tool calls for one question"`
	Timeout       time.Duration `name:"timeout" env:"DEVHELPER_TIMEOUT" default:"5m" help:"Longest time to answer one question"`
	Parallel      int           `name:"parallel" env:"DEVHELPER_PARALLEL" default:"1" help:"Tool calls of one round which may run at once"`

	// Executors
	Executors `embed:"" help:"Tool executor configuration"`

	// Context
	ctx     context.Context
	name    string
	log     zerolog.Logger
	tracer  trace.Tracer
	tty     bool
	closers []func() error
}

type Ollama struct {
	Model       string  `name:"model" env:"DEVHELPER_MODEL" default:"${model}" help:"Model used to answer"`
	OllamaURL   string  `name:"ollama-url" env:"OLLAMA_URL" default:"${ollama}" help:"Ollama endpoint"`
	Temperature float64 `name:"temperature" env:"DEVHELPER_TEMPERATURE" default:"-1" help:"Sampling temperature, or negative for the model default"`
}

type Executors struct {
	Calculator  string        `name:"calculator" env:"DEVHELPER_CALCULATOR" help:"Calculator executor URL, or empty to start one over stdio"`
	Notes       string        `name:"notes" env:"DEVHELPER_NOTES" help:"Notes executor URL, or empty to start one over stdio"`
	NotesDB     string        `name:"notes-db" env:"DEVHELPER_NOTES_DB" help:"Keep notes in this bbolt file rather than in memory"`
	Pool        bool          `name:"pool" env:"DEVHELPER_POOL" help:"Keep one session open to each executor URL"`
	ToolTimeout time.Duration `name:"tool-timeout" env:"DEVHELPER_TOOL_TIMEOUT" default:"30s" help:"Longest time to wait for one tool call"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (g *Globals) init(ctx context.Context, name string) error {
	g.ctx = ctx
	g.name = name
	g.tty = term.IsTerminal(int(os.Stdout.Fd()))
	g.tracer = otel.Tracer("github.com/mutablelogic/go-devhelper")

	// Logging to stderr, readable on a terminal
	level := zerolog.InfoLevel
	if g.Verbose {
		level = zerolog.TraceLevel
	} else if g.Debug {
		level = zerolog.DebugLevel
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		g.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).Level(level).With().Timestamp().Logger()
	} else {
		g.log = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	return nil
}

// Close releases executors in reverse order of creation
func (g *Globals) Close() error {
	var result error
	for i := len(g.closers) - 1; i >= 0; i-- {
		result = errors.Join(result, g.closers[i]())
	}
	g.closers = nil
	return result
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns the Ollama client
func (g *Globals) Client() (*ollama.Client, error) {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return ollama.New(g.OllamaURL, opts...)
}

// Executor returns a handle on the named executor: the configured URL,
// or this binary serving over stdio
func (g *Globals) Executor(name string) (*mcpclient.Client, error) {
	var url string
	switch name {
	case calculator.Name:
		url = g.Calculator
	case notes.Name:
		url = g.Notes
	default:
		return nil, fmt.Errorf("unknown executor %q", name)
	}

	opts := []mcpclient.Opt{mcpclient.WithLogger(g.log.With().Str("executor", name).Logger())}
	var dial mcpclient.Dialer
	if url != "" {
		dial = mcpclient.Endpoint(url, nil)
		if g.Pool {
			opts = append(opts, mcpclient.WithPool())
		}
	} else {
		self, err := os.Executable()
		if err != nil {
			return nil, err
		}
		args := []string{"serve", name, "--stdio"}
		if name == notes.Name && g.NotesDB != "" {
			args = append(args, "--notes-db", g.NotesDB)
		}
		if g.Debug {
			args = append(args, "--debug")
		}
		// The subprocess holds the notes, so it lives as long as the session
		dial = mcpclient.Command(os.Stderr, self, args...)
		opts = append(opts, mcpclient.WithPool())
	}

	executor, err := mcpclient.New(name, dial, opts...)
	if err != nil {
		return nil, err
	}
	g.closers = append(g.closers, executor.Close)
	return executor, nil
}

// Adapter returns the tool adapters over both executors
func (g *Globals) Adapter() (*devtools.Adapter, error) {
	calc, err := g.Executor(calculator.Name)
	if err != nil {
		return nil, err
	}
	note, err := g.Executor(notes.Name)
	if err != nil {
		return nil, err
	}

	// Check both executors answer before the first question
	for _, executor := range []*mcpclient.Client{calc, note} {
		tools, err := executor.ListTools(g.ctx)
		if err != nil {
			return nil, err
		}
		g.log.Debug().Str("executor", executor.Name()).Int("tools", len(tools)).Msg("connected")
	}

	return devtools.NewAdapter(calc, note,
		devtools.WithTimeout(g.ToolTimeout),
		devtools.WithLogger(g.log),
	)
}

// Engine returns the conversation engine, with any extra generator options
func (g *Globals) Engine(opts ...opt.Opt) (*agent.Engine, error) {
	client, err := g.Client()
	if err != nil {
		return nil, err
	}
	adapter, err := g.Adapter()
	if err != nil {
		return nil, err
	}
	if g.Temperature >= 0 {
		opts = append(opts, opt.WithFloat64(opt.TemperatureKey, g.Temperature))
	}
	return agent.New(client, schema.Model{Name: g.Model, OwnedBy: client.Name()}, adapter,
		agent.WithMaxIterations(g.MaxIterations),
		agent.WithTimeout(g.Timeout),
		agent.WithParallel(g.Parallel),
		agent.WithGeneratorOpts(opts...),
		agent.WithTracer(g.tracer),
		agent.WithLogger(g.log),
	)
}
