package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Globals

	// Commands
	Chat    ChatCmd    `cmd:"" default:"withargs" help:"Start an interactive session"`
	Ask     AskCmd     `cmd:"" help:"Answer a single question and exit"`
	Serve   ServeCmd   `cmd:"" help:"Run a tool executor"`
	Tools   ToolsCmd   `cmd:"" help:"List the tools each executor provides"`
	Models  ModelsCmd  `cmd:"" help:"List the models available on the Ollama server"`
	Version VersionCmd `cmd:"" help:"Print the version and build information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load the environment before parsing, so env tags see it. A missing
	// file is not an error.
	if err := godotenv.Load(envFile(os.Args[1:])); err != nil && !os.IsNotExist(err) {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(-1)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("DevHelper: a software development assistant with calculator and notes tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Configuration(yamlLoader),
		kong.Vars{
			"model":   defaultModel,
			"ollama":  defaultOllama,
			"envfile": defaultEnvFile,
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cmd.FatalIfErrorf(cli.Globals.init(ctx, execName()))
	defer cli.Globals.Close()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cli.Globals.log.Error().Err(err).Msg(cmd.Command())
		cli.Globals.Close()
		os.Exit(-1)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
