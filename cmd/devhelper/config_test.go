package main

import (
	"strings"
	"testing"

	// Packages
	kong "github.com/alecthomas/kong"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func Test_config_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(".env", envFile(nil))
	assert.Equal("prod.env", envFile([]string{"chat", "--env-file", "prod.env"}))
	assert.Equal("dev.env", envFile([]string{"--env-file=dev.env", "ask", "hi"}))
	assert.Equal(".env", envFile([]string{"ask", "--", "--env-file", "x"}))
	assert.Equal(".env", envFile([]string{"--env-file"}))
}

func Test_config_002(t *testing.T) {
	assert := assert.New(t)

	// Flags are read from YAML, and the command line wins
	var cli struct {
		Model         string `name:"model" default:"llama3.1:8b"`
		MaxIterations uint   `name:"max-iterations" default:"50"`
		Pool          bool   `name:"pool"`
	}
	resolver, err := yamlLoader(strings.NewReader("model: qwen2.5:7b\nmax-iterations: 10\npool: true\n"))
	require.NoError(t, err)
	parser, err := kong.New(&cli, kong.Resolvers(resolver), kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--max-iterations", "5"})
	require.NoError(t, err)
	assert.Equal("qwen2.5:7b", cli.Model)
	assert.Equal(uint(5), cli.MaxIterations)
	assert.True(cli.Pool)

	// An empty file sets nothing
	_, err = yamlLoader(strings.NewReader(""))
	assert.NoError(err)

	// Invalid YAML is an error
	_, err = yamlLoader(strings.NewReader("model: [unclosed"))
	assert.Error(err)
}
