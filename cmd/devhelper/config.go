package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	// Packages
	kong "github.com/alecthomas/kong"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultModel   = "llama3.1:8b"
	defaultOllama  = "http://localhost:11434/api"
	defaultEnvFile = ".env"
	envFileFlag    = "--env-file"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// yamlLoader reads a YAML configuration file whose keys are flag names
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, err
	}
	if values == nil {
		values = map[string]any{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return kong.JSON(bytes.NewReader(data))
}

// envFile returns the value of the env-file flag, which is needed before
// the command line is parsed
func envFile(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		} else if value, ok := strings.CutPrefix(arg, envFileFlag+"="); ok {
			return value
		} else if arg == envFileFlag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return defaultEnvFile
}
