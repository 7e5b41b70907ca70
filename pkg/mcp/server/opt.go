package server

import (
	// Packages
	zerolog "github.com/rs/zerolog"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Server) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (server *Server) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger for tool calls and HTTP requests
func WithLogger(log zerolog.Logger) Opt {
	return func(server *Server) error {
		server.log = log
		return nil
	}
}
