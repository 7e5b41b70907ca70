package client

import (
	// Packages
	zerolog "github.com/rs/zerolog"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Client) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (c *Client) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithPool keeps one session open across calls
func WithPool() Opt {
	return func(c *Client) error {
		c.pool = true
		return nil
	}
}

// WithLogger sets the logger for connection events
func WithLogger(log zerolog.Logger) Opt {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}
