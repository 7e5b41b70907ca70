// Package client implements a handle on a remote MCP tool executor,
// reached over streamable HTTP, a spawned subprocess, or any other
// MCP transport.
package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/exec"
	"sync"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	devhelper "github.com/mutablelogic/go-devhelper"
	version "github.com/mutablelogic/go-devhelper/pkg/version"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Dialer returns a new transport to the executor for each connection
type Dialer func(ctx context.Context) (mcp.Transport, error)

// Client is a handle on one executor. By default each call connects,
// calls and disconnects. When pooled, one session is kept open and
// re-established after a failure.
type Client struct {
	name   string
	client *mcp.Client
	dial   Dialer
	pool   bool
	log    zerolog.Logger

	mu      sync.Mutex
	session *mcp.ClientSession
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	implementationName = "devhelper"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a handle on the named executor. No connection is made
// until the first call.
func New(name string, dial Dialer, opts ...Opt) (*Client, error) {
	if dial == nil {
		return nil, devhelper.ErrBadParameter.With("dialer is required")
	}
	self := &Client{
		name: name,
		dial: dial,
		log:  zerolog.Nop(),
	}
	if err := self.apply(opts...); err != nil {
		return nil, err
	}
	self.client = mcp.NewClient(&mcp.Implementation{
		Name:    implementationName,
		Version: version.Version(),
	}, nil)
	return self, nil
}

// Endpoint dials an executor served over streamable HTTP at url
func Endpoint(url string, httpClient *http.Client) Dialer {
	return func(context.Context) (mcp.Transport, error) {
		if url == "" {
			return nil, devhelper.ErrBadParameter.With("endpoint is required")
		}
		return &mcp.StreamableClientTransport{Endpoint: url, HTTPClient: httpClient}, nil
	}
}

// Command dials an executor by spawning path with args, speaking MCP
// over its standard input and output. The subprocess lives as long as
// the session, so command executors should be pooled.
func Command(stderr io.Writer, path string, args ...string) Dialer {
	return func(context.Context) (mcp.Transport, error) {
		cmd := exec.Command(path, args...)
		cmd.Stderr = stderr
		return &mcp.CommandTransport{Command: cmd}, nil
	}
}

// Close ends the pooled session, if any
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the executor name
func (c *Client) Name() string {
	return c.name
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// acquire returns a session and a function to release it after use
func (c *Client) acquire(ctx context.Context) (*mcp.ClientSession, func(), error) {
	if !c.pool {
		session, err := c.connect(ctx)
		if err != nil {
			return nil, nil, err
		}
		return session, func() {
			if err := session.Close(); err != nil {
				c.log.Debug().Err(err).Str("executor", c.name).Msg("close")
			}
		}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		// The pooled session outlives the call which opened it
		session, err := c.connect(context.WithoutCancel(ctx))
		if err != nil {
			return nil, nil, err
		}
		c.session = session
	}
	return c.session, func() {}, nil
}

// discard drops a pooled session after a failure, so the next call reconnects
func (c *Client) discard(session *mcp.ClientSession) {
	if !c.pool {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == session {
		session.Close()
		c.session = nil
	}
}

func (c *Client) connect(ctx context.Context) (*mcp.ClientSession, error) {
	transport, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	session, err := c.client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("executor", c.name).Bool("pooled", c.pool).Msg("connected")
	return session, nil
}

// unavailable wraps err as a transport failure, keeping context errors visible
func (c *Client) unavailable(err error) error {
	if errors.Is(err, devhelper.ErrUnavailable) {
		return err
	}
	return devhelper.ErrUnavailable.Withf("%s: %v", c.name, err)
}
