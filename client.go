package devhelper

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-devhelper/pkg/opt"
	schema "github.com/mutablelogic/go-devhelper/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is a model backend
type Client interface {
	// Return the backend name
	Name() string

	// ListModels returns the models available on the backend
	ListModels(ctx context.Context) ([]schema.Model, error)

	// GetModel returns the model with the given name
	GetModel(ctx context.Context, name string) (*schema.Model, error)
}

// Messenger conducts a conversation with a model
type Messenger interface {
	// WithSession sends a message within a session and returns the
	// response. The message and the response are appended to the session.
	WithSession(ctx context.Context, model schema.Model, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, error)
}
