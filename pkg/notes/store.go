// Package notes implements the note-taking tool executor: an ordered,
// append-only sequence of notes with add and read tools.
package notes

import (
	"context"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Store is an ordered, append-only sequence of notes.
// Implementations serialize mutations.
type Store interface {
	// Append a note to the end of the sequence
	Append(ctx context.Context, message string) error

	// List returns all notes in insertion order
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store
	Close() error
}

// memory is an unbounded in-memory store, lost on process exit
type memory struct {
	sync.RWMutex
	notes []string
}

var _ Store = (*memory)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() Store {
	return &memory{}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (m *memory) Append(_ context.Context, message string) error {
	m.Lock()
	defer m.Unlock()
	m.notes = append(m.notes, message)
	return nil
}

func (m *memory) List(_ context.Context) ([]string, error) {
	m.RLock()
	defer m.RUnlock()
	result := make([]string, len(m.notes))
	copy(result, m.notes)
	return result, nil
}

func (m *memory) Close() error {
	return nil
}
