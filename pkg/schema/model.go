package schema

import (
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Represents a language model available on a backend
type Model struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Family      string    `json:"family,omitempty"`
	Size        int64     `json:"size,omitempty"`
	Modified    time.Time `json:"modified,omitzero"`
	OwnedBy     string    `json:"owned_by,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return types.Stringify(m)
}
