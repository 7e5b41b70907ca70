package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	devhelper "github.com/mutablelogic/go-devhelper"
	tool "github.com/mutablelogic/go-devhelper/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// AddNoteRequest is the input of the add_note tool
type AddNoteRequest struct {
	Message string `json:"message" jsonschema:"The text of the note to store"`
}

// ReadNotesRequest is the (empty) input of the read_notes tool
type ReadNotesRequest struct{}

type addNote struct {
	store Store
}

type readNotes struct {
	store Store
}

var _ tool.Tool = (*addNote)(nil)
var _ tool.Tool = (*readNotes)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Name of the executor, as announced to clients
	Name = "notes"

	// Returned by read_notes when the store is empty
	NoNotes = "No notes found."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the add_note and read_notes tools backed by store
func NewTools(store Store) []tool.Tool {
	return []tool.Tool{
		&addNote{store: store},
		&readNotes{store: store},
	}
}

// NewToolkit returns a toolkit containing the notes tools
func NewToolkit(store Store) (*tool.Toolkit, error) {
	if store == nil {
		return nil, devhelper.ErrBadParameter.With("store is required")
	}
	return tool.NewToolkit(NewTools(store)...)
}

///////////////////////////////////////////////////////////////////////////////
// ADD NOTE

func (*addNote) Name() string {
	return "add_note"
}

func (*addNote) Description() string {
	return "Adds a note to the notes server."
}

// Return the JSON schema for the tool input
func (*addNote) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[AddNoteRequest](nil)
}

// Run the tool with the given input
func (a *addNote) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req AddNoteRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, devhelper.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, devhelper.ErrBadParameter.With("message is required")
	}
	if err := a.store.Append(ctx, req.Message); err != nil {
		return nil, err
	}
	return "Note added: " + req.Message, nil
}

///////////////////////////////////////////////////////////////////////////////
// READ NOTES

func (*readNotes) Name() string {
	return "read_notes"
}

func (*readNotes) Description() string {
	return "Retrieves all notes from the notes server."
}

// Return the JSON schema for the tool input
func (*readNotes) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ReadNotesRequest](nil)
}

// Run the tool with the given input
func (r *readNotes) Run(ctx context.Context, _ json.RawMessage) (any, error) {
	notes, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Format(notes), nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Format renders notes as a numbered list, or NoNotes when empty
func Format(notes []string) string {
	if len(notes) == 0 {
		return NoNotes
	}
	var sb strings.Builder
	sb.WriteString("Notes:")
	for i, note := range notes {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, note)
	}
	return sb.String()
}
