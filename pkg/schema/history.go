package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Turn is one exchange between the human and the agent
type Turn struct {
	Human string `json:"human"`
	Agent string `json:"agent"`
}

// History is the ordered sequence of turns in an interactive session
type History []Turn

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a turn to the end of the history
func (h *History) Append(human, agent string) {
	*h = append(*h, Turn{Human: human, Agent: agent})
}

// Conversation returns the history as alternating user and assistant
// messages, oldest first
func (h History) Conversation() Conversation {
	result := make(Conversation, 0, len(h)*2)
	for _, turn := range h {
		result = append(result, NewMessage(RoleUser, turn.Human), NewMessage(RoleAssistant, turn.Agent))
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (h History) String() string {
	return types.Stringify(h)
}
