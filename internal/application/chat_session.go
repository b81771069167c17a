package application

import (
	"github.com/bnema/persona-chat/internal/ports"
	"github.com/rs/zerolog"
)

// ChatSession wires the session store and turn controller around one shared
// State, the way the presentation layer consumes them.
type ChatSession struct {
	State *State
	Store *SessionStore
	Turns *TurnController
}

func NewChatSession(conversations ports.ConversationTransport, agents ports.AgentTransport, clock ports.Clock, logger zerolog.Logger) *ChatSession {
	state := NewState()

	return &ChatSession{
		State: state,
		Store: NewSessionStore(conversations, agents, state, logger),
		Turns: NewTurnController(conversations, state, clock, logger),
	}
}
