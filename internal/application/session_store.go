package application

import (
	"context"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/ports"
	"github.com/rs/zerolog"
)

// SessionStore owns which conversations exist for the active agent and which
// one is selected. Failures leave the existing state untouched and raise a
// page notice.
type SessionStore struct {
	conversations ports.ConversationTransport
	agents        ports.AgentTransport
	state         *State
	logger        zerolog.Logger
}

func NewSessionStore(conversations ports.ConversationTransport, agents ports.AgentTransport, state *State, logger zerolog.Logger) *SessionStore {
	if state == nil {
		state = NewState()
	}

	return &SessionStore{
		conversations: conversations,
		agents:        agents,
		state:         state,
		logger:        logger.With().Str("component", "session_store").Logger(),
	}
}

func (s *SessionStore) State() *State {
	return s.state
}

// OpenAgent makes agentID the active agent: it loads the agent's baseline
// persona and its conversation list. The view switches only once both have
// arrived; a failure leaves the previous agent in place.
func (s *SessionStore) OpenAgent(ctx context.Context, agentID domain.AgentID) error {
	return s.openAgent(ctx, agentID, true)
}

func (s *SessionStore) openAgent(ctx context.Context, agentID domain.AgentID, selectDefault bool) error {
	var epoch uint64
	s.state.update(func(d *stateData) {
		epoch = d.requestAgent()
	})

	agent, err := s.agents.GetAgent(ctx, agentID)
	if err != nil {
		return s.failAgentLoad(epoch, "get agent", err)
	}

	conversations, err := s.listConversations(ctx, agentID)
	if err != nil {
		return s.failAgentLoad(epoch, "list conversations", err)
	}

	var selected domain.ConversationID
	stale := false
	s.state.update(func(d *stateData) {
		if d.agentEpoch != epoch {
			stale = true
			return
		}
		if d.agentID != agentID {
			d.bindAgent(agentID)
		}
		d.agent = &agent
		d.persona.Reset(agent.Baseline())
		d.persona.Recompute(d.messages)
		selected = d.applyConversations(conversations, selectDefault)
	})

	return s.conversationsApplied(ctx, agentID, len(conversations), selected, stale)
}

// LoadConversations refreshes the conversation list and selects the first
// entry when nothing is selected yet. An agent that is not active yet is
// opened first.
func (s *SessionStore) LoadConversations(ctx context.Context, agentID domain.AgentID) error {
	return s.loadConversations(ctx, agentID, true)
}

func (s *SessionStore) loadConversations(ctx context.Context, agentID domain.AgentID, selectDefault bool) error {
	var epoch uint64
	bound := false
	s.state.read(func(d *stateData) {
		bound = d.agentID == agentID && d.agent != nil
		epoch = d.agentEpoch
	})
	if !bound {
		return s.openAgent(ctx, agentID, selectDefault)
	}

	conversations, err := s.listConversations(ctx, agentID)
	if err != nil {
		return s.failAgentLoad(epoch, "list conversations", err)
	}

	var selected domain.ConversationID
	stale := false
	s.state.update(func(d *stateData) {
		if d.agentEpoch != epoch || d.agentID != agentID {
			stale = true
			return
		}
		selected = d.applyConversations(conversations, selectDefault)
	})

	return s.conversationsApplied(ctx, agentID, len(conversations), selected, stale)
}

func (s *SessionStore) listConversations(ctx context.Context, agentID domain.AgentID) ([]domain.Conversation, error) {
	conversations, err := s.conversations.ListConversations(ctx, agentID)
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		if conversations[i].AgentID == "" {
			conversations[i].AgentID = agentID
		}
	}

	return conversations, nil
}

func (s *SessionStore) conversationsApplied(ctx context.Context, agentID domain.AgentID, count int, selected domain.ConversationID, stale bool) error {
	if stale {
		s.logger.Debug().Str("agent_id", string(agentID)).Msg("discarding conversation list for superseded agent")
		return nil
	}

	s.logger.Debug().
		Str("agent_id", string(agentID)).
		Int("count", count).
		Msg("conversations loaded")

	if selected == "" {
		return nil
	}

	return s.LoadMessages(ctx, selected)
}

// Select makes conversationID active and reloads its history. Membership in
// the known list is not checked; an unknown id fails at the transport.
func (s *SessionStore) Select(ctx context.Context, conversationID domain.ConversationID) error {
	s.state.update(func(d *stateData) {
		d.selectConversation(conversationID)
	})

	return s.LoadMessages(ctx, conversationID)
}

// Create opens a new conversation and selects the id the platform returned.
func (s *SessionStore) Create(ctx context.Context, agentID domain.AgentID) error {
	conversationID, err := s.conversations.CreateConversation(ctx, agentID)
	if err != nil {
		return s.failLoad("create conversation", err)
	}

	s.logger.Debug().
		Str("agent_id", string(agentID)).
		Str("conversation_id", string(conversationID)).
		Msg("conversation created")

	if err := s.loadConversations(ctx, agentID, false); err != nil {
		return err
	}

	return s.Select(ctx, conversationID)
}

// Remove deletes a conversation. A selected conversation is cleared from view
// before the list is reloaded, and the reload does not pick a new default.
func (s *SessionStore) Remove(ctx context.Context, conversationID domain.ConversationID) error {
	var agentID domain.AgentID
	s.state.read(func(d *stateData) {
		agentID = d.agentID
	})

	if err := s.conversations.DeleteConversation(ctx, agentID, conversationID); err != nil {
		return s.failLoad("delete conversation", err)
	}

	s.state.update(func(d *stateData) {
		if d.selectedID == conversationID {
			d.clearSelection()
		}
	})

	s.logger.Debug().Str("conversation_id", string(conversationID)).Msg("conversation removed")

	return s.loadConversations(ctx, agentID, false)
}

// LoadMessages replaces the history of conversationID wholesale. A result that
// arrives after the selection moved on is dropped.
func (s *SessionStore) LoadMessages(ctx context.Context, conversationID domain.ConversationID) error {
	var tag loadTag
	s.state.read(func(d *stateData) {
		tag = d.currentLoadTag(conversationID)
	})

	messages, err := s.conversations.ListMessages(ctx, conversationID)
	if err != nil {
		loadErr := &domain.LoadError{Op: "list messages", Err: err}
		stale := false
		s.state.update(func(d *stateData) {
			if !d.isCurrentLoad(tag) {
				stale = true
				return
			}
			d.pageError = noticeFrom(err)
		})
		s.logger.Warn().
			Err(err).
			Str("conversation_id", string(conversationID)).
			Bool("stale", stale).
			Msg("message history load failed")
		return loadErr
	}

	stale := false
	s.state.update(func(d *stateData) {
		if !d.isCurrentLoad(tag) {
			stale = true
			return
		}
		d.replaceHistory(messages)
	})
	if stale {
		s.logger.Debug().Str("conversation_id", string(conversationID)).Msg("discarding stale message history")
		return nil
	}

	s.logger.Debug().
		Str("conversation_id", string(conversationID)).
		Int("count", len(messages)).
		Msg("message history loaded")

	return nil
}

func (s *SessionStore) failLoad(op string, err error) error {
	s.state.update(func(d *stateData) {
		d.pageError = noticeFrom(err)
	})
	s.logger.Warn().Err(err).Str("op", op).Msg("load failed")

	return &domain.LoadError{Op: op, Err: err}
}

func (s *SessionStore) failAgentLoad(epoch uint64, op string, err error) error {
	s.state.update(func(d *stateData) {
		if d.agentEpoch == epoch {
			d.pageError = noticeFrom(err)
		}
	})
	s.logger.Warn().Err(err).Str("op", op).Msg("load failed")

	return &domain.LoadError{Op: op, Err: err}
}
