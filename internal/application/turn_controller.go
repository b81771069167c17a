package application

import (
	"context"
	"strings"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/ports"
	"github.com/rs/zerolog"
)

// TurnController runs one user turn against the platform with an optimistic
// user message that is rolled back if the turn fails.
type TurnController struct {
	conversations ports.ConversationTransport
	state         *State
	clock         ports.Clock
	logger        zerolog.Logger
}

func NewTurnController(conversations ports.ConversationTransport, state *State, clock ports.Clock, logger zerolog.Logger) *TurnController {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if state == nil {
		state = NewState()
	}

	return &TurnController{
		conversations: conversations,
		state:         state,
		clock:         clock,
		logger:        logger.With().Str("component", "turn_controller").Logger(),
	}
}

// Send submits text to conversationID. Blank text or an empty selection is a
// no-op. A second send while one is in flight for the same conversation is
// rejected with domain.ErrTurnInFlight; turns are never queued or retried.
func (c *TurnController) Send(ctx context.Context, conversationID domain.ConversationID, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var (
		tag      turnTag
		skip     bool
		rejected error
	)
	c.state.update(func(d *stateData) {
		switch {
		case d.selectedID == "":
			skip = true
		case d.selectedID != conversationID:
			rejected = domain.ErrConversationNotActive
		case d.turnInFlight(conversationID):
			rejected = domain.ErrTurnInFlight
		default:
			tag = d.beginTurn(conversationID, domain.NewUserMessage(text, c.clock.Now()))
		}
	})
	if skip {
		return nil
	}
	if rejected != nil {
		return rejected
	}

	log := c.logger.With().Str("conversation_id", string(conversationID)).Logger()
	log.Debug().Int("history_length", tag.length).Msg("turn started")

	reply, err := c.conversations.SendMessage(ctx, conversationID, text)
	if err != nil {
		rolledBack := false
		c.state.update(func(d *stateData) {
			d.endTurn(tag)
			if d.ownsTurn(tag) {
				d.messages = d.messages[:tag.length]
				d.draft = text
				rolledBack = true
			}
			d.sendError = noticeFrom(err)
		})
		log.Warn().Err(err).Bool("rolled_back", rolledBack).Msg("turn failed")

		return &domain.SendError{ConversationID: conversationID, Err: err}
	}

	applied := false
	c.state.update(func(d *stateData) {
		d.endTurn(tag)
		if !d.ownsTurn(tag) {
			return
		}
		d.messages = append(d.messages, reply.Message(c.clock.Now()))
		d.persona.Apply(reply)
		d.draft = ""
		applied = true
	})
	if !applied {
		log.Debug().Msg("turn completed after its history was replaced; reply left to the next load")
		return nil
	}

	log.Debug().
		Str("emotion", reply.Emotion).
		Bool("favorability_reported", reply.Favorability != nil).
		Msg("turn completed")

	return nil
}
