package application

import (
	"sync"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/google/uuid"
)

// Notice is a dismissible error surfaced to the presentation layer.
type Notice struct {
	Message string
	Status  int
}

func noticeFrom(err error) *Notice {
	apiErr := domain.AsAPIError(err)
	return &Notice{Message: apiErr.Message, Status: apiErr.Status}
}

// Snapshot is a read-only copy of the session state. Its slices are never
// shared with the live state.
type Snapshot struct {
	Version       uint64
	AgentID       domain.AgentID
	Agent         *domain.Agent
	Conversations []domain.Conversation
	SelectedID    domain.ConversationID
	Messages      []domain.Message
	Persona       domain.PersonaSnapshot
	Draft         string
	Pending       bool
	PageError     *Notice
	SendError     *Notice
}

func (s Snapshot) Selected() (domain.Conversation, bool) {
	for _, conversation := range s.Conversations {
		if conversation.ID == s.SelectedID {
			return conversation, true
		}
	}

	return domain.Conversation{}, false
}

// State is the single mutable object shared by the session store and the turn
// controller. The mutex only protects memory; turn ordering is enforced by
// the in-flight set, not by holding locks across transport calls.
type State struct {
	mu          sync.Mutex
	notifyMu    sync.Mutex
	version     uint64
	data        stateData
	subscribers map[string]func(Snapshot)
}

type stateData struct {
	agentID        domain.AgentID
	agent          *domain.Agent
	agentEpoch     uint64
	conversations  []domain.Conversation
	selectedID     domain.ConversationID
	selectionSeq   uint64
	historyVersion uint64
	messages       []domain.Message
	persona        PersonaTracker
	draft          string
	inFlight       map[domain.ConversationID]struct{}
	pageError      *Notice
	sendError      *Notice
}

// turnTag captures which history a turn mutated so its completion can tell
// whether the optimistic message is still the last one in the live list.
type turnTag struct {
	conversationID domain.ConversationID
	selectionSeq   uint64
	historyVersion uint64
	length         int
}

// loadTag identifies the selection a history load was issued for.
type loadTag struct {
	conversationID domain.ConversationID
	selectionSeq   uint64
}

func NewState() *State {
	return &State{
		data:        stateData{inFlight: map[domain.ConversationID]struct{}{}},
		subscribers: map[string]func(Snapshot){},
	}
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.snapshot(s.version)
}

// Subscribe registers fn to receive a snapshot after every mutation, in
// mutation order. fn must not call mutating State methods synchronously.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := uuid.NewString()

	s.mu.Lock()
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *State) SetDraft(text string) {
	s.update(func(d *stateData) {
		d.draft = text
	})
}

// RestoreDraft puts text back into the draft unless something was typed
// since.
func (s *State) RestoreDraft(text string) {
	s.update(func(d *stateData) {
		if d.draft == "" {
			d.draft = text
		}
	})
}

func (s *State) DismissPageError() {
	s.update(func(d *stateData) {
		d.pageError = nil
	})
}

func (s *State) DismissSendError() {
	s.update(func(d *stateData) {
		d.sendError = nil
	})
}

func (s *State) read(fn func(d *stateData)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.data)
}

func (s *State) update(fn func(d *stateData)) {
	s.mu.Lock()
	fn(&s.data)
	s.version++
	snapshot := s.data.snapshot(s.version)
	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for _, subscriber := range s.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	s.notifyMu.Lock()
	s.mu.Unlock()

	defer s.notifyMu.Unlock()
	for _, subscriber := range subscribers {
		subscriber(snapshot)
	}
}

func (d *stateData) snapshot(version uint64) Snapshot {
	var agent *domain.Agent
	if d.agent != nil {
		copied := *d.agent
		agent = &copied
	}

	_, pending := d.inFlight[d.selectedID]

	return Snapshot{
		Version:       version,
		AgentID:       d.agentID,
		Agent:         agent,
		Conversations: append([]domain.Conversation(nil), d.conversations...),
		SelectedID:    d.selectedID,
		Messages:      append([]domain.Message(nil), d.messages...),
		Persona:       d.persona.Current(),
		Draft:         d.draft,
		Pending:       pending && d.selectedID != "",
		PageError:     d.pageError,
		SendError:     d.sendError,
	}
}

// requestAgent starts an agent load and returns the generation its result
// must still match to be applied. Nothing visible changes until then.
func (d *stateData) requestAgent() uint64 {
	d.agentEpoch++
	return d.agentEpoch
}

// bindAgent switches the state to agentID, dropping everything that belonged
// to the previous agent.
func (d *stateData) bindAgent(agentID domain.AgentID) {
	d.agentID = agentID
	d.agent = nil
	d.conversations = nil
	d.persona.Reset(domain.PersonaSnapshot{})
	d.clearSelection()
}

// applyConversations installs a fresh list and, when asked and nothing is
// selected, selects its first entry. It returns the newly selected id.
func (d *stateData) applyConversations(conversations []domain.Conversation, selectDefault bool) domain.ConversationID {
	d.conversations = conversations
	if !selectDefault || d.selectedID != "" || len(conversations) == 0 {
		return ""
	}

	d.selectConversation(conversations[0].ID)
	return conversations[0].ID
}

func (d *stateData) selectConversation(id domain.ConversationID) {
	if d.selectedID != id {
		d.selectedID = id
		d.messages = nil
		d.historyVersion++
		d.draft = ""
	}
	d.selectionSeq++
}

func (d *stateData) clearSelection() {
	d.selectedID = ""
	d.selectionSeq++
	d.historyVersion++
	d.messages = nil
	d.draft = ""
	d.persona.Recompute(nil)
}

func (d *stateData) currentLoadTag(id domain.ConversationID) loadTag {
	return loadTag{conversationID: id, selectionSeq: d.selectionSeq}
}

func (d *stateData) isCurrentLoad(tag loadTag) bool {
	return d.selectedID == tag.conversationID && d.selectionSeq == tag.selectionSeq
}

func (d *stateData) replaceHistory(messages []domain.Message) {
	d.messages = append([]domain.Message(nil), messages...)
	d.historyVersion++
	d.persona.Recompute(d.messages)
}

func (d *stateData) turnInFlight(id domain.ConversationID) bool {
	_, ok := d.inFlight[id]
	return ok
}

func (d *stateData) beginTurn(id domain.ConversationID, optimistic domain.Message) turnTag {
	tag := turnTag{
		conversationID: id,
		selectionSeq:   d.selectionSeq,
		historyVersion: d.historyVersion,
		length:         len(d.messages),
	}

	d.inFlight[id] = struct{}{}
	d.draft = ""
	d.sendError = nil
	d.messages = append(d.messages, optimistic)

	return tag
}

func (d *stateData) endTurn(tag turnTag) {
	delete(d.inFlight, tag.conversationID)
}

// ownsTurn reports whether the live list is still the one the turn appended
// its optimistic message to.
func (d *stateData) ownsTurn(tag turnTag) bool {
	return d.selectedID == tag.conversationID &&
		d.selectionSeq == tag.selectionSeq &&
		d.historyVersion == tag.historyVersion &&
		len(d.messages) == tag.length+1
}
