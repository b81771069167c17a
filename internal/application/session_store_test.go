package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/ports/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mockAnyContext() interface{} {
	return mock.Anything
}

func intPtr(v int) *int {
	return &v
}

func newTestStore(t *testing.T) (*SessionStore, *mocks.MockConversationTransport, *mocks.MockAgentTransport) {
	t.Helper()

	conversations := mocks.NewMockConversationTransport(t)
	agents := mocks.NewMockAgentTransport(t)
	store := NewSessionStore(conversations, agents, NewState(), zerolog.Nop())

	return store, conversations, agents
}

func openTestAgent(t *testing.T, store *SessionStore, conversations *mocks.MockConversationTransport, agents *mocks.MockAgentTransport, history []domain.Message) {
	t.Helper()

	agents.EXPECT().GetAgent(mockAnyContext(), domain.AgentID("agent-1")).
		Return(domain.Agent{ID: "agent-1", Name: "Mika", Emotion: "neutral", Favorability: 50}, nil).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return([]domain.Conversation{{ID: "c-1", Title: "first"}, {ID: "c-2"}}, nil).Once()
	conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-1")).
		Return(history, nil).Once()

	require.NoError(t, store.OpenAgent(context.Background(), "agent-1"))
}

func TestSessionStoreOpenAgentSelectsFirstConversation(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	history := []domain.Message{
		{Role: domain.RoleUser, Content: "hey", Timestamp: testTime},
		{Role: domain.RoleAssistant, Content: "hi", Emotion: "happy", Timestamp: testTime},
	}

	openTestAgent(t, store, conversations, agents, history)

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.AgentID("agent-1"), snapshot.AgentID)
	require.NotNil(t, snapshot.Agent)
	assert.Equal(t, "Mika", snapshot.Agent.Name)
	assert.Equal(t, domain.ConversationID("c-1"), snapshot.SelectedID)
	assert.Equal(t, domain.AgentID("agent-1"), snapshot.Conversations[0].AgentID)
	assert.Empty(t, cmp.Diff(history, snapshot.Messages))
	assert.Equal(t, domain.PersonaSnapshot{Emotion: "happy", Favorability: 50}, snapshot.Persona)
	assert.Nil(t, snapshot.PageError)
}

func TestSessionStoreLoadConversationsKeepsExistingSelection(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, nil)

	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return([]domain.Conversation{{ID: "c-0"}, {ID: "c-1"}, {ID: "c-2"}}, nil).Once()

	require.NoError(t, store.LoadConversations(context.Background(), "agent-1"))

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-1"), snapshot.SelectedID)
	assert.Len(t, snapshot.Conversations, 3)
}

func TestSessionStoreLoadConversationsEmptyListLeavesSelectionEmpty(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	agents.EXPECT().GetAgent(mockAnyContext(), domain.AgentID("agent-1")).
		Return(domain.Agent{ID: "agent-1", Name: "Mika", Emotion: "shy", Favorability: 30}, nil).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return([]domain.Conversation{}, nil).Once()

	require.NoError(t, store.LoadConversations(context.Background(), "agent-1"))

	snapshot := store.State().Snapshot()
	assert.Empty(t, snapshot.SelectedID)
	assert.Empty(t, snapshot.Messages)
	require.NotNil(t, snapshot.Agent)
	assert.Equal(t, domain.PersonaSnapshot{Emotion: "shy", Favorability: 30}, snapshot.Persona)
}

func TestSessionStoreLoadFailureKeepsExistingState(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	history := []domain.Message{{Role: domain.RoleUser, Content: "hey", Timestamp: testTime}}
	openTestAgent(t, store, conversations, agents, history)
	before := store.State().Snapshot()

	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return(nil, &domain.APIError{Message: "upstream down", Status: 502}).Once()

	err := store.LoadConversations(context.Background(), "agent-1")
	require.Error(t, err)

	var loadErr *domain.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "list conversations", loadErr.Op)

	after := store.State().Snapshot()
	assert.Equal(t, before.Conversations, after.Conversations)
	assert.Equal(t, before.SelectedID, after.SelectedID)
	assert.Empty(t, cmp.Diff(before.Messages, after.Messages))
	require.NotNil(t, after.PageError)
	assert.Equal(t, Notice{Message: "upstream down", Status: 502}, *after.PageError)
	assert.Nil(t, after.SendError)

	store.State().DismissPageError()
	assert.Nil(t, store.State().Snapshot().PageError)
}

func TestSessionStoreSelectReplacesHistory(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, []domain.Message{
		{Role: domain.RoleAssistant, Content: "hi", Emotion: "happy", Favorability: intPtr(70), Timestamp: testTime},
	})
	store.State().SetDraft("half typed")

	second := []domain.Message{{Role: domain.RoleUser, Content: "other", Timestamp: testTime}}
	conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-2")).Return(second, nil).Once()

	require.NoError(t, store.Select(context.Background(), "c-2"))

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-2"), snapshot.SelectedID)
	assert.Empty(t, cmp.Diff(second, snapshot.Messages))
	assert.Equal(t, domain.PersonaSnapshot{Emotion: "neutral", Favorability: 50}, snapshot.Persona)
	assert.Empty(t, snapshot.Draft)
}

func TestSessionStoreDiscardsStaleMessageLoad(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	staleHistory := []domain.Message{{Role: domain.RoleUser, Content: "from a", Timestamp: testTime}}
	freshHistory := []domain.Message{{Role: domain.RoleUser, Content: "from b", Timestamp: testTime}}

	conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-a")).
		RunAndReturn(func(context.Context, domain.ConversationID) ([]domain.Message, error) {
			close(started)
			<-release
			return staleHistory, nil
		}).Once()
	conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-b")).
		Return(freshHistory, nil).Once()

	var wg sync.WaitGroup
	var staleErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleErr = store.Select(context.Background(), "c-a")
	}()

	<-started
	require.NoError(t, store.Select(context.Background(), "c-b"))
	close(release)
	wg.Wait()

	require.NoError(t, staleErr)
	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-b"), snapshot.SelectedID)
	assert.Empty(t, cmp.Diff(freshHistory, snapshot.Messages))
}

func TestSessionStoreStaleLoadFailureRaisesNoNotice(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-a")).
		RunAndReturn(func(context.Context, domain.ConversationID) ([]domain.Message, error) {
			close(started)
			<-release
			return nil, errors.New("boom")
		}).Once()
	conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-b")).
		Return([]domain.Message{}, nil).Once()

	errCh := make(chan error, 1)
	go func() {
		errCh <- store.Select(context.Background(), "c-a")
	}()

	<-started
	require.NoError(t, store.Select(context.Background(), "c-b"))
	close(release)

	require.Error(t, <-errCh)
	assert.Nil(t, store.State().Snapshot().PageError)
}

func TestSessionStoreCreateSelectsReturnedConversation(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, nil)

	conversations.EXPECT().CreateConversation(mockAnyContext(), domain.AgentID("agent-1")).
		Return(domain.ConversationID("c-9"), nil).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return([]domain.Conversation{{ID: "c-1"}, {ID: "c-2"}, {ID: "c-9"}}, nil).Once()
	conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-9")).
		Return([]domain.Message{}, nil).Once()

	require.NoError(t, store.Create(context.Background(), "agent-1"))

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-9"), snapshot.SelectedID)
	assert.Len(t, snapshot.Conversations, 3)
	assert.Empty(t, snapshot.Messages)
}

func TestSessionStoreCreateFailureRaisesPageNotice(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, nil)

	conversations.EXPECT().CreateConversation(mockAnyContext(), domain.AgentID("agent-1")).
		Return(domain.ConversationID(""), &domain.APIError{Message: "Unauthorized", Status: 401}).Once()

	err := store.Create(context.Background(), "agent-1")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-1"), snapshot.SelectedID)
	require.NotNil(t, snapshot.PageError)
	assert.Equal(t, 401, snapshot.PageError.Status)
}

func TestSessionStoreRemoveSelectedClearsView(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, []domain.Message{
		{Role: domain.RoleUser, Content: "hey", Timestamp: testTime},
	})

	conversations.EXPECT().DeleteConversation(mockAnyContext(), domain.AgentID("agent-1"), domain.ConversationID("c-1")).
		Return(nil).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return([]domain.Conversation{{ID: "c-2"}}, nil).Once()

	require.NoError(t, store.Remove(context.Background(), "c-1"))

	snapshot := store.State().Snapshot()
	assert.Empty(t, snapshot.SelectedID)
	assert.Empty(t, snapshot.Messages)
	assert.Equal(t, []domain.Conversation{{ID: "c-2", AgentID: "agent-1"}}, snapshot.Conversations)
}

func TestSessionStoreRemoveOtherKeepsView(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	history := []domain.Message{{Role: domain.RoleUser, Content: "hey", Timestamp: testTime}}
	openTestAgent(t, store, conversations, agents, history)

	conversations.EXPECT().DeleteConversation(mockAnyContext(), domain.AgentID("agent-1"), domain.ConversationID("c-2")).
		Return(nil).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return([]domain.Conversation{{ID: "c-1"}}, nil).Once()

	require.NoError(t, store.Remove(context.Background(), "c-2"))

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-1"), snapshot.SelectedID)
	assert.Empty(t, cmp.Diff(history, snapshot.Messages))
}

func TestSessionStoreRemoveFailureKeepsSelection(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, nil)

	conversations.EXPECT().DeleteConversation(mockAnyContext(), domain.AgentID("agent-1"), domain.ConversationID("c-1")).
		Return(errors.New("connection refused")).Once()

	require.Error(t, store.Remove(context.Background(), "c-1"))

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-1"), snapshot.SelectedID)
	require.NotNil(t, snapshot.PageError)
	assert.Equal(t, 500, snapshot.PageError.Status)
}

func TestSessionStoreOpenAgentSwitchResetsState(t *testing.T) {
	store, conversations, agents := newTestStore(t)
	openTestAgent(t, store, conversations, agents, []domain.Message{
		{Role: domain.RoleAssistant, Content: "hi", Emotion: "happy", Timestamp: testTime},
	})

	agents.EXPECT().GetAgent(mockAnyContext(), domain.AgentID("agent-2")).
		Return(domain.Agent{ID: "agent-2", Emotion: "calm", Favorability: 10}, nil).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-2")).
		Return([]domain.Conversation{}, nil).Once()

	require.NoError(t, store.OpenAgent(context.Background(), "agent-2"))

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.AgentID("agent-2"), snapshot.AgentID)
	assert.Empty(t, snapshot.Conversations)
	assert.Empty(t, snapshot.SelectedID)
	assert.Empty(t, snapshot.Messages)
	assert.Equal(t, domain.PersonaSnapshot{Emotion: "calm", Favorability: 10}, snapshot.Persona)
}

func TestSessionStoreFailedAgentSwitchKeepsPreviousAgent(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		open   func(store *SessionStore) error
		expect func(conversations *mocks.MockConversationTransport, agents *mocks.MockAgentTransport)
	}{
		{
			name: "agent lookup fails",
			op:   "get agent",
			open: func(store *SessionStore) error {
				return store.OpenAgent(context.Background(), "agent-2")
			},
			expect: func(_ *mocks.MockConversationTransport, agents *mocks.MockAgentTransport) {
				agents.EXPECT().GetAgent(mockAnyContext(), domain.AgentID("agent-2")).
					Return(domain.Agent{}, &domain.APIError{Message: "agent not found", Status: 404}).Once()
			},
		},
		{
			name: "conversation list fails",
			op:   "list conversations",
			open: func(store *SessionStore) error {
				return store.LoadConversations(context.Background(), "agent-2")
			},
			expect: func(conversations *mocks.MockConversationTransport, agents *mocks.MockAgentTransport) {
				agents.EXPECT().GetAgent(mockAnyContext(), domain.AgentID("agent-2")).
					Return(domain.Agent{ID: "agent-2", Emotion: "calm", Favorability: 10}, nil).Once()
				conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-2")).
					Return(nil, &domain.APIError{Message: "upstream down", Status: 502}).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, conversations, agents := newTestStore(t)
			openTestAgent(t, store, conversations, agents, []domain.Message{
				{Role: domain.RoleAssistant, Content: "hi", Emotion: "happy", Timestamp: testTime},
			})
			before := store.State().Snapshot()

			tt.expect(conversations, agents)
			err := tt.open(store)

			var loadErr *domain.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.op, loadErr.Op)

			after := store.State().Snapshot()
			require.NotNil(t, after.PageError)
			after.PageError = nil
			after.Version = before.Version
			assert.Empty(t, cmp.Diff(before, after))
			assert.Equal(t, domain.PersonaSnapshot{Emotion: "happy", Favorability: 50}, after.Persona)
		})
	}
}

func TestSessionStoreStaleAgentOpenIsDiscarded(t *testing.T) {
	store, conversations, agents := newTestStore(t)

	started := make(chan struct{})
	release := make(chan struct{})
	agents.EXPECT().GetAgent(mockAnyContext(), domain.AgentID("agent-1")).
		RunAndReturn(func(context.Context, domain.AgentID) (domain.Agent, error) {
			close(started)
			<-release
			return domain.Agent{ID: "agent-1", Emotion: "happy"}, nil
		}).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-1")).
		Return([]domain.Conversation{{ID: "c-1"}}, nil).Once()
	agents.EXPECT().GetAgent(mockAnyContext(), domain.AgentID("agent-2")).
		Return(domain.Agent{ID: "agent-2", Emotion: "calm", Favorability: 10}, nil).Once()
	conversations.EXPECT().ListConversations(mockAnyContext(), domain.AgentID("agent-2")).
		Return([]domain.Conversation{}, nil).Once()

	errCh := make(chan error, 1)
	go func() {
		errCh <- store.OpenAgent(context.Background(), "agent-1")
	}()
	<-started

	require.NoError(t, store.OpenAgent(context.Background(), "agent-2"))
	close(release)
	require.NoError(t, <-errCh)

	snapshot := store.State().Snapshot()
	assert.Equal(t, domain.AgentID("agent-2"), snapshot.AgentID)
	assert.Empty(t, snapshot.Conversations)
	assert.Equal(t, domain.PersonaSnapshot{Emotion: "calm", Favorability: 10}, snapshot.Persona)
}

func TestStateSubscribersSeeMutationsInOrder(t *testing.T) {
	state := NewState()

	var versions []uint64
	var drafts []string
	unsubscribe := state.Subscribe(func(snapshot Snapshot) {
		versions = append(versions, snapshot.Version)
		drafts = append(drafts, snapshot.Draft)
	})

	state.SetDraft("a")
	state.SetDraft("ab")
	unsubscribe()
	state.SetDraft("abc")

	assert.Equal(t, []uint64{1, 2}, versions)
	assert.Equal(t, []string{"a", "ab"}, drafts)
	assert.Equal(t, "abc", state.Snapshot().Draft)
}
