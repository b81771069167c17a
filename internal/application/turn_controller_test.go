package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/ports/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type turnFixture struct {
	store         *SessionStore
	turns         *TurnController
	conversations *mocks.MockConversationTransport
}

func newTurnFixture(t *testing.T, history []domain.Message) turnFixture {
	t.Helper()

	store, conversations, agents := newTestStore(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testTime).Maybe()
	openTestAgent(t, store, conversations, agents, history)

	return turnFixture{
		store:         store,
		turns:         NewTurnController(conversations, store.State(), clock, zerolog.Nop()),
		conversations: conversations,
	}
}

func TestTurnControllerSendSuccess(t *testing.T) {
	f := newTurnFixture(t, nil)
	f.conversations.EXPECT().SendMessage(mockAnyContext(), domain.ConversationID("c-1"), "hello").
		Return(domain.Reply{Content: "hi", Emotion: "sad", Favorability: intPtr(40), Name: "Mika"}, nil).Once()

	require.NoError(t, f.turns.Send(context.Background(), "c-1", "hello"))

	snapshot := f.store.State().Snapshot()
	require.Len(t, snapshot.Messages, 2)
	assert.Equal(t, domain.Message{Role: domain.RoleUser, Content: "hello", Timestamp: testTime}, snapshot.Messages[0])
	assert.Equal(t, domain.RoleAssistant, snapshot.Messages[1].Role)
	assert.Equal(t, "hi", snapshot.Messages[1].Content)
	assert.Equal(t, "Mika", snapshot.Messages[1].Name)
	assert.Equal(t, domain.PersonaSnapshot{Emotion: "sad", Favorability: 40}, snapshot.Persona)
	assert.Empty(t, snapshot.Draft)
	assert.False(t, snapshot.Pending)
	assert.Nil(t, snapshot.SendError)
}

func TestTurnControllerSendFailureRollsBack(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleUser, Content: "hey", Timestamp: testTime},
		{Role: domain.RoleAssistant, Content: "yo", Emotion: "happy", Timestamp: testTime},
	}
	f := newTurnFixture(t, history)
	before := f.store.State().Snapshot()

	f.conversations.EXPECT().SendMessage(mockAnyContext(), domain.ConversationID("c-1"), "hello").
		Return(domain.Reply{}, &domain.APIError{Message: "Internal Server Error", Status: 500}).Once()

	err := f.turns.Send(context.Background(), "c-1", "hello")
	require.Error(t, err)

	var sendErr *domain.SendError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, domain.ConversationID("c-1"), sendErr.ConversationID)

	after := f.store.State().Snapshot()
	assert.Len(t, after.Messages, len(before.Messages))
	assert.Empty(t, cmp.Diff(before.Messages, after.Messages))
	assert.Equal(t, "hello", after.Draft)
	require.NotNil(t, after.SendError)
	assert.Equal(t, 500, after.SendError.Status)
	assert.Nil(t, after.PageError)
	assert.False(t, after.Pending)
	assert.Equal(t, before.Persona, after.Persona)

	f.store.State().DismissSendError()
	assert.Nil(t, f.store.State().Snapshot().SendError)
}

func TestTurnControllerNetworkFailureIsStatus500(t *testing.T) {
	f := newTurnFixture(t, nil)
	f.conversations.EXPECT().SendMessage(mockAnyContext(), domain.ConversationID("c-1"), "hello").
		Return(domain.Reply{}, errors.New("dial tcp: connection refused")).Once()

	require.Error(t, f.turns.Send(context.Background(), "c-1", "hello"))

	snapshot := f.store.State().Snapshot()
	require.NotNil(t, snapshot.SendError)
	assert.Equal(t, 500, snapshot.SendError.Status)
	assert.Empty(t, snapshot.Messages)
}

func TestTurnControllerSendNoOps(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		f := newTurnFixture(t, nil)
		before := f.store.State().Snapshot()

		require.NoError(t, f.turns.Send(context.Background(), "c-1", "   \n"))
		assert.Equal(t, before.Version, f.store.State().Snapshot().Version)
	})

	t.Run("no selection", func(t *testing.T) {
		conversations := mocks.NewMockConversationTransport(t)
		turns := NewTurnController(conversations, NewState(), nil, zerolog.Nop())

		require.NoError(t, turns.Send(context.Background(), "c-1", "hello"))
	})
}

func TestTurnControllerRejectsSendToInactiveConversation(t *testing.T) {
	f := newTurnFixture(t, nil)

	err := f.turns.Send(context.Background(), "c-2", "hello")
	require.ErrorIs(t, err, domain.ErrConversationNotActive)
	assert.Empty(t, f.store.State().Snapshot().Messages)
}

func TestTurnControllerRejectsOverlappingSend(t *testing.T) {
	f := newTurnFixture(t, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.conversations.EXPECT().SendMessage(mockAnyContext(), domain.ConversationID("c-1"), "first").
		RunAndReturn(func(context.Context, domain.ConversationID, string) (domain.Reply, error) {
			close(started)
			<-release
			return domain.Reply{Content: "ok"}, nil
		}).Once()

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.turns.Send(context.Background(), "c-1", "first")
	}()
	<-started

	pending := f.store.State().Snapshot()
	assert.True(t, pending.Pending)
	require.Len(t, pending.Messages, 1)
	assert.Equal(t, "first", pending.Messages[0].Content)

	err := f.turns.Send(context.Background(), "c-1", "second")
	require.ErrorIs(t, err, domain.ErrTurnInFlight)

	close(release)
	require.NoError(t, <-errCh)

	snapshot := f.store.State().Snapshot()
	assert.False(t, snapshot.Pending)
	require.Len(t, snapshot.Messages, 2)
	assert.Equal(t, "ok", snapshot.Messages[1].Content)
}

func TestTurnControllerFailureAfterSwitchDoesNotTouchNewHistory(t *testing.T) {
	f := newTurnFixture(t, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.conversations.EXPECT().SendMessage(mockAnyContext(), domain.ConversationID("c-1"), "hello").
		RunAndReturn(func(context.Context, domain.ConversationID, string) (domain.Reply, error) {
			close(started)
			<-release
			return domain.Reply{}, errors.New("timeout")
		}).Once()
	other := []domain.Message{{Role: domain.RoleUser, Content: "elsewhere", Timestamp: testTime}}
	f.conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-2")).Return(other, nil).Once()

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.turns.Send(context.Background(), "c-1", "hello")
	}()
	<-started

	require.NoError(t, f.store.Select(context.Background(), "c-2"))
	close(release)
	require.Error(t, <-errCh)

	snapshot := f.store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-2"), snapshot.SelectedID)
	assert.Empty(t, cmp.Diff(other, snapshot.Messages))
	assert.Empty(t, snapshot.Draft)
	require.NotNil(t, snapshot.SendError)
}

func TestTurnControllerSuccessAfterSwitchLeavesNewHistoryAlone(t *testing.T) {
	f := newTurnFixture(t, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.conversations.EXPECT().SendMessage(mockAnyContext(), domain.ConversationID("c-1"), "hello").
		RunAndReturn(func(context.Context, domain.ConversationID, string) (domain.Reply, error) {
			close(started)
			<-release
			return domain.Reply{Content: "late", Emotion: "angry", Favorability: intPtr(5)}, nil
		}).Once()
	other := []domain.Message{
		{Role: domain.RoleAssistant, Content: "elsewhere", Emotion: "calm", Favorability: intPtr(80), Timestamp: testTime},
	}
	f.conversations.EXPECT().ListMessages(mockAnyContext(), domain.ConversationID("c-2")).Return(other, nil).Once()

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.turns.Send(context.Background(), "c-1", "hello")
	}()
	<-started

	require.NoError(t, f.store.Select(context.Background(), "c-2"))
	f.store.State().SetDraft("typing here")
	close(release)
	require.NoError(t, <-errCh)

	snapshot := f.store.State().Snapshot()
	assert.Equal(t, domain.ConversationID("c-2"), snapshot.SelectedID)
	assert.Empty(t, cmp.Diff(other, snapshot.Messages))
	assert.Equal(t, domain.PersonaSnapshot{Emotion: "calm", Favorability: 80}, snapshot.Persona)
	assert.Equal(t, "typing here", snapshot.Draft)
	assert.False(t, snapshot.Pending)
	assert.Nil(t, snapshot.SendError)

	f.store.State().read(func(d *stateData) {
		assert.False(t, d.turnInFlight("c-1"))
	})
}
