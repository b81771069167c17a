package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Client{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Tokens:     StaticToken("token-1"),
		Logger:     zerolog.Nop(),
	}
}

func TestClientLoginPostsFormAndReturnsBodyToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/session", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "mika@example.com", r.Form.Get("email"))
		assert.Equal(t, "pw", r.Form.Get("password"))

		_, _ = w.Write([]byte("session-token-abc"))
	})

	token, err := client.Login(context.Background(), "mika@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "session-token-abc", token)
}

func TestClientSendsBearerTokenAndRequestID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get(requestIDHeader))
		assert.NoError(t, err)

		_, _ = w.Write([]byte(`[{"id":"a-1","name":"Mika","emotion":"calm","favorability":50}]`))
	})

	agents, err := client.ListAgents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Agent{{ID: "a-1", Name: "Mika", Emotion: "calm", Favorability: 50}}, agents)
}

func TestClientNormalizesServerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "json string", status: http.StatusBadRequest, body: `"数据不存在"`, message: "数据不存在"},
		{name: "json object", status: http.StatusConflict, body: `{"message":"already exists"}`, message: "already exists"},
		{name: "plain text", status: http.StatusUnauthorized, body: "Unauthorized\n", message: "Unauthorized"},
		{name: "empty body", status: http.StatusInternalServerError, body: "", message: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListConversations(context.Background(), "a-1")
			require.Error(t, err)

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClientNetworkFailureNormalizesToStatus500(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := &Client{BaseURL: server.URL, Logger: zerolog.Nop()}
	_, err := client.SendMessage(context.Background(), "c-1", "hello")
	require.Error(t, err)

	apiErr := domain.AsAPIError(err)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "send message")
}

func TestClientTokenSourceErrorStopsRequest(t *testing.T) {
	t.Parallel()

	called := false
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		called = true
	})
	client.Tokens = TokenFunc(func(context.Context) (string, error) {
		return "", domain.ErrNotLoggedIn
	})

	_, err := client.ListAgents(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	assert.False(t, called)
}

func TestClientSendMessagePostsJSONAndDecodesReply(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/conversations/c-1/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"content": "hello"}, body)

		_, _ = w.Write([]byte(`{"content":"hi","name":"Mika","emotion":"sad","favorability":40,"mind":"hmm"}`))
	})

	reply, err := client.SendMessage(context.Background(), "c-1", "hello")
	require.NoError(t, err)
	require.NotNil(t, reply.Favorability)
	assert.Equal(t, 40, *reply.Favorability)
	assert.Equal(t, "sad", reply.Emotion)
	assert.Equal(t, "hmm", reply.Mind)
	assert.Equal(t, "Mika", reply.Name)
}

func TestClientListMessagesMapsRoles(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations/c-1/messages", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"role":"user","content":"hey","timestamp":"2026-03-01T12:00:00Z"},
			{"role":"assistant","content":"hi","emotion":"happy"},
			{"role":"system","content":"ignored role"}
		]`))
	})

	messages, err := client.ListMessages(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), messages[0].Timestamp.UTC())
	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
	assert.Equal(t, "happy", messages[1].Emotion)
	assert.Nil(t, messages[1].Favorability)
	assert.Equal(t, domain.RoleUser, messages[2].Role)
}

func TestClientConversationRoutes(t *testing.T) {
	t.Parallel()

	var seen []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"conversation_id":"c-9"}`))
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"c-9"},{"id":"c-1","title":"first"}]`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	id, err := client.CreateConversation(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ConversationID("c-9"), id)

	conversations, err := client.ListConversations(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Conversation{
		{ID: "c-9", AgentID: "a-1"},
		{ID: "c-1", AgentID: "a-1", Title: "first"},
	}, conversations)

	require.NoError(t, client.DeleteConversation(context.Background(), "a-1", "c-9"))

	assert.Equal(t, []string{
		"POST /agents/a-1/conversations",
		"GET /agents/a-1/conversations",
		"DELETE /agents/a-1/conversations/c-9",
	}, seen)
}

func TestClientCreateAgentMetaSendsAllFields(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Mika", r.Form.Get("name"))
		assert.Equal(t, "cheerful", r.Form.Get("character_design"))
		assert.Equal(t, "deepseek-chat", r.Form.Get("model"))
		_, _ = w.Write([]byte(`{"agent_meta_id":"m-1"}`))
	})

	id, err := client.CreateAgentMeta(context.Background(), domain.AgentMeta{
		Name:            "Mika",
		CharacterDesign: "cheerful",
		Model:           "deepseek-chat",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AgentMetaID("m-1"), id)
}

func TestClientUpdateCurrentUserSendsOnlySetFields(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "name=Neo&old_password=old", string(raw))
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Neo","email":"neo@example.com"}`))
	})

	name := "Neo"
	user, err := client.UpdateCurrentUser(context.Background(), domain.UserUpdate{OldPassword: "old", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u-1", Name: "Neo", Email: "neo@example.com"}, user)
}

func TestClientTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })
	client.RequestTimeout = 20 * time.Millisecond

	err := client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestBuildAPIURLRejectsBadBase(t *testing.T) {
	t.Parallel()

	_, err := buildAPIURL("", "/health")
	require.Error(t, err)

	_, err = buildAPIURL("ftp://example.com", "/health")
	require.Error(t, err)

	endpoint, err := buildAPIURL("https://chat.example.com/api/", "/health")
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.com/api/health", endpoint)
}
