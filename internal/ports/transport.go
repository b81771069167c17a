package ports

import (
	"context"

	"github.com/bnema/persona-chat/internal/domain"
)

// ConversationTransport is everything the session controller needs from the
// platform. Server rejections are *domain.APIError; anything else is
// normalized with domain.AsAPIError.
type ConversationTransport interface {
	ListConversations(ctx context.Context, agentID domain.AgentID) ([]domain.Conversation, error)
	CreateConversation(ctx context.Context, agentID domain.AgentID) (domain.ConversationID, error)
	DeleteConversation(ctx context.Context, agentID domain.AgentID, conversationID domain.ConversationID) error
	ListMessages(ctx context.Context, conversationID domain.ConversationID) ([]domain.Message, error)
	SendMessage(ctx context.Context, conversationID domain.ConversationID, content string) (domain.Reply, error)
}

type AgentTransport interface {
	GetAgent(ctx context.Context, id domain.AgentID) (domain.Agent, error)
	ListAgents(ctx context.Context) ([]domain.Agent, error)
	CreateAgent(ctx context.Context, metaID domain.AgentMetaID) (domain.AgentID, error)
	DeleteAgent(ctx context.Context, id domain.AgentID) error
	ListAgentMetas(ctx context.Context) ([]domain.AgentMetaSummary, error)
	CreateAgentMeta(ctx context.Context, meta domain.AgentMeta) (domain.AgentMetaID, error)
}

type AuthTransport interface {
	HealthCheck(ctx context.Context) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
}

type UserTransport interface {
	CreateUser(ctx context.Context, name, email, password string) (domain.UserID, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CurrentUser(ctx context.Context) (domain.User, error)
	UpdateCurrentUser(ctx context.Context, update domain.UserUpdate) (domain.User, error)
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserID, update domain.UserUpdate) (domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserID) error
}

type AdminSessionTransport interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
	DeleteSession(ctx context.Context, id domain.SessionID) error
}
