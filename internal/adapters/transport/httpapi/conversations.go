package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/bnema/persona-chat/internal/domain"
)

type wireMessage struct {
	Role         string     `json:"role"`
	Content      string     `json:"content"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
	Emotion      string     `json:"emotion,omitempty"`
	Favorability *int       `json:"favorability,omitempty"`
	Name         string     `json:"name,omitempty"`
	Mind         string     `json:"mind,omitempty"`
}

func (m wireMessage) toDomain() domain.Message {
	msg := domain.Message{
		Role:         domain.Role(m.Role),
		Content:      m.Content,
		Emotion:      m.Emotion,
		Favorability: m.Favorability,
		Name:         m.Name,
		Mind:         m.Mind,
	}
	if msg.Role != domain.RoleAssistant {
		msg.Role = domain.RoleUser
	}
	if m.Timestamp != nil {
		msg.Timestamp = *m.Timestamp
	}

	return msg
}

func conversationsPath(agentID domain.AgentID) string {
	return "/agents/" + segment(string(agentID)) + "/conversations"
}

func messagesPath(conversationID domain.ConversationID) string {
	return "/conversations/" + segment(string(conversationID)) + "/messages"
}

func (c *Client) ListConversations(ctx context.Context, agentID domain.AgentID) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	err := c.do(ctx, request{
		method:      http.MethodGet,
		path:        conversationsPath(agentID),
		description: "list conversations",
	}, &conversations)
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

func (c *Client) CreateConversation(ctx context.Context, agentID domain.AgentID) (domain.ConversationID, error) {
	var created struct {
		ConversationID domain.ConversationID `json:"conversation_id"`
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        conversationsPath(agentID),
		description: "create conversation",
	}, &created)
	if err != nil {
		return "", err
	}

	return created.ConversationID, nil
}

func (c *Client) GetConversation(ctx context.Context, agentID domain.AgentID, conversationID domain.ConversationID) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := c.do(ctx, request{
		method:      http.MethodGet,
		path:        conversationsPath(agentID) + "/" + segment(string(conversationID)),
		description: "get conversation",
	}, &conversation)
	if err != nil {
		return domain.Conversation{}, err
	}
	if conversation.AgentID == "" {
		conversation.AgentID = agentID
	}

	return conversation, nil
}

func (c *Client) DeleteConversation(ctx context.Context, agentID domain.AgentID, conversationID domain.ConversationID) error {
	return c.do(ctx, request{
		method:      http.MethodDelete,
		path:        conversationsPath(agentID) + "/" + segment(string(conversationID)),
		description: "delete conversation",
	}, nil)
}

func (c *Client) ListMessages(ctx context.Context, conversationID domain.ConversationID) ([]domain.Message, error) {
	var wire []wireMessage
	err := c.do(ctx, request{
		method:      http.MethodGet,
		path:        messagesPath(conversationID),
		description: "list messages",
	}, &wire)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(wire))
	for _, msg := range wire {
		messages = append(messages, msg.toDomain())
	}

	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID domain.ConversationID, content string) (domain.Reply, error) {
	var reply domain.Reply
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        messagesPath(conversationID),
		jsonBody:    map[string]string{"content": content},
		description: "send message",
	}, &reply)
	if err != nil {
		return domain.Reply{}, err
	}

	return reply, nil
}
