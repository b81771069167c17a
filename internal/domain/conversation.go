package domain

type ConversationID string

type Conversation struct {
	ID      ConversationID `json:"id" yaml:"id"`
	AgentID AgentID        `json:"agent_id,omitempty" yaml:"agent_id,omitempty"`
	Title   string         `json:"title,omitempty" yaml:"title,omitempty"`
}

const untitledConversation = "New conversation"

func (c Conversation) DisplayTitle() string {
	if c.Title == "" {
		return untitledConversation
	}

	return c.Title
}
