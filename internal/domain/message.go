package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a conversation history. Emotion, Favorability,
// Name and Mind are only ever set on assistant messages.
type Message struct {
	Role         Role      `json:"role" yaml:"role"`
	Content      string    `json:"content" yaml:"content"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
	Emotion      string    `json:"emotion,omitempty" yaml:"emotion,omitempty"`
	Favorability *int      `json:"favorability,omitempty" yaml:"favorability,omitempty"`
	Name         string    `json:"name,omitempty" yaml:"name,omitempty"`
	Mind         string    `json:"mind,omitempty" yaml:"mind,omitempty"`
}

// Reply is the agent side of a turn as returned by the platform.
type Reply struct {
	Content      string `json:"content"`
	Emotion      string `json:"emotion,omitempty"`
	Favorability *int   `json:"favorability,omitempty"`
	Name         string `json:"name,omitempty"`
	Mind         string `json:"mind,omitempty"`
}

func NewUserMessage(content string, at time.Time) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: at}
}

func (r Reply) Message(at time.Time) Message {
	return Message{
		Role:         RoleAssistant,
		Content:      r.Content,
		Timestamp:    at,
		Emotion:      r.Emotion,
		Favorability: r.Favorability,
		Name:         r.Name,
		Mind:         r.Mind,
	}
}
