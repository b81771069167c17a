package domain

type AgentID string

type AgentMetaID string

type Agent struct {
	ID           AgentID `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Emotion      string  `json:"emotion" yaml:"emotion"`
	Favorability int     `json:"favorability" yaml:"favorability"`
}

// Baseline is the persona an agent shows before any turn has reported one.
func (a Agent) Baseline() PersonaSnapshot {
	return PersonaSnapshot{Emotion: a.Emotion, Favorability: a.Favorability}
}

// AgentMeta is the template an agent is instantiated from.
type AgentMeta struct {
	Name                  string `json:"name" yaml:"name"`
	Description           string `json:"description" yaml:"description"`
	CharacterDesign       string `json:"character_design" yaml:"character_design"`
	ResponseRequirement   string `json:"response_requirement" yaml:"response_requirement"`
	CharacterEmotionSplit string `json:"character_emotion_split" yaml:"character_emotion_split"`
	Model                 string `json:"model" yaml:"model"`
}

type AgentMetaSummary struct {
	ID          AgentMetaID `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
}
