package domain

type PersonaSnapshot struct {
	Emotion      string `json:"emotion" yaml:"emotion"`
	Favorability int    `json:"favorability" yaml:"favorability"`
}

// DerivePersona computes the persona shown for a history. Each field comes
// from the most recent assistant message that reports it, falling back to
// the baseline when no assistant message ever did.
func DerivePersona(baseline PersonaSnapshot, history []Message) PersonaSnapshot {
	snapshot := baseline
	emotionSeen, favorabilitySeen := false, false

	for i := len(history) - 1; i >= 0 && !(emotionSeen && favorabilitySeen); i-- {
		msg := history[i]
		if msg.Role != RoleAssistant {
			continue
		}
		if !emotionSeen && msg.Emotion != "" {
			snapshot.Emotion = msg.Emotion
			emotionSeen = true
		}
		if !favorabilitySeen && msg.Favorability != nil {
			snapshot.Favorability = *msg.Favorability
			favorabilitySeen = true
		}
	}

	return snapshot
}

// Merge overlays the values a reply reports on top of s.
func (s PersonaSnapshot) Merge(reply Reply) PersonaSnapshot {
	if reply.Emotion != "" {
		s.Emotion = reply.Emotion
	}
	if reply.Favorability != nil {
		s.Favorability = *reply.Favorability
	}

	return s
}
