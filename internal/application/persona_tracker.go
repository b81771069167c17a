package application

import "github.com/bnema/persona-chat/internal/domain"

// PersonaTracker holds the persona currently shown for the selected
// conversation. It is not safe for concurrent use; State guards it.
type PersonaTracker struct {
	baseline domain.PersonaSnapshot
	current  domain.PersonaSnapshot
}

func NewPersonaTracker(baseline domain.PersonaSnapshot) PersonaTracker {
	return PersonaTracker{baseline: baseline, current: baseline}
}

func (t *PersonaTracker) Reset(baseline domain.PersonaSnapshot) {
	t.baseline = baseline
	t.current = baseline
}

// Recompute derives the persona from a freshly loaded history.
func (t *PersonaTracker) Recompute(history []domain.Message) {
	t.current = domain.DerivePersona(t.baseline, history)
}

// Apply folds a successful reply into the current persona without rescanning.
func (t *PersonaTracker) Apply(reply domain.Reply) {
	t.current = t.current.Merge(reply)
}

func (t PersonaTracker) Baseline() domain.PersonaSnapshot {
	return t.baseline
}

func (t PersonaTracker) Current() domain.PersonaSnapshot {
	return t.current
}
