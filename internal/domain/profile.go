package domain

// Profile binds a platform endpoint to the credentials used against it.
type Profile struct {
	Name        string
	ServerURL   string
	Email       string
	TokenRef    string
	LastAgentID AgentID
}

func (p Profile) LoggedIn() bool {
	return p.TokenRef != ""
}
