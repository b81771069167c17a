package application

import "github.com/bnema/persona-chat/internal/domain"

// ProfileStatus is what whoami reports for a profile.
type ProfileStatus struct {
	Profile  domain.Profile
	LoggedIn bool
	User     *domain.User
}
