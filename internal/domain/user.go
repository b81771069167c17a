package domain

type UserID string

type User struct {
	ID    UserID `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email" yaml:"email"`
}

// UserUpdate carries optional profile changes; nil fields are left as is.
type UserUpdate struct {
	OldPassword string
	Name        *string
	Email       *string
	Password    *string
}

type SessionID string

type Session struct {
	ID     SessionID `json:"id" yaml:"id"`
	UserID UserID    `json:"user_id" yaml:"user_id"`
}
