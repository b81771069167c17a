package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrSecretNotFound        = errors.New("secret not found")
	ErrNotLoggedIn           = errors.New("not logged in")
	ErrTurnInFlight          = errors.New("a message is already being sent in this conversation")
	ErrConversationNotActive = errors.New("conversation is not the active selection")
)

const unknownErrorMessage = "Unknown error occurred"

// APIError is the normalized failure shape of every transport operation.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// AsAPIError normalizes any error into an APIError. Errors that did not come
// from the platform are reported with status 500.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	message := err.Error()
	if message == "" {
		message = unknownErrorMessage
	}

	return &APIError{Message: message, Status: http.StatusInternalServerError}
}

// LoadError reports a failed listing, selection or deletion. It never
// accompanies a state mutation.
type LoadError struct {
	Op  string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SendError reports a failed turn. The optimistic user message has already
// been rolled back when it is returned.
type SendError struct {
	ConversationID ConversationID
	Err            error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send message to conversation %s: %v", e.ConversationID, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
