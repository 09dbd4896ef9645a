package dashboard

import (
	"errors"
	"fmt"

	"crawler-dashboard/pkg/cli/client"
)

// Action names a user-triggered operation
type Action string

const (
	ActionFetch   Action = "fetch"
	ActionAdd     Action = "add"
	ActionRefresh Action = "refresh"
	ActionStop    Action = "stop"
	ActionDelete  Action = "delete"
	ActionShow    Action = "load"
)

// ActionError is the single error surfaced to the user when an action fails.
// ID is the URL the failure is attributed to, or 0 when it concerns no single URL.
type ActionError struct {
	Action Action
	ID     int64
	Err    error
}

func (e *ActionError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("failed to %s URL with id %d: %v", e.Action, e.ID, e.Err)
	}
	if e.Action == ActionFetch {
		return fmt.Sprintf("failed to fetch URLs: %v", e.Err)
	}
	return fmt.Sprintf("failed to %s URL: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// UserMessage is Error with the underlying cause replaced by the client's friendly text
func (e *ActionError) UserMessage() string {
	var apiErr *client.Error
	if !errors.As(e.Err, &apiErr) {
		return e.Error()
	}
	return (&ActionError{Action: e.Action, ID: e.ID, Err: errors.New(apiErr.UserMessage())}).Error()
}
