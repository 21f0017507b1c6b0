package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOperationNotFound  = errors.New("operation not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownStatus      = errors.New("unknown operation status")
	ErrUnknownRole        = errors.New("unknown user role")
	ErrDuplicateCode      = errors.New("operation code already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError carries every violated input rule, not just the first.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// StateConflictError is returned when an action is illegal for the
// operation's current status, e.g. cancelling one already being collected.
type StateConflictError struct {
	Current   OperationStatus
	Requested OperationStatus
	Action    string
}

func (e *StateConflictError) Error() string {
	if e.Requested != "" {
		return fmt.Sprintf("illegal status transition %s -> %s", e.Current, e.Requested)
	}
	return fmt.Sprintf("cannot %s operation in status %s", e.Action, e.Current)
}
