package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple conditions without extra context.
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrAliasNotFound       = errors.New("domain alias not found")
	ErrSQLDatabaseNotFound = errors.New("sql database not found")
	ErrSQLUserNotFound     = errors.New("sql user not found")
	ErrResellerNotFound    = errors.New("reseller not found")
	// ErrAliasNotOrdered is returned when approving or rejecting an alias
	// that is not awaiting approval.
	ErrAliasNotOrdered = errors.New("domain alias is not awaiting approval")
	// ErrNoPendingRequests gates the "run provisioning now" action when
	// every status column is already terminal.
	ErrNoPendingRequests = errors.New("no pending provisioning request")
)

// TransitionError is returned when an administrative action is not allowed
// from the row's current status.
type TransitionError struct {
	Event   Event
	Current Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid from status %q", e.Event, e.Current)
}

// UnknownKindError is returned by debugger operations given an entity kind
// outside the sweep vocabulary.
type UnknownKindError struct {
	Kind EntityKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown entity kind %q", e.Kind)
}
