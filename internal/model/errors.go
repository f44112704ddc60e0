package model

import (
	"fmt"
	"strings"
)

// Error kinds surfaced by the lifecycle gateway. Contract errors travel as
// opaque strings over the ledger network; ClassifyContractError maps them back
// into these kinds so callers can branch with errors.As.

// ValidationError reports missing or malformed required input. Caller's
// fault; never worth retrying.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports an attempt to register a unit id that already exists.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// NewConflictError builds the canonical duplicate-registration message.
func NewConflictError(unitID string) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf("unit %s already exists", unitID)}
}

// NotFoundError reports a referenced unit that is absent from the ledger.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// NewNotFoundError builds the canonical missing-unit message.
func NewNotFoundError(unitID string) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf("unit %s not found", unitID)}
}

// InvalidTransitionError reports a transition attempted from a state that does
// not permit it. The message always names the unit's current state.
type InvalidTransitionError struct {
	Msg          string
	UnitID       string
	CurrentState State
}

func (e *InvalidTransitionError) Error() string { return e.Msg }

// NewInvalidTransitionError builds the canonical wrong-state message, e.g.
// "unit u1 cannot be shipped from state SHIPPED". A non-empty requirement is
// appended as "; must be VERIFIED".
func NewInvalidTransitionError(unitID, verb string, current State, requirement string) *InvalidTransitionError {
	msg := fmt.Sprintf("unit %s cannot be %s from state %s", unitID, verb, current)
	if requirement != "" {
		msg += "; must be " + requirement
	}
	return &InvalidTransitionError{Msg: msg, UnitID: unitID, CurrentState: current}
}

// LedgerUnavailableError reports a transport-level failure reaching the
// ledger network. Safe to retry by the caller.
type LedgerUnavailableError struct {
	Op  string
	Err error
}

func (e *LedgerUnavailableError) Error() string {
	return fmt.Sprintf("ledger unavailable during %s: %v", e.Op, e.Err)
}

func (e *LedgerUnavailableError) Unwrap() error { return e.Err }

// CacheWriteError reports a failed projection into the Local Cache Store. It
// is logged and counted, never surfaced: the ledger write it follows is
// already durably committed.
type CacheWriteError struct {
	Op  string
	Err error
}

func (e *CacheWriteError) Error() string {
	return fmt.Sprintf("cache write failed during %s: %v", e.Op, e.Err)
}

func (e *CacheWriteError) Unwrap() error { return e.Err }

// ClassifyContractError converts an error message propagated verbatim from the
// ledger contract into a typed error kind. The message itself is preserved so
// state-naming diagnostics reach the caller untouched.
func ClassifyContractError(msg string) error {
	switch {
	case strings.Contains(msg, "already exists"):
		return &ConflictError{Msg: msg}
	case strings.Contains(msg, "not found"):
		return &NotFoundError{Msg: msg}
	case strings.Contains(msg, "from state"):
		return &InvalidTransitionError{Msg: msg}
	case strings.Contains(msg, "required") || strings.Contains(msg, "must be"):
		return &ValidationError{Msg: msg}
	default:
		return fmt.Errorf("contract error: %s", msg)
	}
}
