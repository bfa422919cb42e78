package fsm

import (
	"errors"
	"fmt"
)

// Stage names the point of a transition at which a hook ran.
type Stage string

const (
	StageBefore   Stage = "before"
	StageAnnounce Stage = "announce"
	StageAfter    Stage = "after"
)

// ErrUndefinedTransition is returned by Fire when no transition is registered
// from the current state to the requested one. The machine is left unchanged.
type ErrUndefinedTransition[T comparable] struct {
	From T
	To   T
}

func (e *ErrUndefinedTransition[T]) Error() string {
	return fmt.Sprintf("fsm: transition not defined: %v -> %v", e.From, e.To)
}

// ErrDuplicateTransition is returned by TryRegister when the (From, To) pair is
// already in the table. The existing hooks are kept.
type ErrDuplicateTransition[T comparable] struct {
	From T
	To   T
}

func (e *ErrDuplicateTransition[T]) Error() string {
	return fmt.Sprintf("fsm: transition already exists: %v -> %v", e.From, e.To)
}

// ErrHook is returned when a hook of a transition returns an error.
// When Stage is StageBefore the state did not change; for StageAnnounce and
// StageAfter the new state is already committed and stays in effect.
type ErrHook[T comparable] struct {
	Stage Stage
	From  T
	To    T
	// Err is the error returned by the hook.
	Err error
}

func (e *ErrHook[T]) Error() string {
	return fmt.Sprintf("fsm: %s hook of %v -> %v failed: %v", e.Stage, e.From, e.To, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package,
// allowing the use of errors.Is and errors.As to inspect the wrapped error.
func (e *ErrHook[T]) Unwrap() error { return e.Err }

// ErrUnknownState is returned when attempting to unmarshal a state that does not
// appear in any registered transition.
type ErrUnknownState[T comparable] struct {
	State T
}

func (e *ErrUnknownState[T]) Error() string {
	return fmt.Sprintf("fsm: unknown state %v encountered during unmarshaling", e.State)
}

// IsUndefined reports whether err is an ErrUndefinedTransition for state type T.
func IsUndefined[T comparable](err error) bool {
	var e *ErrUndefinedTransition[T]
	return errors.As(err, &e)
}

// IsHookError reports whether err came from a transition hook.
func IsHookError[T comparable](err error) bool {
	var e *ErrHook[T]
	return errors.As(err, &e)
}
