package fsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// Action is a hook run at a fixed point of a transition.
	// A non-nil error stops the remaining steps of that transition.
	Action func() error

	// Announcer is a transition-specific hook that receives the change being made.
	// It runs after the general change notification and before the After hook.
	Announcer[T comparable] func(change Change[T]) error

	// Listener receives every change of a machine's state.
	Listener[T comparable] func(change Change[T])

	// HookOption attaches a hook to a transition during Register.
	HookOption[T comparable] func(*hooks[T])

	// Option configures an FSM during New.
	Option[T comparable] func(*FSM[T])

	// Transition identifies a registered edge of the table by its (From, To) pair.
	// Two transitions are equal iff both states are equal.
	Transition[T comparable] struct {
		From T `json:"from" yaml:"from"`
		To   T `json:"to" yaml:"to"`
	}

	// Change is the payload of a change notification.
	Change[T comparable] struct {
		From T `json:"from"`
		To   T `json:"to"`
	}

	// hooks holds the optional actions bound to one transition.
	hooks[T comparable] struct {
		before   Action
		after    Action
		announce Announcer[T]
	}

	// FSM is a transition-table driven state machine over any comparable state type.
	// It is not safe for concurrent use; see SyncFSM.
	FSM[T comparable] struct {
		current     T
		previous    T
		transitions g.Map[Transition[T], hooks[T]]
		changed     *Notifier[Change[T]]
		logger      Logger
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// Hooks run while the lock is held, so a hook must not call back into the same SyncFSM.
	SyncFSM[T comparable] struct {
		fsm *FSM[T]
		mu  sync.RWMutex
	}
)

// Before runs fn while the machine is still in the old state.
// An error from fn rejects the transition without changing state.
func Before[T comparable](fn Action) HookOption[T] {
	return func(h *hooks[T]) { h.before = fn }
}

// After runs fn once the state has changed and both notifications were delivered.
func After[T comparable](fn Action) HookOption[T] {
	return func(h *hooks[T]) { h.after = fn }
}

// Announce runs fn with the change right after the general change notification.
func Announce[T comparable](fn Announcer[T]) HookOption[T] {
	return func(h *hooks[T]) { h.announce = fn }
}

// WithLogger sets the sink for diagnostics about duplicate, missing and rejected transitions.
func WithLogger[T comparable](l Logger) Option[T] {
	return func(f *FSM[T]) {
		if l != nil {
			f.logger = l
		}
	}
}
