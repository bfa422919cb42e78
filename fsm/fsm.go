// Package fsm provides a generic, transition-table driven finite state machine.
// Legal moves are registered as (from, to) pairs, each with optional Before,
// Announce and After hooks, and every successful move is broadcast to change
// listeners. It is built with types and utilities from the github.com/enetx/g library.
package fsm

import (
	"fmt"

	"github.com/enetx/g"
)

// New creates an FSM whose current and previous state are initial.
// The table starts empty; nothing is reachable until transitions are registered.
func New[T comparable](initial T, opts ...Option[T]) *FSM[T] {
	f := &FSM[T]{
		current:     initial,
		previous:    initial,
		transitions: g.NewMap[Transition[T], hooks[T]](),
		changed:     NewNotifier[Change[T]](),
		logger:      defaultLogger(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Current returns the FSM's current state.
func (f *FSM[T]) Current() T { return f.current }

// Previous returns the state the FSM was in before the most recent successful
// transition, or the initial state if there has been none.
func (f *FSM[T]) Previous() T { return f.previous }

// SetState sets the current state manually, without running hooks or notifying
// listeners. The previous state is left as is.
func (f *FSM[T]) SetState(s T) { f.current = s }

// Register adds the transition from -> to with the given hooks.
// Registering a pair that already exists logs a warning and keeps the first
// registration's hooks.
func (f *FSM[T]) Register(from, to T, opts ...HookOption[T]) *FSM[T] {
	_ = f.TryRegister(from, to, opts...)
	return f
}

// TryRegister is Register with an explicit result: it returns an
// *ErrDuplicateTransition when the pair is already in the table.
func (f *FSM[T]) TryRegister(from, to T, opts ...HookOption[T]) error {
	key := Transition[T]{From: from, To: to}

	if f.transitions.Contains(key) {
		f.logger.Warn("fsm: transition already exists", "from", fmt.Sprint(from), "to", fmt.Sprint(to))
		return &ErrDuplicateTransition[T]{From: from, To: to}
	}

	var h hooks[T]
	for _, opt := range opts {
		opt(&h)
	}

	f.transitions[key] = h

	return nil
}

// Remove deletes the transition from -> to. It reports whether the pair was
// registered; a missing pair is logged and otherwise ignored.
func (f *FSM[T]) Remove(from, to T) bool {
	key := Transition[T]{From: from, To: to}

	if !f.transitions.Contains(key) {
		f.logger.Warn("fsm: transition not found", "from", fmt.Sprint(from), "to", fmt.Sprint(to))
		return false
	}

	delete(f.transitions, key)

	return true
}

// Has reports whether the transition from -> to is registered.
func (f *FSM[T]) Has(from, to T) bool {
	return f.transitions.Contains(Transition[T]{From: from, To: to})
}

// Can reports whether Fire(to) would find a transition from the current state.
func (f *FSM[T]) Can(to T) bool { return f.Has(f.current, to) }

// Fire attempts to move the FSM to the target state.
//
// If no transition from the current state to target is registered, a warning is
// logged and an *ErrUndefinedTransition is returned; nothing changes.
// Otherwise the steps run in this order:
//
//  1. the Before hook, still in the old state;
//  2. previous = current, current = target;
//  3. the change notification to every listener;
//  4. the Announce hook;
//  5. the After hook.
//
// A hook error stops the remaining steps and is returned wrapped in *ErrHook.
// The state change of step 2 is not rolled back. Panics in hooks are not recovered.
func (f *FSM[T]) Fire(target T) error {
	from := f.current
	key := Transition[T]{From: from, To: target}

	h, ok := f.transitions[key]
	if !ok {
		f.logger.Warn("fsm: transition not defined", "from", fmt.Sprint(from), "to", fmt.Sprint(target))
		return &ErrUndefinedTransition[T]{From: from, To: target}
	}

	if h.before != nil {
		if err := h.before(); err != nil {
			return &ErrHook[T]{Stage: StageBefore, From: from, To: target, Err: err}
		}
	}

	f.previous = from
	f.current = target

	change := Change[T]{From: from, To: target}
	f.changed.Emit(change)

	if h.announce != nil {
		if err := h.announce(change); err != nil {
			return &ErrHook[T]{Stage: StageAnnounce, From: from, To: target, Err: err}
		}
	}

	if h.after != nil {
		if err := h.after(); err != nil {
			return &ErrHook[T]{Stage: StageAfter, From: from, To: target, Err: err}
		}
	}

	return nil
}

// Subscribe registers a change listener. Listeners run synchronously inside
// Fire, in registration order, after the state has changed and before the
// transition's Announce hook.
func (f *FSM[T]) Subscribe(fn Listener[T]) Subscription {
	return f.changed.Subscribe(fn)
}

// OnChange is the fluent form of Subscribe for use while building a machine.
func (f *FSM[T]) OnChange(fn Listener[T]) *FSM[T] {
	f.changed.Subscribe(fn)
	return f
}

// Transitions returns every registered (from, to) pair in unspecified order.
func (f *FSM[T]) Transitions() g.Slice[Transition[T]] {
	out := make(g.Slice[Transition[T]], 0, len(f.transitions))
	for key := range f.transitions {
		out = append(out, key)
	}

	return out
}

// states is the internal implementation for retrieving known states.
func (f *FSM[T]) states() g.Set[T] {
	set := g.NewSet[T]()
	set.Insert(f.current)

	for key := range f.transitions {
		set.Insert(key.From)
		set.Insert(key.To)
	}

	return set
}

// States returns the current state plus every state that appears in the table.
func (f *FSM[T]) States() g.Slice[T] {
	return f.states().ToSlice()
}

// Sync returns a thread-safe wrapper around the FSM.
func (f *FSM[T]) Sync() *SyncFSM[T] {
	return &SyncFSM[T]{fsm: f}
}
