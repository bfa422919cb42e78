package fsm

import "github.com/enetx/g"

// Interface compliance checks.
var (
	_ StateMachine[string] = (*FSM[string])(nil)
	_ StateMachine[string] = (*SyncFSM[string])(nil)
)

// Fire is the thread-safe version of FSM.Fire.
// Hooks and change listeners run while the write lock is held.
func (sf *SyncFSM[T]) Fire(target T) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Fire(target)
}

// Can is the thread-safe version of FSM.Can.
func (sf *SyncFSM[T]) Can(target T) bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Can(target)
}

// Current is the thread-safe version of FSM.Current.
func (sf *SyncFSM[T]) Current() T {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// Previous is the thread-safe version of FSM.Previous.
func (sf *SyncFSM[T]) Previous() T {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Previous()
}

// SetState is the thread-safe version of FSM.SetState.
// WARNING: This is a low-level method intended for state restoration.
// For all standard operations, use Fire.
func (sf *SyncFSM[T]) SetState(s T) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.SetState(s)
}

// TryRegister is the thread-safe version of FSM.TryRegister.
func (sf *SyncFSM[T]) TryRegister(from, to T, opts ...HookOption[T]) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.TryRegister(from, to, opts...)
}

// Remove is the thread-safe version of FSM.Remove.
func (sf *SyncFSM[T]) Remove(from, to T) bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Remove(from, to)
}

// Subscribe is the thread-safe version of FSM.Subscribe.
// The returned Subscription takes the same lock on Unsubscribe, so it must not
// be cancelled from inside a listener of this machine.
func (sf *SyncFSM[T]) Subscribe(fn Listener[T]) Subscription {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return &syncSubscription[T]{sf: sf, sub: sf.fsm.Subscribe(fn)}
}

// Transitions is the thread-safe version of FSM.Transitions.
func (sf *SyncFSM[T]) Transitions() g.Slice[Transition[T]] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Transitions()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM[T]) States() g.Slice[T] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States()
}

// ToDOT is the thread-safe version of FSM.ToDOT.
func (sf *SyncFSM[T]) ToDOT() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the FSM's state to JSON.
func (sf *SyncFSM[T]) MarshalJSON() ([]byte, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// deserialization of the FSM's state from JSON.
func (sf *SyncFSM[T]) UnmarshalJSON(data []byte) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.UnmarshalJSON(data)
}

type syncSubscription[T comparable] struct {
	sf  *SyncFSM[T]
	sub Subscription
}

func (s *syncSubscription[T]) Unsubscribe() {
	s.sf.mu.Lock()
	defer s.sf.mu.Unlock()

	s.sub.Unsubscribe()
}
