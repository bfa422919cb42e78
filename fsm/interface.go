package fsm

import "github.com/enetx/g"

// StateMachine is the surface shared by FSM and SyncFSM.
type StateMachine[T comparable] interface {
	Fire(T) error
	Can(T) bool
	Current() T
	Previous() T
	SetState(T)
	TryRegister(from, to T, opts ...HookOption[T]) error
	Remove(from, to T) bool
	Subscribe(Listener[T]) Subscription
	Transitions() g.Slice[Transition[T]]
	States() g.Slice[T]
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}
