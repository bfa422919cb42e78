package fsm

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a serializable representation of an FSM's position.
// The transition table and hooks are configuration and are not serialized.
type Snapshot[T comparable] struct {
	Current  T `json:"current"`
	Previous T `json:"previous"`
}

// Snapshot returns the FSM's current position.
func (f *FSM[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{Current: f.current, Previous: f.previous}
}

// MarshalJSON implements the json.Marshaler interface.
func (f *FSM[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Snapshot())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both states must be known to the FSM; no hooks run and no listener is notified.
func (f *FSM[T]) UnmarshalJSON(data []byte) error {
	var snap Snapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal fsm state: %w", err)
	}

	states := f.states()

	if !states.Contains(snap.Current) {
		return &ErrUnknownState[T]{State: snap.Current}
	}

	if !states.Contains(snap.Previous) {
		return &ErrUnknownState[T]{State: snap.Previous}
	}

	f.current = snap.Current
	f.previous = snap.Previous

	return nil
}
