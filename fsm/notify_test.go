package fsm_test

import (
	"testing"

	. "github.com/enetx/breakout/fsm"
)

func TestNotifier_EmitOrder(t *testing.T) {
	n := NewNotifier[int]()

	var got []int
	n.Subscribe(func(e int) { got = append(got, e*10+1) })
	n.Subscribe(func(e int) { got = append(got, e*10+2) })

	n.Emit(1)
	n.Emit(2)

	assertEqual(t, len(got), 4)
	assertEqual(t, got[0], 11)
	assertEqual(t, got[1], 12)
	assertEqual(t, got[2], 21)
	assertEqual(t, got[3], 22)
}

func TestNotifier_UnsubscribeIsIdempotent(t *testing.T) {
	n := NewNotifier[string]()

	calls := 0
	sub := n.Subscribe(func(string) { calls++ })
	n.Subscribe(func(string) {})

	sub.Unsubscribe()
	sub.Unsubscribe()

	assertEqual(t, n.Len(), 1)

	n.Emit("x")
	assertEqual(t, calls, 0)
}

func TestNotifier_UnsubscribeLaterHandlerDuringEmit(t *testing.T) {
	n := NewNotifier[int]()

	var second Subscription
	secondCalls := 0

	n.Subscribe(func(int) { second.Unsubscribe() })
	second = n.Subscribe(func(int) { secondCalls++ })

	n.Emit(1)
	assertEqual(t, secondCalls, 1)
	assertEqual(t, n.Len(), 1)

	n.Emit(2)
	assertEqual(t, secondCalls, 1)
}

func TestNotifier_Clear(t *testing.T) {
	n := NewNotifier[int]()

	calls := 0
	n.Subscribe(func(int) { calls++ })
	n.Subscribe(func(int) { calls++ })

	n.Clear()
	n.Emit(1)

	assertEqual(t, calls, 0)
	assertEqual(t, n.Len(), 0)
}

func TestNotifier_EmitWithoutSubscribers(t *testing.T) {
	n := NewNotifier[int]()
	n.Emit(1)
	assertEqual(t, n.Len(), 0)
}
