package fsm

import "github.com/enetx/g"

// Notifier is a synchronous multi-subscriber broadcast list.
// Emit delivers to a snapshot of the subscribers taken before the first call,
// so subscribing or unsubscribing from inside a handler only affects later emits.
// A Notifier is not safe for concurrent use.
type Notifier[E any] struct {
	subs g.Slice[*subscriber[E]]
}

type subscriber[E any] struct {
	fn     func(E)
	active bool
}

// Subscription cancels one registration made with Subscribe.
type Subscription interface {
	Unsubscribe()
}

type subscription[E any] struct {
	n   *Notifier[E]
	sub *subscriber[E]
}

// NewNotifier returns an empty Notifier.
func NewNotifier[E any]() *Notifier[E] {
	return &Notifier[E]{subs: g.NewSlice[*subscriber[E]]()}
}

// Subscribe registers fn. Handlers are invoked in registration order.
func (n *Notifier[E]) Subscribe(fn func(E)) Subscription {
	sub := &subscriber[E]{fn: fn, active: true}
	n.subs.Push(sub)

	return &subscription[E]{n: n, sub: sub}
}

// Emit calls every current subscriber with e.
func (n *Notifier[E]) Emit(e E) {
	if len(n.subs) == 0 {
		return
	}

	for _, sub := range n.subs.Clone() {
		if sub.fn != nil {
			sub.fn(e)
		}
	}
}

// Len reports the number of active subscribers.
func (n *Notifier[E]) Len() int { return len(n.subs) }

// Clear drops every subscriber.
func (n *Notifier[E]) Clear() {
	for _, sub := range n.subs {
		sub.active = false
	}

	n.subs = g.NewSlice[*subscriber[E]]()
}

// Unsubscribe removes the registration. Calling it twice is harmless.
func (s *subscription[E]) Unsubscribe() {
	if !s.sub.active {
		return
	}

	s.sub.active = false

	kept := make(g.Slice[*subscriber[E]], 0, len(s.n.subs))
	for _, sub := range s.n.subs {
		if sub != s.sub {
			kept = append(kept, sub)
		}
	}

	s.n.subs = kept
}
