// Package watch publishes the state changes of running machines to HTTP and
// websocket clients.
package watch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/enetx/breakout/fsm"
)

// Record is one state change of a named machine.
type Record struct {
	ID      ulid.ULID `json:"id"`
	Machine string    `json:"machine"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	At      time.Time `json:"at"`
}

// MachineStatus is the last known state of a machine.
type MachineStatus struct {
	State string  `json:"state"`
	Last  *Record `json:"last,omitempty"`
}

// Status is the payload of GET /status.
type Status struct {
	Machines map[string]MachineStatus `json:"machines"`
	Clients  int                      `json:"clients"`
}

type machine struct {
	state string
	dot   string
	last  *Record
}

type client struct {
	id string
	ch chan []byte
}

// Hub fans records out to clients. Publishing never blocks: a client whose
// buffer is full is dropped.
type Hub struct {
	mu       sync.RWMutex
	machines map[string]*machine
	clients  map[string]*client
	entropy  *ulid.MonotonicEntropy
	buffer   int
	log      *slog.Logger
	now      func() time.Time
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithBuffer sets how many records a client may lag behind before it is dropped.
func WithBuffer(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

// WithLogger sets the hub logger.
func WithLogger(l *slog.Logger) HubOption {
	return func(h *Hub) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHub returns an empty hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		machines: make(map[string]*machine),
		clients:  make(map[string]*client),
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		buffer:   64,
		log:      slog.Default(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Attach reports every change of m under name. The DOT view and current
// state are captured on the caller's goroutine, so m itself is never read
// by HTTP handlers.
func Attach[T comparable](h *Hub, name string, m *fsm.FSM[T]) fsm.Subscription {
	h.track(name, fmt.Sprint(m.Current()), string(m.ToDOT()))

	return m.Subscribe(func(c fsm.Change[T]) {
		h.track(name, fmt.Sprint(c.To), string(m.ToDOT()))
		h.Publish(name, fmt.Sprint(c.From), fmt.Sprint(c.To))
	})
}

func (h *Hub) track(name, state, dot string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, ok := h.machines[name]
	if !ok {
		m = &machine{}
		h.machines[name] = m
	}

	m.state, m.dot = state, dot
}

// Publish records a change and sends it to every client.
func (h *Hub) Publish(name, from, to string) Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	at := h.now()
	rec := Record{
		ID:      ulid.MustNew(ulid.Timestamp(at), h.entropy),
		Machine: name,
		From:    from,
		To:      to,
		At:      at,
	}

	m, ok := h.machines[name]
	if !ok {
		m = &machine{}
		h.machines[name] = m
	}
	m.state = to
	m.last = &rec

	data, err := json.Marshal(rec)
	if err != nil {
		h.log.Error("watch: failed to encode record", "error", err)
		return rec
	}

	for id, c := range h.clients {
		select {
		case c.ch <- data:
		default:
			delete(h.clients, id)
			close(c.ch)
			h.log.Warn("watch: dropping slow client", "client", id)
		}
	}

	return rec
}

// Status returns the last known state of every machine.
func (h *Hub) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()

	st := Status{Machines: make(map[string]MachineStatus, len(h.machines)), Clients: len(h.clients)}
	for name, m := range h.machines {
		ms := MachineStatus{State: m.state}
		if m.last != nil {
			last := *m.last
			ms.Last = &last
		}
		st.Machines[name] = ms
	}

	return st
}

// DOT returns the Graphviz view of a machine as of its last change.
func (h *Hub) DOT(name string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	m, ok := h.machines[name]
	if !ok {
		return "", false
	}

	return m.dot, true
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.ch)
	}
}

func (h *Hub) subscribe() *client {
	c := &client{id: uuid.NewString(), ch: make(chan []byte, h.buffer)}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	return c
}

func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.ch)
	}
}
