package fsm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table is a declarative description of a machine's edges.
// Hooks are referenced by name and resolved against a Registry on Apply.
type Table struct {
	Initial     string      `yaml:"initial"`
	Transitions []TableEdge `yaml:"transitions"`
}

// TableEdge describes one transition of a Table.
type TableEdge struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Before   string `yaml:"before,omitempty"`
	After    string `yaml:"after,omitempty"`
	Announce string `yaml:"announce,omitempty"`
}

// Registry maps hook names used in a Table to their implementations.
type Registry[T comparable] struct {
	Actions    map[string]Action
	Announcers map[string]Announcer[T]
}

// ParseTable decodes a YAML table.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("failed to parse transition table: %w", err)
	}

	return t, nil
}

// InitialState parses the table's initial state.
func InitialState[T comparable](t Table, parse func(string) (T, error)) (T, error) {
	s, err := parse(t.Initial)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("initial state %q: %w", t.Initial, err)
	}

	return s, nil
}

// Apply registers every edge of t on m, in table order.
// States are converted with parse and hook names are looked up in reg.
// The first edge naming an unknown state or hook stops Apply; edges before it stay registered.
// A repeated edge behaves like a repeated Register: it is logged and skipped.
func Apply[T comparable](m *FSM[T], t Table, parse func(string) (T, error), reg Registry[T]) error {
	for i, edge := range t.Transitions {
		opts, from, to, err := resolve(edge, parse, reg)
		if err != nil {
			return fmt.Errorf("transition[%d] %s -> %s: %w", i, edge.From, edge.To, err)
		}

		m.Register(from, to, opts...)
	}

	return nil
}

func resolve[T comparable](
	edge TableEdge,
	parse func(string) (T, error),
	reg Registry[T],
) (opts []HookOption[T], from, to T, err error) {
	if from, err = parse(edge.From); err != nil {
		return nil, from, to, fmt.Errorf("from state: %w", err)
	}

	if to, err = parse(edge.To); err != nil {
		return nil, from, to, fmt.Errorf("to state: %w", err)
	}

	if edge.Before != "" {
		fn, ok := reg.Actions[edge.Before]
		if !ok {
			return nil, from, to, fmt.Errorf("unknown action %q", edge.Before)
		}
		opts = append(opts, Before[T](fn))
	}

	if edge.Announce != "" {
		fn, ok := reg.Announcers[edge.Announce]
		if !ok {
			return nil, from, to, fmt.Errorf("unknown announcer %q", edge.Announce)
		}
		opts = append(opts, Announce(fn))
	}

	if edge.After != "" {
		fn, ok := reg.Actions[edge.After]
		if !ok {
			return nil, from, to, fmt.Errorf("unknown action %q", edge.After)
		}
		opts = append(opts, After[T](fn))
	}

	return opts, from, to, nil
}
