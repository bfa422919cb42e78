package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/enetx/breakout/fsm"
)

//go:embed flows.yaml
var defaultFlows []byte

// Flows holds the transition tables of both machines.
type Flows struct {
	App   fsm.Table `yaml:"app"`
	Round fsm.Table `yaml:"round"`
}

// DefaultFlows returns the built-in tables.
func DefaultFlows() []byte {
	out := make([]byte, len(defaultFlows))
	copy(out, defaultFlows)
	return out
}

// ParseFlows decodes a flows document.
func ParseFlows(data []byte) (Flows, error) {
	var f Flows
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Flows{}, fmt.Errorf("failed to parse flows: %w", err)
	}

	return f, nil
}
