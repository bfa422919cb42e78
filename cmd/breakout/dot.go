package main

import (
	"fmt"
	"io"

	"github.com/enetx/breakout/internal/game"
	"github.com/enetx/breakout/internal/logger"
)

// printDOT writes the Graphviz view of one machine of a fresh session.
func printDOT(w io.Writer, cfg game.Config, machine string) error {
	session, err := game.New(cfg, game.WithLogger(logger.Discard()))
	if err != nil {
		return err
	}

	var out string
	switch machine {
	case "app":
		out = string(session.App().ToDOT())
	case "round":
		out = string(session.Round().ToDOT())
	default:
		return fmt.Errorf("unknown machine %q: want app or round", machine)
	}

	_, err = io.WriteString(w, out)
	return err
}
