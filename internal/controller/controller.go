// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package controller implements a line-oriented command surface over a
// chess engine: uci, isready, ucinewgame, position, go, show, quit. The
// dispatch logic is kept separate from the I/O loop so it can be tested
// without a process boundary.
package controller

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/brighamskarda/checkmatier"
	"github.com/brighamskarda/checkmatier/evaluate"
	"github.com/brighamskarda/checkmatier/internal/config"
	"github.com/brighamskarda/checkmatier/search"
	"go.uber.org/zap"
)

const (
	engineName   = "Checkmatier"
	engineAuthor = "checkmatier contributors"
)

// Controller holds the mutable engine state a session needs across lines:
// the current position and the configured search defaults. It is not safe
// for concurrent use from multiple goroutines.
type Controller struct {
	board  *chess.Board
	cfg    config.Config
	log    *zap.SugaredLogger
	search search.Minimax
}

// New returns a Controller seeded with the standard starting position.
func New(cfg config.Config, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller{
		board: chess.NewBoard(),
		cfg:   cfg,
		log:   log,
	}
}

// Run drives HandleLine over every line read from r, writing each response
// to w, until r is exhausted or a "quit" command is handled.
func (c *Controller) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		response, quit := c.HandleLine(line)
		if response != "" {
			if _, err := fmt.Fprintln(w, response); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// HandleLine dispatches one command line and returns the response to print
// (possibly empty) and whether the session should terminate.
func (c *Controller) HandleLine(line string) (response string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "quit":
		c.log.Debug("quit requested")
		return "", true
	case "uci":
		return fmt.Sprintf("id name %s\nid author %s\nuciok", engineName, engineAuthor), false
	case "isready":
		return "readyok", false
	case "ucinewgame":
		c.board = chess.NewBoard()
		return "readyok", false
	case "position":
		return c.handlePosition(fields[1:]), false
	case "show":
		return c.board.String(), false
	case "go":
		return c.handleGo(fields[1:]), false
	default:
		c.log.Infow("unrecognized command", "line", line)
		return "Unrecognized command", false
	}
}

func (c *Controller) handlePosition(args []string) string {
	if len(args) == 0 {
		return "Unrecognized position command"
	}

	movesIdx := -1
	for i, a := range args {
		if a == "moves" {
			movesIdx = i
			break
		}
	}

	switch args[0] {
	case "startpos":
		c.board = chess.NewBoard()
	case "fen":
		end := len(args)
		if movesIdx >= 0 {
			end = movesIdx
		}
		fen := strings.Join(args[1:end], " ")
		b := &chess.Board{}
		if err := b.UnmarshalText([]byte(fen)); err != nil {
			c.log.Warnw("invalid fen", "fen", fen, "error", err)
			return fmt.Sprintf("Invalid position: %v", err)
		}
		c.board = b
	default:
		return "Unrecognized position command"
	}

	if movesIdx < 0 {
		return ""
	}

	for _, uciMove := range args[movesIdx+1:] {
		m, err := chess.ParseUCIMove(c.board, uciMove)
		if err != nil {
			c.log.Warnw("invalid move", "move", uciMove, "error", err)
			return fmt.Sprintf("Invalid move: %s", uciMove)
		}
		c.board.Apply(m)
	}
	return ""
}

func (c *Controller) handleGo(args []string) string {
	depth := c.cfg.Depth
	movegen := "minimax"
	for i := 0; i+1 < len(args); i += 2 {
		switch args[i] {
		case "depth":
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		case "movegen":
			movegen = args[i+1]
		}
	}
	if depth < 1 {
		depth = 1
	}

	if movegen == "random" {
		best := (search.Random{}).FindBestMove(c.board)
		if best == (chess.Move{}) {
			return "bestmove (none)"
		}
		return "bestmove " + best.String()
	}

	e := evaluate.Sum{Evaluators: []evaluate.Evaluator{
		scaledMaterial{weight: c.cfg.MaterialWeight},
		evaluate.Positioning{Weight: c.cfg.PositioningWeight},
	}}

	best := c.search.FindBestMove(c.board, e, depth)
	if best == (chess.Move{}) {
		return "bestmove (none)"
	}
	return "bestmove " + best.String()
}

// scaledMaterial scales evaluate.Material's fixed per-kind values by weight.
// evaluate.Material itself carries no weight; the controller is where a
// configurable weight is layered on for its default search evaluator.
type scaledMaterial struct {
	weight int
}

func (scaledMaterial) Name() string { return "material" }

func (s scaledMaterial) Evaluate(b *chess.Board) int {
	return (evaluate.Material{}).Evaluate(b) * s.weight
}
