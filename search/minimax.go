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

// Package search provides move-selection algorithms over a [chess.Board]
// and an [evaluate.Evaluator].
package search

import (
	"math"

	"github.com/brighamskarda/checkmatier"
	"github.com/brighamskarda/checkmatier/evaluate"
)

// Minimax finds the best move by a depth-bounded minimax search: White
// maximizes the evaluator's ForWhite score, Black minimizes it. The first
// move encountered at the best value wins ties.
type Minimax struct{}

func (Minimax) Name() string { return "minimax" }

// FindBestMove clones board once, then searches by mutating the clone in
// place with Apply/Undo. board itself is never modified. depth must be at
// least 1.
func (Minimax) FindBestMove(board *chess.Board, e evaluate.Evaluator, depth int) chess.Move {
	if depth < 1 {
		panic("search: depth must be at least 1")
	}
	b := board.Copy()
	best, _ := minimax(b, e, depth)
	return best
}

func minimax(b *chess.Board, e evaluate.Evaluator, depth int) (chess.Move, int) {
	if depth == 0 {
		return chess.Move{}, evaluate.ForWhite(e, b)
	}

	var bestMove chess.Move
	haveMove := false
	maximizing := b.SideToMove() == chess.White

	var bestValue int
	if maximizing {
		bestValue = math.MinInt32
	} else {
		bestValue = math.MaxInt32
	}

	for _, m := range b.LegalMoves() {
		b.Apply(m)
		_, value := minimax(b, e, depth-1)
		b.Undo(m)

		if !haveMove || (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			bestValue = value
			bestMove = m
			haveMove = true
		}
	}

	if !haveMove {
		return chess.Move{}, evaluate.ForWhite(e, b)
	}
	return bestMove, bestValue
}
