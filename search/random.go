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

package search

import (
	"math/rand"

	"github.com/brighamskarda/checkmatier"
)

// Random picks uniformly among the legal moves at the current position,
// ignoring any evaluator. It exists as a cheap opponent or smoke-test
// search mode alongside Minimax.
type Random struct{}

func (Random) Name() string { return "random" }

// FindBestMove returns the zero [chess.Move] if board has no legal move.
func (Random) FindBestMove(board *chess.Board) chess.Move {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}
	}
	return moves[rand.Intn(len(moves))]
}
