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

package evaluate

import "github.com/brighamskarda/checkmatier"

// Mobility scores the difference in legal move count between White and
// Black, White positive, then multiplies by Weight and the side-to-move
// sign. Computing both sides' counts regardless of whose turn it is
// relies on Board.LegalMovesForColor rather than Board.LegalMoves.
type Mobility struct {
	Weight int
}

func (Mobility) Name() string { return "mobility" }

func (m Mobility) Evaluate(b *chess.Board) int {
	white := len(b.LegalMovesForColor(chess.White))
	black := len(b.LegalMovesForColor(chess.Black))
	return (white - black) * b.SideToMove().Sign() * m.Weight
}
