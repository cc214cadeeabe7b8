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

var pieceValue = map[chess.PieceType]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// Material sums a fixed per-kind value over all pieces, White positive and
// Black negative, then multiplies by the side-to-move sign.
type Material struct{}

func (Material) Name() string { return "material" }

func (Material) Evaluate(b *chess.Board) int {
	score := 0
	for _, s := range chess.AllSquares {
		p := b.Piece(s)
		if p == chess.NoPiece {
			continue
		}
		v := pieceValue[p.Type]
		if p.Color == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	return score * b.SideToMove().Sign()
}
