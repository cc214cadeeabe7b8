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

package chess

// Attacker pairs a piece with the square it occupies, as returned by
// [Board.Attackers].
type Attacker struct {
	Piece  Piece
	Square Square
}

var diagonalOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

func pawnAttackerOffsets(byColor Color) [2][2]int {
	if byColor == White {
		return [2][2]int{{-1, -1}, {1, -1}}
	}
	return [2][2]int{{-1, 1}, {1, 1}}
}

// Attackers returns every (piece, square) pair of color byColor that could
// capture a hypothetical piece of the opposite color standing on square,
// on the current ply, ignoring pins and whose turn it is -- purely
// geometric. This is the only attack oracle in the package; both
// king-safety filtering in legal move generation and the castling-path
// check in move generation go through it.
func (b *Board) Attackers(square Square, byColor Color) []Attacker {
	var attackers []Attacker

	for _, d := range diagonalOffsets {
		for s := square.Offset(d[0], d[1]); s != NoSquare; s = s.Offset(d[0], d[1]) {
			p := b.Piece(s)
			if p == NoPiece {
				continue
			}
			if p.Color == byColor && (p.Type == Bishop || p.Type == Queen) {
				attackers = append(attackers, Attacker{p, s})
			}
			break
		}
	}

	for _, d := range orthogonalOffsets {
		for s := square.Offset(d[0], d[1]); s != NoSquare; s = s.Offset(d[0], d[1]) {
			p := b.Piece(s)
			if p == NoPiece {
				continue
			}
			if p.Color == byColor && (p.Type == Rook || p.Type == Queen) {
				attackers = append(attackers, Attacker{p, s})
			}
			break
		}
	}

	for _, d := range knightOffsets {
		s := square.Offset(d[0], d[1])
		if s == NoSquare {
			continue
		}
		if p := b.Piece(s); p.Color == byColor && p.Type == Knight {
			attackers = append(attackers, Attacker{p, s})
		}
	}

	for _, d := range kingOffsets {
		s := square.Offset(d[0], d[1])
		if s == NoSquare {
			continue
		}
		if p := b.Piece(s); p.Color == byColor && p.Type == King {
			attackers = append(attackers, Attacker{p, s})
		}
	}

	for _, d := range pawnAttackerOffsets(byColor) {
		s := square.Offset(d[0], d[1])
		if s == NoSquare {
			continue
		}
		if p := b.Piece(s); p.Color == byColor && p.Type == Pawn {
			attackers = append(attackers, Attacker{p, s})
		}
	}

	return attackers
}

// IsSquareAttacked is shorthand for len(b.Attackers(square, byColor)) > 0.
func (b *Board) IsSquareAttacked(square Square, byColor Color) bool {
	return len(b.Attackers(square, byColor)) > 0
}
