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

import (
	"fmt"
)

// Move is an immutable, self-contained description of one move. It carries
// every datum needed to undo itself without consulting any prior state: the
// moving piece, the optional captured piece, the optional promotion, the
// dual-use en-passant square, and the optional castling rook displacement.
//
// En-passant square dual usage: on a double pawn push EnPassantSquare names
// the square the pawn skipped over. On an en-passant capture it names the
// square of the captured pawn. The two cases are distinguished by whether
// Capture is also set.
type Move struct {
	FromSquare Square
	ToSquare   Square
	Piece      Piece
	Capture    Piece
	Promotion  PieceType

	EnPassantSquare Square

	CastlingRookFrom Square
	CastlingRookTo   Square
}

// IsCastle reports whether m moves a rook alongside the king.
func (m Move) IsCastle() bool {
	return m.CastlingRookFrom != NoSquare
}

// IsEnPassant reports whether m is an en-passant capture, as opposed to a
// double pawn push (both set EnPassantSquare, only en-passant also sets
// Capture).
func (m Move) IsEnPassant() bool {
	return m.EnPassantSquare != NoSquare && m.Capture != NoPiece
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns m in long coordinate notation: <from><to>[<promotion>].
// Promotion, when present, is a single lowercase piece-kind letter.
func (m Move) String() string {
	s := m.FromSquare.String() + m.ToSquare.String()
	if m.Promotion != NoPieceType {
		s += m.Promotion.String()
	}
	return s
}

// ParseUCIMove parses a long coordinate move string against the legal moves
// available in b's current position. It does not construct a Move in
// isolation because only the board knows which piece occupies FromSquare,
// whether the move is a capture, en passant, castling, or what it takes to
// undo it; this mirrors [Board.AlgebraicLookup].
func ParseUCIMove(b *Board, uci string) (Move, error) {
	if len(uci) < 4 || len(uci) > 5 {
		return Move{}, fmt.Errorf("chess: malformed move %q", uci)
	}
	from := parseSquare(uci[0:2])
	to := parseSquare(uci[2:4])
	if from == NoSquare || to == NoSquare {
		return Move{}, fmt.Errorf("chess: malformed move %q", uci)
	}
	wantPromotion := NoPieceType
	if len(uci) == 5 {
		wantPromotion = parsePieceType(uci[4:5])
		if wantPromotion == NoPieceType {
			return Move{}, fmt.Errorf("chess: malformed move %q", uci)
		}
	}
	for _, m := range b.LegalMoves() {
		if m.FromSquare == from && m.ToSquare == to && m.Promotion == wantPromotion {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("chess: %q is not a legal move", uci)
}
