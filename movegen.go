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

var promotionKinds = [4]PieceType{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves produces every move obeying piece movement geometry,
// board bounds, and friendly-fire prohibition for color, without checking
// whether the moving side's king is left in check.
func (b *Board) PseudoLegalMoves(color Color) []Move {
	var moves []Move
	for _, s := range AllSquares {
		p := b.Piece(s)
		if p.Color != color {
			continue
		}
		switch p.Type {
		case Pawn:
			moves = append(moves, b.pawnMoves(s, p)...)
		case Knight:
			moves = append(moves, b.offsetMoves(s, p, knightOffsets[:])...)
		case Bishop:
			moves = append(moves, b.rayMoves(s, p, diagonalOffsets[:])...)
		case Rook:
			moves = append(moves, b.rayMoves(s, p, orthogonalOffsets[:])...)
		case Queen:
			moves = append(moves, b.rayMoves(s, p, diagonalOffsets[:])...)
			moves = append(moves, b.rayMoves(s, p, orthogonalOffsets[:])...)
		case King:
			moves = append(moves, b.offsetMoves(s, p, kingOffsets[:])...)
			moves = append(moves, b.castlingMoves(color)...)
		}
	}
	return moves
}

// rayMoves walks each direction in offsets from square until it runs off
// the board, hits a friendly piece (stop, no move), or hits an enemy piece
// (emit a capture and stop).
func (b *Board) rayMoves(square Square, p Piece, offsets [][2]int) []Move {
	var moves []Move
	for _, d := range offsets {
		for s := square.Offset(d[0], d[1]); s != NoSquare; s = s.Offset(d[0], d[1]) {
			target := b.Piece(s)
			if target == NoPiece {
				moves = append(moves, Move{FromSquare: square, ToSquare: s, Piece: p})
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, Move{FromSquare: square, ToSquare: s, Piece: p, Capture: target})
			}
			break
		}
	}
	return moves
}

// offsetMoves emits a move for each in-bounds offset from square that is
// not occupied by a friendly piece.
func (b *Board) offsetMoves(square Square, p Piece, offsets [][2]int) []Move {
	var moves []Move
	for _, d := range offsets {
		s := square.Offset(d[0], d[1])
		if s == NoSquare {
			continue
		}
		target := b.Piece(s)
		if target == NoPiece {
			moves = append(moves, Move{FromSquare: square, ToSquare: s, Piece: p})
		} else if target.Color != p.Color {
			moves = append(moves, Move{FromSquare: square, ToSquare: s, Piece: p, Capture: target})
		}
	}
	return moves
}

func (b *Board) pawnMoves(square Square, p Piece) []Move {
	var moves []Move
	dir := 1
	startRank := Rank2
	if p.Color == Black {
		dir = -1
		startRank = Rank7
	}

	forward := square.Offset(0, dir)
	if forward != NoSquare && b.Piece(forward) == NoPiece {
		moves = append(moves, Move{FromSquare: square, ToSquare: forward, Piece: p})
		if square.Rank == startRank {
			double := square.Offset(0, dir*2)
			if double != NoSquare && b.Piece(double) == NoPiece {
				moves = append(moves, Move{FromSquare: square, ToSquare: double, Piece: p, EnPassantSquare: forward})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		target := square.Offset(df, dir)
		if target == NoSquare {
			continue
		}
		occupant := b.Piece(target)
		if occupant != NoPiece && occupant.Color != p.Color {
			moves = append(moves, Move{FromSquare: square, ToSquare: target, Piece: p, Capture: occupant})
			continue
		}
		if target == b.EnPassant() {
			captured := Piece{Type: Pawn, Color: p.Color.Opposite()}
			moves = append(moves, Move{
				FromSquare:      square,
				ToSquare:        target,
				Piece:           p,
				Capture:         captured,
				EnPassantSquare: target.Offset(0, -dir),
			})
		}
	}

	return expandPromotions(moves)
}

// expandPromotions replaces every move landing on the back rank with four
// moves, one per promotion kind, carrying capture and en passant through.
func expandPromotions(moves []Move) []Move {
	var out []Move
	for _, m := range moves {
		if m.ToSquare.Rank != Rank8 && m.ToSquare.Rank != Rank1 {
			out = append(out, m)
			continue
		}
		for _, kind := range promotionKinds {
			promoted := m
			promoted.Promotion = kind
			out = append(out, promoted)
		}
	}
	return out
}

// castlingMoves emits castling moves for color. King-side requires the
// traversed squares to be empty and unattacked. Queen-side additionally
// requires the b-file square to be empty, but the king's own path (e->d->c)
// is what must be unattacked -- b's attack status does not matter.
func (b *Board) castlingMoves(color Color) []Move {
	var moves []Move
	rights := b.Castling()
	enemy := color.Opposite()

	var rank Rank
	var king Piece
	var kingSideRight, queenSideRight bool
	if color == White {
		rank = Rank1
		king = WhiteKing
		kingSideRight, queenSideRight = rights.WhiteKingSide, rights.WhiteQueenSide
	} else {
		rank = Rank8
		king = BlackKing
		kingSideRight, queenSideRight = rights.BlackKingSide, rights.BlackQueenSide
	}

	kingFrom := Square{File: FileE, Rank: rank}
	if b.Piece(kingFrom) != king {
		return moves
	}
	if b.IsSquareAttacked(kingFrom, enemy) {
		return moves
	}

	if kingSideRight {
		f := Square{File: FileF, Rank: rank}
		g := Square{File: FileG, Rank: rank}
		if b.Piece(f) == NoPiece && b.Piece(g) == NoPiece &&
			!b.IsSquareAttacked(f, enemy) && !b.IsSquareAttacked(g, enemy) {
			moves = append(moves, Move{
				FromSquare:       kingFrom,
				ToSquare:         g,
				Piece:            king,
				CastlingRookFrom: Square{File: FileH, Rank: rank},
				CastlingRookTo:   f,
			})
		}
	}

	if queenSideRight {
		d := Square{File: FileD, Rank: rank}
		c := Square{File: FileC, Rank: rank}
		bSq := Square{File: FileB, Rank: rank}
		if b.Piece(d) == NoPiece && b.Piece(c) == NoPiece && b.Piece(bSq) == NoPiece &&
			!b.IsSquareAttacked(d, enemy) && !b.IsSquareAttacked(c, enemy) {
			moves = append(moves, Move{
				FromSquare:       kingFrom,
				ToSquare:         c,
				Piece:            king,
				CastlingRookFrom: Square{File: FileA, Rank: rank},
				CastlingRookTo:   d,
			})
		}
	}

	return moves
}

// LegalMoves generates the pseudo-legal moves for the side to move and
// filters out any that leave that side's own king in check. It applies
// each candidate on b itself and undoes it immediately afterward, so b is
// unchanged when LegalMoves returns.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesForColor(b.sideToMove)
}

// LegalMovesForColor is [Board.LegalMoves] generalized to an arbitrary
// color, regardless of whose turn it officially is. It exists for
// evaluators such as mobility that compare both sides' move counts from
// the same position. b is unchanged when it returns.
func (b *Board) LegalMovesForColor(color Color) []Move {
	candidates := b.PseudoLegalMoves(color)
	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		b.Apply(m)
		inCheck := b.isCheck(color)
		b.Undo(m)
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}
