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
	"strconv"
	"strings"
)

// CastlingRights tracks the four independent flags a position carries for
// castling eligibility. They are monotonically non-increasing along any
// single line of play; they are only re-granted by undoing moves.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// GameState is the per-ply information a [Board] must remember to undo a
// move: the en-passant target, the castling rights as of that ply, and the
// halfmove clock. One GameState is pushed per applied move and popped per
// undone move; the stack is never empty.
type GameState struct {
	EnPassant     Square
	Castling      CastlingRights
	HalfMoveClock uint
}

// Board holds a chess position: the 64 squares, the side to move, the
// fullmove counter, and a stack of [GameState] records, one per ply ever
// applied plus an initial entry seeded at construction. It mutates only
// through [Board.Apply] and [Board.Undo].
type Board struct {
	squares      [64]Piece
	sideToMove   Color
	fullMove     uint
	stateHistory []GameState
}

// StartPosFEN is the standard starting position, expressed in this engine's
// inverted piece-letter convention (see [Board.UnmarshalText]).
const StartPosFEN = "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr w KQkq - 0 1"

// NewBoard returns a board set to the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	if err := b.UnmarshalText([]byte(StartPosFEN)); err != nil {
		panic("chess: invalid built-in start position: " + err.Error())
	}
	return b
}

// squareIndex maps a Square onto its slot in Board.squares: file and rank
// both run 1..8 (see square.go), so the linear index is 0 at a1 and 63 at
// h8.
func squareIndex(s Square) int {
	return int(s.File-1) + int(s.Rank-1)*8
}

// Piece returns the piece occupying s, or [NoPiece] if s is empty or
// [NoSquare].
func (b *Board) Piece(s Square) Piece {
	if s == NoSquare {
		return NoPiece
	}
	return b.squares[squareIndex(s)]
}

// SetPiece places p on square s. Setting [NoPiece] clears the square.
func (b *Board) SetPiece(s Square, p Piece) {
	b.squares[squareIndex(s)] = p
}

// ClearPiece removes whatever piece occupies s.
func (b *Board) ClearPiece(s Square) {
	b.squares[squareIndex(s)] = NoPiece
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// FullMove returns the fullmove counter.
func (b *Board) FullMove() uint {
	return b.fullMove
}

func (b *Board) state() *GameState {
	return &b.stateHistory[len(b.stateHistory)-1]
}

// EnPassant returns the current en-passant target square, or [NoSquare].
func (b *Board) EnPassant() Square {
	return b.state().EnPassant
}

// HalfMoveClock returns the number of plies since the last capture.
func (b *Board) HalfMoveClock() uint {
	return b.state().HalfMoveClock
}

// Castling returns a copy of the current castling rights.
func (b *Board) Castling() CastlingRights {
	return b.state().Castling
}

// Copy returns a deep copy of b; mutating the copy never affects b.
func (b *Board) Copy() *Board {
	cp := &Board{
		squares:      b.squares,
		sideToMove:   b.sideToMove,
		fullMove:     b.fullMove,
		stateHistory: make([]GameState, len(b.stateHistory)),
	}
	copy(cp.stateHistory, b.stateHistory)
	return cp
}

// Equal reports whether b and other represent byte-identical boards,
// including the entire state-history stack. This is the equality used by
// the apply/undo round-trip invariant.
func (b *Board) Equal(other *Board) bool {
	if b.squares != other.squares {
		return false
	}
	if b.sideToMove != other.sideToMove || b.fullMove != other.fullMove {
		return false
	}
	if len(b.stateHistory) != len(other.stateHistory) {
		return false
	}
	for i := range b.stateHistory {
		if b.stateHistory[i] != other.stateHistory[i] {
			return false
		}
	}
	return true
}

// UnmarshalText parses the six-field position string described in package
// documentation: piece placement (ranks 8->1, '/'-separated, digits are
// empty-square runs), side to move (w|b), castling rights ([KQkq]+|-),
// en-passant target (-|square), halfmove clock, fullmove number.
//
// Piece letter convention: uppercase letters are Black, lowercase letters
// are White. This inverts the conventional external encoding and is
// preserved intentionally rather than normalized on parse.
func (b *Board) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 6 {
		return fmt.Errorf("chess: position string must have 6 fields, got %d", len(fields))
	}

	var squares [64]Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("chess: piece placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank8 - Rank(i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			if file > FileH {
				return fmt.Errorf("chess: rank %q overflows the board", rankStr)
			}
			p := parseFenChar(byte(c))
			if p == NoPiece {
				return fmt.Errorf("chess: invalid piece letter %q", c)
			}
			squares[squareIndex(Square{File: file, Rank: rank})] = p
			file++
		}
		if file != FileH+1 {
			return fmt.Errorf("chess: rank %q does not cover 8 files", rankStr)
		}
	}

	sideToMove := parseColor(fields[1])
	if sideToMove == NoColor {
		return fmt.Errorf("chess: invalid side to move %q", fields[1])
	}

	castling := CastlingRights{}
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				castling.WhiteKingSide = true
			case 'Q':
				castling.WhiteQueenSide = true
			case 'k':
				castling.BlackKingSide = true
			case 'q':
				castling.BlackQueenSide = true
			default:
				return fmt.Errorf("chess: invalid castling rights character %q", c)
			}
		}
	}

	enPassant := NoSquare
	if fields[3] != "-" {
		enPassant = parseSquare(fields[3])
		if enPassant == NoSquare {
			return fmt.Errorf("chess: invalid en-passant square %q", fields[3])
		}
	}

	halfMove, err := strconv.ParseUint(fields[4], 10, 0)
	if err != nil {
		return fmt.Errorf("chess: invalid halfmove clock %q", fields[4])
	}

	fullMove, err := strconv.ParseUint(fields[5], 10, 0)
	if err != nil {
		return fmt.Errorf("chess: invalid fullmove number %q", fields[5])
	}

	b.squares = squares
	b.sideToMove = sideToMove
	b.fullMove = uint(fullMove)
	b.stateHistory = []GameState{{
		EnPassant:     enPassant,
		Castling:      castling,
		HalfMoveClock: uint(halfMove),
	}}
	return nil
}

// MarshalText emits the position string described by [Board.UnmarshalText].
// parse(emit(b)) is the identity for any board produced by a successful
// parse.
func (b *Board) MarshalText() ([]byte, error) {
	var sb strings.Builder

	for i := 0; i < 8; i++ {
		rank := Rank8 - Rank(i)
		empty := 0
		for file := FileA; file <= FileH; file++ {
			p := b.Piece(Square{File: file, Rank: rank})
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenChar(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	c := b.Castling()
	if !c.WhiteKingSide && !c.WhiteQueenSide && !c.BlackKingSide && !c.BlackQueenSide {
		sb.WriteByte('-')
	} else {
		if c.WhiteKingSide {
			sb.WriteByte('K')
		}
		if c.WhiteQueenSide {
			sb.WriteByte('Q')
		}
		if c.BlackKingSide {
			sb.WriteByte('k')
		}
		if c.BlackQueenSide {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.HalfMoveClock()), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.fullMove), 10))

	return []byte(sb.String()), nil
}

// String renders the board from White's perspective for diagnostics, plus
// a side/castling/en-passant/clock summary line.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for i := 0; i < 8; i++ {
		rank := Rank8 - Rank(i)
		fmt.Fprintf(&sb, "%d ", int(rank))
		for file := FileA; file <= FileH; file++ {
			p := b.Piece(Square{File: file, Rank: rank})
			if p == NoPiece {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(p.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	c := b.Castling()
	castleStr := ""
	if c.WhiteKingSide {
		castleStr += "K"
	}
	if c.WhiteQueenSide {
		castleStr += "Q"
	}
	if c.BlackKingSide {
		castleStr += "k"
	}
	if c.BlackQueenSide {
		castleStr += "q"
	}
	if castleStr == "" {
		castleStr = "-"
	}
	fmt.Fprintf(&sb, "%s to move | castling %s | en passant %s | halfmove %d | fullmove %d\n",
		b.sideToMove, castleStr, b.EnPassant(), b.HalfMoveClock(), b.fullMove)
	return sb.String()
}

// King returns the square holding color's king. It panics if no such king
// exists, which would violate invariant (i) of the board.
func (b *Board) King(color Color) Square {
	want := Piece{Type: King, Color: color}
	for _, s := range AllSquares {
		if b.Piece(s) == want {
			return s
		}
	}
	panic(fmt.Sprintf("chess: no %s king on board", color))
}

// IsCheck reports whether the side to move's king is attacked.
func (b *Board) IsCheck() bool {
	return b.isCheck(b.sideToMove)
}

func (b *Board) isCheck(color Color) bool {
	king := b.King(color)
	return len(b.Attackers(king, color.Opposite())) > 0
}

// IsCheckmate reports whether the side to move is in check and has no
// legal move.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && len(b.LegalMoves()) == 0
}

// IsDraw reports whether the side to move is not in check and has no legal
// move (stalemate). Other draw rules are out of scope.
func (b *Board) IsDraw() bool {
	return !b.IsCheck() && len(b.LegalMoves()) == 0
}

// AlgebraicLookup scans the legal moves available to the side to move for
// the one whose long-coordinate rendering equals text. It returns the zero
// Move and false on a miss -- this is not an error per the package's error
// taxonomy, just a lookup miss.
func (b *Board) AlgebraicLookup(text string) (Move, bool) {
	for _, m := range b.LegalMoves() {
		if m.String() == text {
			return m, true
		}
	}
	return Move{}, false
}

// Apply performs m, pushing a new [GameState] onto the history stack. See
// [Board.Undo] for the exact inverse.
func (b *Board) Apply(m Move) {
	if len(b.stateHistory) == 0 {
		panic("chess: apply called with empty state history")
	}
	prior := b.Castling()
	priorClock := b.HalfMoveClock()

	if m.Piece.Color == Black {
		b.fullMove++
	}
	b.sideToMove = b.sideToMove.Opposite()

	placed := m.Piece
	if m.Promotion != NoPieceType {
		placed = Piece{Type: m.Promotion, Color: m.Piece.Color}
	}
	b.ClearPiece(m.FromSquare)
	b.SetPiece(m.ToSquare, placed)

	newCastling := weakenCastling(prior, m)

	var clock uint
	if m.Capture != NoPiece {
		clock = 0
	} else {
		clock = priorClock + 1
	}

	newEnPassant := NoSquare
	if !m.IsEnPassant() {
		newEnPassant = m.EnPassantSquare
	}

	b.stateHistory = append(b.stateHistory, GameState{
		EnPassant:     newEnPassant,
		Castling:      newCastling,
		HalfMoveClock: clock,
	})

	if m.IsEnPassant() {
		b.ClearPiece(m.EnPassantSquare)
	}

	if m.IsCastle() {
		rook := b.Piece(m.CastlingRookFrom)
		b.ClearPiece(m.CastlingRookFrom)
		b.SetPiece(m.CastlingRookTo, rook)
	}
}

// weakenCastling computes the castling rights after m, starting from prior.
// A king move clears both of that color's rights. A rook move from its
// home square clears the matching side. A rook captured on its home
// square without ever having moved does not clear that side's right; the
// right then refers to a square no rook of that color occupies. Castling
// move generation does not check for the rook, so such a right can still
// produce a castling move, which then moves whatever stands on the rook's
// home square, if anything.
func weakenCastling(prior CastlingRights, m Move) CastlingRights {
	c := prior
	switch m.Piece {
	case WhiteKing:
		c.WhiteKingSide = false
		c.WhiteQueenSide = false
	case BlackKing:
		c.BlackKingSide = false
		c.BlackQueenSide = false
	case WhiteRook:
		if m.FromSquare == A1 {
			c.WhiteQueenSide = false
		} else if m.FromSquare == H1 {
			c.WhiteKingSide = false
		}
	case BlackRook:
		if m.FromSquare == A8 {
			c.BlackQueenSide = false
		} else if m.FromSquare == H8 {
			c.BlackKingSide = false
		}
	}
	return c
}

// Undo is the exact inverse of Apply(m): the move most recently applied
// must be passed back in to reverse it. The round trip Undo(Apply(m)) is
// bytewise reversible over the entire board, including the state-history
// stack (invariant iv).
func (b *Board) Undo(m Move) {
	if len(b.stateHistory) <= 1 {
		panic("chess: undo called with empty state history")
	}

	if m.IsCastle() {
		rook := b.Piece(m.CastlingRookTo)
		b.ClearPiece(m.CastlingRookTo)
		b.SetPiece(m.CastlingRookFrom, rook)
	}

	if m.IsEnPassant() {
		b.ClearPiece(m.ToSquare)
		b.SetPiece(m.EnPassantSquare, Piece{Type: Pawn, Color: m.Piece.Color.Opposite()})
	} else {
		b.ClearPiece(m.ToSquare)
		b.SetPiece(m.ToSquare, m.Capture)
	}
	b.SetPiece(m.FromSquare, m.Piece)

	b.stateHistory = b.stateHistory[:len(b.stateHistory)-1]

	b.sideToMove = b.sideToMove.Opposite()
	if m.Piece.Color == Black {
		b.fullMove--
	}
}
