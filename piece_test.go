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

import "testing"

func TestPieceString(t *testing.T) {
	if WhitePawn.String() != "P" {
		t.Errorf("expected %q, got %q", "P", WhitePawn.String())
	}
	if BlackPawn.String() != "p" {
		t.Errorf("expected %q, got %q", "p", BlackPawn.String())
	}
	if BlackBishop.String() != "b" {
		t.Errorf("expected %q, got %q", "b", BlackBishop.String())
	}
	if NoPiece.String() != "-" {
		t.Errorf("expected %q, got %q", "-", NoPiece.String())
	}
}

// fenChar and parseFenChar use the inverted convention: uppercase is Black,
// lowercase is White. String, by contrast, uses the conventional
// White-upper/Black-lower case; the two are deliberately independent.
func TestFenCharInvertedCase(t *testing.T) {
	if got := fenChar(WhitePawn); got != 'p' {
		t.Errorf("fenChar(WhitePawn) = %q, want %q", got, 'p')
	}
	if got := fenChar(BlackPawn); got != 'P' {
		t.Errorf("fenChar(BlackPawn) = %q, want %q", got, 'P')
	}
	if got := fenChar(NoPiece); got != 0 {
		t.Errorf("fenChar(NoPiece) = %d, want 0", got)
	}
}

func TestParseFenChar(t *testing.T) {
	if got := parseFenChar('p'); got != WhitePawn {
		t.Errorf("parseFenChar('p') = %v, want %v", got, WhitePawn)
	}
	if got := parseFenChar('P'); got != BlackPawn {
		t.Errorf("parseFenChar('P') = %v, want %v", got, BlackPawn)
	}
	if got := parseFenChar('x'); got != NoPiece {
		t.Errorf("parseFenChar('x') = %v, want %v", got, NoPiece)
	}
}

func TestFenCharRoundTrip(t *testing.T) {
	pieces := []Piece{WhitePawn, WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing,
		BlackPawn, BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing}
	for _, p := range pieces {
		if got := parseFenChar(fenChar(p)); got != p {
			t.Errorf("round trip of %v gave %v", p, got)
		}
	}
}
