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

func TestMoveString(t *testing.T) {
	expected := "a1b2"
	actual := Move{FromSquare: A1, ToSquare: B2}.String()
	if expected != actual {
		t.Errorf("incorrect result: expected %q, got %q", expected, actual)
	}

	expected = "h2c1q"
	actual = Move{FromSquare: H2, ToSquare: C1, Promotion: Queen}.String()
	if expected != actual {
		t.Errorf("incorrect result: expected %q, got %q", expected, actual)
	}
}

func TestMoveIsCastle(t *testing.T) {
	m := Move{FromSquare: E1, ToSquare: G1, Piece: WhiteKing, CastlingRookFrom: H1, CastlingRookTo: F1}
	if !m.IsCastle() {
		t.Error("expected IsCastle to be true")
	}
	if (Move{FromSquare: E1, ToSquare: E2}).IsCastle() {
		t.Error("expected IsCastle to be false for a plain king move")
	}
}

func TestMoveIsEnPassant(t *testing.T) {
	doublePush := Move{FromSquare: E2, ToSquare: E4, Piece: WhitePawn, EnPassantSquare: E3}
	if doublePush.IsEnPassant() {
		t.Error("a double push sets EnPassantSquare but not Capture, and is not itself en passant")
	}

	capture := Move{FromSquare: D5, ToSquare: E6, Piece: WhitePawn, Capture: BlackPawn, EnPassantSquare: E5}
	if !capture.IsEnPassant() {
		t.Error("expected IsEnPassant to be true when both Capture and EnPassantSquare are set")
	}
}

func TestMoveIsPromotion(t *testing.T) {
	if !(Move{Promotion: Queen}).IsPromotion() {
		t.Error("expected IsPromotion to be true")
	}
	if (Move{}).IsPromotion() {
		t.Error("expected IsPromotion to be false for NoPieceType")
	}
}

func TestParseUCIMove(t *testing.T) {
	b := NewBoard()
	m, err := ParseUCIMove(b, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.FromSquare != E2 || m.ToSquare != E4 {
		t.Errorf("incorrect result: %+v", m)
	}
}

func TestParseUCIMovePromotion(t *testing.T) {
	b := &Board{}
	if err := b.UnmarshalText([]byte("8/p7/8/8/8/8/8/K6k w - - 0 1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := ParseUCIMove(b, "a7a8q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Promotion != Queen {
		t.Errorf("expected a queen promotion, got %v", m.Promotion)
	}
}

func TestParseUCIMoveMalformed(t *testing.T) {
	b := NewBoard()
	cases := []string{"", "e2", "e2e", "e2e4qq", "z2e4"}
	for _, c := range cases {
		if _, err := ParseUCIMove(b, c); err == nil {
			t.Errorf("expected error parsing %q", c)
		}
	}
}

func TestParseUCIMoveIllegal(t *testing.T) {
	b := NewBoard()
	if _, err := ParseUCIMove(b, "e2e5"); err == nil {
		t.Error("expected error: e2e5 is not a legal move from the start position")
	}
}
