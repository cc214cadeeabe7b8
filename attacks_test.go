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

func TestAttackersSlidingPiece(t *testing.T) {
	b := &Board{}
	if err := b.UnmarshalText([]byte("8/8/8/3Q4/8/8/8/K6k w - - 0 1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attackers := b.Attackers(D1, Black)
	if len(attackers) != 1 || attackers[0].Square != D5 {
		t.Errorf("expected a single attacker on d5, got %+v", attackers)
	}
}

func TestAttackersSlidingPieceBlocked(t *testing.T) {
	b := &Board{}
	if err := b.UnmarshalText([]byte("8/8/8/3Q4/3p4/8/8/K6k w - - 0 1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.IsSquareAttacked(D1, Black) {
		t.Error("the white pawn on d4 should block the queen's attack on d1")
	}
}

func TestAttackersKnight(t *testing.T) {
	b := &Board{}
	if err := b.UnmarshalText([]byte("8/8/8/8/2N5/8/8/K6k w - - 0 1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.IsSquareAttacked(E3, Black) {
		t.Error("expected the knight on c4 to attack e3")
	}
	if !b.IsSquareAttacked(A3, Black) {
		t.Error("expected the knight on c4 to attack a3")
	}
}

func TestAttackersPawnOrientedByAttackedColor(t *testing.T) {
	b := &Board{}
	if err := b.UnmarshalText([]byte("8/8/8/4P3/8/8/8/K6k w - - 0 1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A black pawn on e5 attacks d4 and f4, not d6/f6.
	if !b.IsSquareAttacked(D4, Black) {
		t.Error("expected the black pawn on e5 to attack d4")
	}
	if !b.IsSquareAttacked(F4, Black) {
		t.Error("expected the black pawn on e5 to attack f4")
	}
	if b.IsSquareAttacked(D6, Black) {
		t.Error("a black pawn attacks toward White, not behind itself")
	}
}

func TestAttackersKing(t *testing.T) {
	b := &Board{}
	if err := b.UnmarshalText([]byte("8/8/8/8/8/8/4K3/K6k w - - 0 1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.IsSquareAttacked(E1, Black) {
		t.Error("expected the king on e2 to attack e1")
	}
}

// TestAttackersMatchesPseudoLegalDestinations exercises a universal
// invariant: for all squares s and colors c, attackers(s, c) is non-empty
// iff some piece of color c has s in its pseudo-legal destination set.
func TestAttackersMatchesPseudoLegalDestinations(t *testing.T) {
	positions := []string{
		StartPosFEN,
		"R3K2R/8/8/8/8/8/8/4r2r b KQkq - 0 1",
		"RNBQKBNR/PPPPPPPP/8/8/4p3/8/pppp1ppp/rnbqkbnr b KQkq e3 0 1",
		"8/p7/8/8/8/8/8/K6k w - - 0 1",
	}
	for _, fen := range positions {
		b := &Board{}
		if err := b.UnmarshalText([]byte(fen)); err != nil {
			t.Fatalf("unmarshal %q: unexpected error: %v", fen, err)
		}
		for _, color := range []Color{White, Black} {
			for _, s := range AllSquares {
				// "Treating s as occupied by the opposite color": stand a
				// hypothetical enemy pawn on s and check whether color's
				// pseudo-legal moves can reach it. The occupant's kind does
				// not matter to any attacker (pawn captures are color-only,
				// geometric attackers care only about the target's color).
				bc := b.Copy()
				bc.SetPiece(s, Piece{Type: Pawn, Color: color.Opposite()})
				reachable := false
				for _, m := range bc.PseudoLegalMoves(color) {
					if m.ToSquare == s {
						reachable = true
						break
					}
				}
				attacked := b.IsSquareAttacked(s, color)
				if attacked != reachable {
					t.Errorf("%q: square %v color %v: attacked=%v reachable=%v",
						fen, s, color, attacked, reachable)
				}
			}
		}
	}
}
