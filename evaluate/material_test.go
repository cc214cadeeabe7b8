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

import (
	"testing"

	"github.com/brighamskarda/checkmatier"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b := &chess.Board{}
	if err := b.UnmarshalText([]byte(fen)); err != nil {
		t.Fatalf("unmarshal %q: unexpected error: %v", fen, err)
	}
	return b
}

func TestMaterialName(t *testing.T) {
	if (Material{}).Name() != "material" {
		t.Errorf("expected name %q, got %q", "material", (Material{}).Name())
	}
}

func TestMaterialEqualArmiesIsZero(t *testing.T) {
	b := mustBoard(t, chess.StartPosFEN)
	if got := (Material{}).Evaluate(b); got != 0 {
		t.Errorf("expected 0 for the starting position, got %d", got)
	}
}

// TestMaterialEndToEndCapture checks that, with White to move and an
// undefended black queen capturable by a white rook, the material
// evaluator scores the position in White's favor once the capture is made:
// -400 for White before (queen against rook), -500 for Black, now to move
// and down a rook, after.
func TestMaterialEndToEndCapture(t *testing.T) {
	b := mustBoard(t, "4K3/8/8/8/3Q4/8/8/3rk3 w - - 0 1")
	before := (Material{}).Evaluate(b)
	if before != -400 {
		t.Fatalf("expected -400 for White to move with a rook against a queen, got %d", before)
	}

	m, ok := b.AlgebraicLookup("d1d4")
	if !ok {
		t.Fatal("d1d4 should be a legal rook capture of the queen")
	}
	b.Apply(m)

	after := (Material{}).Evaluate(b)
	if after != -500 {
		t.Errorf("expected -500 for Black, to move and down a rook after losing the queen, got %d", after)
	}
}

func TestMaterialFavorsSideToMove(t *testing.T) {
	// White is up a rook. With White to move the score favors White
	// (positive); with Black to move the same raw imbalance favors White
	// by the same raw magnitude, but the reported score (which tracks the
	// mover) is negative.
	whiteToMove := mustBoard(t, "4K3/8/8/8/8/8/8/r3k3 w - - 0 1")
	blackToMove := mustBoard(t, "4K3/8/8/8/8/8/8/r3k3 b - - 0 1")

	white := (Material{}).Evaluate(whiteToMove)
	black := (Material{}).Evaluate(blackToMove)

	if white <= 0 {
		t.Errorf("expected a positive score with White to move and up a rook, got %d", white)
	}
	if black >= 0 {
		t.Errorf("expected a negative score with Black to move while White is up a rook, got %d", black)
	}
	if white != -black {
		t.Errorf("raw imbalance should flip sign with the mover, got white=%d black=%d", white, black)
	}
}

func TestForWhiteIsTurnInvariant(t *testing.T) {
	whiteToMove := mustBoard(t, "4K3/8/8/8/8/8/8/r3k3 w - - 0 1")
	blackToMove := mustBoard(t, "4K3/8/8/8/8/8/8/r3k3 b - - 0 1")

	a := ForWhite(Material{}, whiteToMove)
	b := ForWhite(Material{}, blackToMove)
	if a != b {
		t.Errorf("ForWhite should be invariant to whose turn it is for the same material imbalance, got %d and %d", a, b)
	}
	if a <= 0 {
		t.Errorf("expected ForWhite to favor White when White is up a rook, got %d", a)
	}
}
