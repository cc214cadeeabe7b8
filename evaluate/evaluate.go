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

// Package evaluate provides pluggable static evaluators for search, and a
// Sum combinator for composing them.
package evaluate

import "github.com/brighamskarda/checkmatier"

// Evaluator scores a position relative to the side to move: positive
// favors the side to move, negative favors its opponent. ForWhite
// reorients the score around White, which is what search compares.
type Evaluator interface {
	Evaluate(b *chess.Board) int
	Name() string
}

// ForWhite multiplies an evaluator's raw score by the side-to-move's sign,
// so the result always favors White when positive, whoever is to move.
func ForWhite(e Evaluator, b *chess.Board) int {
	return e.Evaluate(b) * b.SideToMove().Sign()
}
