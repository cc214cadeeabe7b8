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
	"strings"

	"github.com/brighamskarda/checkmatier"
)

// Sum composes several evaluators by adding their raw Evaluate scores.
// Children are summed directly, not through ForWhite, since every child
// already reports relative to the same side to move.
type Sum struct {
	Evaluators []Evaluator
}

func (s Sum) Name() string {
	names := make([]string, len(s.Evaluators))
	for i, e := range s.Evaluators {
		names[i] = e.Name()
	}
	return "sum(" + strings.Join(names, ",") + ")"
}

func (s Sum) Evaluate(b *chess.Board) int {
	total := 0
	for _, e := range s.Evaluators {
		total += e.Evaluate(b)
	}
	return total
}
