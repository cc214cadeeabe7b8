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
	"strings"
)

// Color can be [NoColor], [White], or [Black].
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case NoColor:
		return "NoColor"
	case White:
		return "White"
	default:
		return "Unknown Color"
	}
}

// Opposite returns Black for White, White for Black, and NoColor for NoColor.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// Sign returns 1 for White and -1 for Black. It is used to orient
// evaluations around White's perspective. NoColor returns 0.
func (c Color) Sign() int {
	switch c {
	case White:
		return 1
	case Black:
		return -1
	default:
		return 0
	}
}

func parseColor(s string) Color {
	switch strings.ToLower(s) {
	case "w":
		return White
	case "b":
		return Black
	default:
		return NoColor
	}
}
