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

// Command perft counts the legal move tree below a position to a given
// depth and prints a node-count table, one row per depth from 1 up to the
// requested maximum.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/brighamskarda/checkmatier"
	"github.com/spf13/cobra"
)

// expectedNodes holds the known node counts from the standard starting
// position, indexed by depth, for comparison when no FEN override is given.
var expectedNodes = []uint64{1, 20, 400, 8902, 197281, 4865609, 119060324, 3195901860}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fen string

	cmd := &cobra.Command{
		Use:   "perft <depth>",
		Short: "Count legal move tree nodes from a position to a given depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := strconv.Atoi(args[0])
			if err != nil || depth < 1 {
				return fmt.Errorf("perft: depth must be a positive integer, got %q", args[0])
			}

			b := chess.NewBoard()
			isStartPos := fen == ""
			if !isStartPos {
				b = &chess.Board{}
				if err := b.UnmarshalText([]byte(fen)); err != nil {
					return fmt.Errorf("perft: invalid fen: %w", err)
				}
			}

			runPerft(cmd.OutOrStdout(), b, depth, isStartPos)
			return nil
		},
	}

	cmd.Flags().StringVar(&fen, "fen", "", "position to search from, in the engine's position notation (defaults to the standard starting position)")
	return cmd
}

func runPerft(w io.Writer, b *chess.Board, maxDepth int, compareExpected bool) {
	if compareExpected {
		fmt.Fprintln(w, "| Depth | Nodes      | Time (ms) | Expected   | Difference  |")
		fmt.Fprintln(w, "|:-----:|-----------:|----------:|-----------:|------------:|")
	} else {
		fmt.Fprintln(w, "| Depth | Nodes      | Time (ms) |")
		fmt.Fprintln(w, "|:-----:|-----------:|----------:|")
	}

	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		nodes := perft(b, depth)
		elapsed := time.Since(start).Milliseconds()

		if compareExpected {
			var expected uint64
			if depth < len(expectedNodes) {
				expected = expectedNodes[depth]
			}
			diff := int64(nodes) - int64(expected)
			fmt.Fprintf(w, "| %5d | %10d | %9d | %10d | %+11d |\n", depth, nodes, elapsed, expected, diff)
		} else {
			fmt.Fprintf(w, "| %5d | %10d | %9d |\n", depth, nodes, elapsed)
		}
	}
}

func perft(b *chess.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, m := range moves {
		b.Apply(m)
		total += perft(b, depth-1)
		b.Undo(m)
	}
	return total
}
