package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hexcube",
	Short: "Generate, validate and serve 16×16×16 hexadecimal Sudoku cubes",
	Long: `hexcube is the engine behind the Hex-Do-Cube puzzle: a 16×16×16 grid
where every row, column, beam and 4×4 sub-square on all three faces must
hold each hex digit exactly once.

Commands generate puzzles (randomized backtracking or the instant
algebraic construction), validate puzzle documents against all 1536
constraint groups, and serve the engine as a JSON API.`,
	SilenceUsage: true,
}
