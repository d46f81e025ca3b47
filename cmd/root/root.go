package root

import (
	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/dimacs"
	"github.com/constraint-framework/backtrack/cmd/mapcolor"
	"github.com/constraint-framework/backtrack/cmd/nqueens"
	"github.com/constraint-framework/backtrack/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "backtrack",
		Short: "Backtrack is an open-source CSP solver framework",
		Long: `An open-source constraint satisfaction solver framework written in Go:
a backtracking engine with pluggable heuristics (MRV, degree, LCV) and
composable inference (forward checking, propagation, arc consistency).`,
	}

	// add sub-commands
	rootCmd.AddCommand(mapcolor.NewMapColorCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())
	rootCmd.AddCommand(nqueens.NewNQueensCommand())
	rootCmd.AddCommand(dimacs.NewDimacsCommand())

	return rootCmd
}
