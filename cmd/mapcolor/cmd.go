package mapcolor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/options"
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func NewMapColorCommand() *cobra.Command {
	strategy := &options.Strategy{}
	cmd := &cobra.Command{
		Use:   "mapcolor",
		Short: "Colors the Australia map with three colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(strategy)
		},
	}
	strategy.Bind(cmd)
	return cmd
}

func solve(strategy *options.Strategy) error {
	model, err := NewAustralia()
	if err != nil {
		return err
	}

	so, err := solver.New[string](strategy.Config())
	if err != nil {
		return err
	}

	solution, metrics, err := so.Solve(model)
	switch {
	case errors.Is(err, csp.ErrNoSolution):
		fmt.Println("no solution found")
	case err != nil:
		return err
	default:
		regions := make([]string, 0, len(solution))
		for region := range solution {
			regions = append(regions, string(region))
		}
		sort.Strings(regions)
		for _, region := range regions {
			fmt.Printf("%-4s %s\n", region, solution[csp.Identifier(region)])
		}
	}

	options.PrintMetrics(metrics)
	return nil
}
