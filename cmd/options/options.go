// Package options holds the strategy flags shared by the demo commands.
package options

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	internalsolver "github.com/constraint-framework/backtrack/internal/solver"
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

// Strategy collects the solver configuration flags.
type Strategy struct {
	Selection   string
	Ordering    string
	Inference   []string
	Progress    int64
	MaxAttempts int64
	Verbose     bool
}

// Bind registers the strategy flags on cmd. Fields set before the call
// become the flag defaults, so commands can ship their own presets.
func (s *Strategy) Bind(cmd *cobra.Command) {
	if s.Selection == "" {
		s.Selection = "static"
	}
	if s.Ordering == "" {
		s.Ordering = "natural"
	}
	flags := cmd.Flags()
	flags.StringVar(&s.Selection, "selection", s.Selection, "variable selection: static|mrv|degree|mrv+degree")
	flags.StringVar(&s.Ordering, "ordering", s.Ordering, "value ordering: natural|lcv")
	flags.StringSliceVar(&s.Inference, "inference", s.Inference, "inference techniques: forward_checking,constraint_propagation,arc_consistency")
	flags.Int64Var(&s.Progress, "progress", 0, "log a progress snapshot every N attempts (0 disables)")
	flags.Int64Var(&s.MaxAttempts, "max-attempts", 0, "abort after N attempts (0 means unbounded)")
	flags.BoolVarP(&s.Verbose, "verbose", "v", false, "log every search event")
}

// Config translates the flags into a solver configuration. Name validation
// happens in solver.New.
func (s *Strategy) Config() solver.Config {
	cfg := solver.Config{
		VariableSelection: s.Selection,
		ValueOrdering:     s.Ordering,
		Inference:         s.Inference,
		ProgressInterval:  s.Progress,
		MaxAttempts:       s.MaxAttempts,
	}
	if s.Progress > 0 || s.Verbose {
		logger := logrus.New()
		if s.Verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		cfg.Tracer = internalsolver.NewLoggingTracer(logrus.NewEntry(logger))
	}
	return cfg
}

// PrintMetrics writes the metrics record in a stable order.
func PrintMetrics(metrics *csp.Metrics) {
	fields := metrics.Fields()
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	fmt.Println("metrics:")
	for _, key := range keys {
		fmt.Printf("  %s: %v\n", key, fields[key])
	}
}
