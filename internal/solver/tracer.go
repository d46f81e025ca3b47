package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// LoggingTracer renders search events through a logrus entry. Progress
// snapshots log at info level; expansion, backtrack and inference-failure
// events are debug noise and only logged when the entry's level allows it.
type LoggingTracer struct {
	Logger *logrus.Entry
}

// NewLoggingTracer returns a tracer writing to the given logger, falling
// back to the logrus standard logger when nil.
func NewLoggingTracer(logger *logrus.Entry) LoggingTracer {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return LoggingTracer{Logger: logger}
}

func (t LoggingTracer) Trace(p csp.SearchPosition) {
	switch p.Event() {
	case csp.EventProgress:
		t.Logger.WithFields(logrus.Fields{
			"attempts":     p.Attempts(),
			"depth":        p.Depth(),
			"filled":       p.PercentAssigned(),
			"rate":         p.AttemptsPerSecond(),
			"heuristics":   p.HeuristicFlags(),
			"inference":    p.InferenceFlags(),
			"elapsed_secs": p.Elapsed().Seconds(),
		}).Info("search progress")
	default:
		if t.Logger.Logger.IsLevelEnabled(logrus.DebugLevel) {
			t.Logger.WithFields(logrus.Fields{
				"attempts": p.Attempts(),
				"depth":    p.Depth(),
				"assigned": p.Assigned(),
			}).Debug(p.Event().String())
		}
	}
}
