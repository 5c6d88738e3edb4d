package history

import "log/slog"

// LogObserver logs each calculation through a slog.Logger.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver creates an observer that logs records to log. If log is
// nil, the default logger is used.
func NewLogObserver(log *slog.Logger) *LogObserver {
	if log == nil {
		log = slog.Default()
	}
	return &LogObserver{log: log}
}

// Notify implements Observer.
func (o *LogObserver) Notify(rec Record) {
	o.log.Info("calculation", "input", rec.Input, "result", rec.Result)
}
