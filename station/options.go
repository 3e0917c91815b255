package station

import (
	"io"

	"github.com/signalsfoundry/orbitron-station/internal/logging"
	"github.com/signalsfoundry/orbitron-station/model"
)

// MetricsRecorder receives station events for Prometheus-friendly metrics.
type MetricsRecorder interface {
	RecordLockdownAttempt(success bool)
	SetLockdownActive(active bool)
	SetResearchSamples(n int)
	SetOxygenLevel(level int)
	RecordOxygenCheck(status model.OxygenStatus)
	RecordTaskAssignment(kind model.ModuleKind)
	RecordMissionQuery(query, outcome string)
}

type noopMetrics struct{}

func (noopMetrics) RecordLockdownAttempt(bool)            {}
func (noopMetrics) SetLockdownActive(bool)                {}
func (noopMetrics) SetResearchSamples(int)                {}
func (noopMetrics) SetOxygenLevel(int)                    {}
func (noopMetrics) RecordOxygenCheck(model.OxygenStatus)  {}
func (noopMetrics) RecordTaskAssignment(model.ModuleKind) {}
func (noopMetrics) RecordMissionQuery(string, string)     {}

// env carries the collaborators every component writes to.
type env struct {
	console *Console
	log     logging.Logger
	metrics MetricsRecorder
}

// Option customises a station or mission control at construction.
type Option func(*env)

// WithOutput directs console lines to w.
func WithOutput(w io.Writer) Option {
	return func(e *env) {
		e.console = NewConsole(w)
	}
}

// WithLogger attaches a structured logger for operational events.
func WithLogger(l logging.Logger) Option {
	return func(e *env) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetricsRecorder attaches an optional metrics recorder.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(e *env) {
		if m != nil {
			e.metrics = m
		}
	}
}

func newEnv(opts []Option) *env {
	e := &env{
		log:     logging.Noop(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.console == nil {
		e.console = NewConsole(nil)
	}
	return e
}
