package observability

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/signalsfoundry/orbitron-station/model"
)

// Outcome labels shared by the counters below.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// StationCollector bundles Prometheus metrics for the station and its mission
// control surface. It satisfies station.MetricsRecorder.
type StationCollector struct {
	gatherer prometheus.Gatherer

	LockdownAttempts *prometheus.CounterVec
	LockdownActive   prometheus.Gauge
	ResearchSamples  prometheus.Gauge
	OxygenLevel      prometheus.Gauge
	OxygenChecks     *prometheus.CounterVec
	TaskAssignments  *prometheus.CounterVec
	MissionQueries   *prometheus.CounterVec
}

// NewStationCollector registers station metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewStationCollector(reg prometheus.Registerer) (*StationCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	attempts, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "station_lockdown_attempts_total",
		Help: "Control center lockdown attempts, labeled by outcome.",
	}, []string{"outcome"}), "station_lockdown_attempts_total")
	if err != nil {
		return nil, err
	}

	active, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "station_lockdown_active",
		Help: "1 once the control center is locked down, 0 before.",
	}), "station_lockdown_active")
	if err != nil {
		return nil, err
	}

	samples, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "station_research_samples",
		Help: "Number of samples recorded by the research lab.",
	}), "station_research_samples")
	if err != nil {
		return nil, err
	}

	oxygen, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "station_oxygen_level",
		Help: "Oxygen level configured for the life support system.",
	}), "station_oxygen_level")
	if err != nil {
		return nil, err
	}

	checks, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "station_oxygen_checks_total",
		Help: "Oxygen status checks, labeled by resulting classification.",
	}, []string{"status"}), "station_oxygen_checks_total")
	if err != nil {
		return nil, err
	}

	tasks, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "station_task_assignments_total",
		Help: "Drone task assignments, labeled by module.",
	}, []string{"module"}), "station_task_assignments_total")
	if err != nil {
		return nil, err
	}

	queries, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mission_control_queries_total",
		Help: "Mission control requests, labeled by query and outcome.",
	}, []string{"query", "outcome"}), "mission_control_queries_total")
	if err != nil {
		return nil, err
	}

	return &StationCollector{
		gatherer:         gatherer,
		LockdownAttempts: attempts,
		LockdownActive:   active,
		ResearchSamples:  samples,
		OxygenLevel:      oxygen,
		OxygenChecks:     checks,
		TaskAssignments:  tasks,
		MissionQueries:   queries,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *StationCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

func (c *StationCollector) RecordLockdownAttempt(success bool) {
	if c == nil || c.LockdownAttempts == nil {
		return
	}
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	c.LockdownAttempts.WithLabelValues(outcome).Inc()
}

func (c *StationCollector) SetLockdownActive(active bool) {
	if c == nil || c.LockdownActive == nil {
		return
	}
	if active {
		c.LockdownActive.Set(1)
		return
	}
	c.LockdownActive.Set(0)
}

func (c *StationCollector) SetResearchSamples(n int) {
	if c == nil || c.ResearchSamples == nil {
		return
	}
	c.ResearchSamples.Set(float64(n))
}

func (c *StationCollector) SetOxygenLevel(level int) {
	if c == nil || c.OxygenLevel == nil {
		return
	}
	c.OxygenLevel.Set(float64(level))
}

func (c *StationCollector) RecordOxygenCheck(status model.OxygenStatus) {
	if c == nil || c.OxygenChecks == nil {
		return
	}
	c.OxygenChecks.WithLabelValues(status.String()).Inc()
}

func (c *StationCollector) RecordTaskAssignment(kind model.ModuleKind) {
	if c == nil || c.TaskAssignments == nil {
		return
	}
	c.TaskAssignments.WithLabelValues(kind.String()).Inc()
}

func (c *StationCollector) RecordMissionQuery(query, outcome string) {
	if c == nil || c.MissionQueries == nil {
		return
	}
	c.MissionQueries.WithLabelValues(query, outcome).Inc()
}

// WriteText gathers every registered metric family and writes it to w in the
// Prometheus text exposition format.
func (c *StationCollector) WriteText(w io.Writer) error {
	gatherer := c.Gatherer()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
