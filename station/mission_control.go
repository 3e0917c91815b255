package station

import (
	"context"
	"weak"

	"github.com/signalsfoundry/orbitron-station/internal/logging"
	"github.com/signalsfoundry/orbitron-station/internal/observability"
	"github.com/signalsfoundry/orbitron-station/model"
	"go.opentelemetry.io/otel/attribute"
)

// Query labels used in logs and metrics.
const (
	queryControlCenter = "control_center_status"
	queryOxygen        = "oxygen_status"
	queryDrone         = "drone_status"
	queryLockdown      = "lockdown"
)

// Outcome labels for mission control queries beyond success/failure.
const (
	outcomeNotConnected   = "not_connected"
	outcomeNoDrone        = "no_drone"
	outcomeModuleNotFound = "module_not_found"
)

// DroneStatusResult tells callers which branch RequestDroneStatus took.
type DroneStatusResult int

const (
	DroneStatusNotConnected DroneStatusResult = iota
	DroneStatusReported
	DroneStatusNoDrone
	DroneStatusModuleNotFound
)

func (r DroneStatusResult) String() string {
	switch r {
	case DroneStatusReported:
		return observability.OutcomeSuccess
	case DroneStatusNoDrone:
		return outcomeNoDrone
	case DroneStatusModuleNotFound:
		return outcomeModuleNotFound
	default:
		return outcomeNotConnected
	}
}

// MissionControl observes a station from outside. It starts disconnected and
// becomes connected through ConnectToStation; there is no disconnect. The
// station reference is weak, so once the station is collected every query
// behaves as if mission control had never connected.
type MissionControl struct {
	station weak.Pointer[OrbitronSpaceStation]
	env     *env
}

// NewMissionControl returns a disconnected mission control.
func NewMissionControl(opts ...Option) *MissionControl {
	return &MissionControl{env: newEnv(opts)}
}

// Connected reports whether the connected station is still alive.
func (mc *MissionControl) Connected() bool {
	return mc.current() != nil
}

func (mc *MissionControl) current() *OrbitronSpaceStation {
	return mc.station.Value()
}

// ConnectToStation attaches mission control to s and links s's drones back to
// it. Connecting again replaces the previous station.
func (mc *MissionControl) ConnectToStation(ctx context.Context, s *OrbitronSpaceStation) {
	if s == nil {
		mc.env.console.Println("No connection to OrbitronSpaceStation.")
		return
	}
	mc.station = weak.Make(s)
	for _, d := range s.drones {
		d.linkMissionControl(mc)
	}
	mc.env.console.Println("Connected to OrbitronSpaceStation.")
	mc.env.log.Info(ctx, "mission control connected", logging.Int("drones", len(s.drones)))
}

// RequestControlCenterStatus prints the control center's name and lockdown
// flag. It reports false when not connected.
func (mc *MissionControl) RequestControlCenterStatus(ctx context.Context) bool {
	ctx, log := logging.WithRequestLogger(ctx, mc.env.log)
	ctx, span := observability.StartSpan(ctx, "MissionControl/RequestControlCenterStatus")
	defer span.End()

	s := mc.current()
	if s == nil {
		mc.notConnected(ctx, log, queryControlCenter)
		return false
	}

	cc := s.ControlCenter()
	mc.env.console.Println("Control Center Status:")
	mc.env.console.Printf("Module Name: %s", cc.Name())
	mc.env.console.Printf("Is Locked Down: %t", cc.IsLockedDown())

	span.SetAttributes(attribute.Bool("locked_down", cc.IsLockedDown()))
	mc.done(ctx, log, queryControlCenter, observability.OutcomeSuccess)
	return true
}

// RequestOxygenStatus runs the life support oxygen check. The bool is false
// when not connected, in which case the status is meaningless.
func (mc *MissionControl) RequestOxygenStatus(ctx context.Context) (model.OxygenStatus, bool) {
	ctx, log := logging.WithRequestLogger(ctx, mc.env.log)
	ctx, span := observability.StartSpan(ctx, "MissionControl/RequestOxygenStatus")
	defer span.End()

	s := mc.current()
	if s == nil {
		mc.notConnected(ctx, log, queryOxygen)
		return model.OxygenInvalid, false
	}

	mc.env.console.Println("Life Support System Oxygen Status:")
	status := s.LifeSupport().CheckOxygenStatus()

	span.SetAttributes(attribute.String("oxygen_status", status.String()))
	mc.done(ctx, log, queryOxygen, observability.OutcomeSuccess)
	return status, true
}

// RequestDroneStatus asks the drone in the named module for its task report.
func (mc *MissionControl) RequestDroneStatus(ctx context.Context, moduleName string) DroneStatusResult {
	ctx, log := logging.WithRequestLogger(ctx, mc.env.log)
	ctx, span := observability.StartSpan(ctx, "MissionControl/RequestDroneStatus",
		attribute.String("module", moduleName),
	)
	defer span.End()

	s := mc.current()
	if s == nil {
		mc.notConnected(ctx, log, queryDrone)
		return DroneStatusNotConnected
	}

	result := DroneStatusReported
	module, ok := s.ModuleByName(moduleName)
	switch {
	case !ok:
		mc.env.console.Printf("Module %s not found in OrbitronSpaceStation.", moduleName)
		result = DroneStatusModuleNotFound
	case module.Drone() == nil:
		mc.env.console.Printf("No drone assigned to %s.", moduleName)
		result = DroneStatusNoDrone
	default:
		module.Drone().ReportTaskStatus()
	}

	mc.done(ctx, log.With(logging.String("module", moduleName)), queryDrone, result.String())
	return result
}

// RelayLockdown routes a lockdown command through the connected station.
func (mc *MissionControl) RelayLockdown(ctx context.Context, password string) bool {
	ctx, log := logging.WithRequestLogger(ctx, mc.env.log)
	ctx, span := observability.StartSpan(ctx, "MissionControl/RelayLockdown")
	defer span.End()

	s := mc.current()
	if s == nil {
		mc.notConnected(ctx, log, queryLockdown)
		return false
	}

	ok := s.InitiateLockdown(ctx, password)
	outcome := observability.OutcomeFailure
	if ok {
		outcome = observability.OutcomeSuccess
	}
	span.SetAttributes(attribute.Bool("locked_down", s.ControlCenter().IsLockedDown()))
	mc.done(ctx, log, queryLockdown, outcome)
	return ok
}

func (mc *MissionControl) notConnected(ctx context.Context, log logging.Logger, query string) {
	mc.env.console.Println("No connection to OrbitronSpaceStation.")
	mc.done(ctx, log, query, outcomeNotConnected)
}

func (mc *MissionControl) done(ctx context.Context, log logging.Logger, query, outcome string) {
	mc.env.metrics.RecordMissionQuery(query, outcome)
	log.Debug(ctx, "mission control query",
		logging.String("query", query),
		logging.String("outcome", outcome),
	)
}
