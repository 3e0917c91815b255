package station

import (
	"context"
	"weak"

	"github.com/signalsfoundry/orbitron-station/internal/logging"
)

// Drone is a named worker hosted by exactly one module. Its task is optional
// and may change at any time; its name and module never do.
type Drone struct {
	name    string
	task    string
	hasTask bool

	// module is the owning module. The station owns both, so the pointer
	// is valid for the drone's whole lifetime.
	module StationModule

	// mission is set when a mission control connects to the station. It is
	// weak: the drone never keeps mission control alive.
	mission weak.Pointer[MissionControl]

	env *env
}

func newDrone(name string, module StationModule, e *env) *Drone {
	return &Drone{
		name:   name,
		module: module,
		env:    e,
	}
}

func (d *Drone) Name() string { return d.name }

// Module returns the module that hosts this drone.
func (d *Drone) Module() StationModule { return d.module }

// Task returns the current task and whether one is assigned.
func (d *Drone) Task() (string, bool) { return d.task, d.hasTask }

// MissionControl returns the mission control linked to this drone, or nil
// when none has connected or it has since been collected.
func (d *Drone) MissionControl() *MissionControl {
	return d.mission.Value()
}

func (d *Drone) linkMissionControl(mc *MissionControl) {
	d.mission = weak.Make(mc)
}

// AssignTask replaces the drone's current task.
func (d *Drone) AssignTask(ctx context.Context, task string) {
	d.task = task
	d.hasTask = true
	d.env.log.Info(ctx, "drone task assigned",
		logging.String("drone", d.name),
		logging.String("module", d.module.Name()),
		logging.String("task", task),
	)
	d.env.metrics.RecordTaskAssignment(d.module.Kind())
}

// ClearTask returns the drone to the unassigned state.
func (d *Drone) ClearTask(ctx context.Context) {
	d.task = ""
	d.hasTask = false
	d.env.log.Info(ctx, "drone task cleared", logging.String("drone", d.name))
}

func (d *Drone) ReceiveBag() {
	d.env.console.Printf("%s received a bag.", d.name)
}

// ReportTaskStatus prints the current task, or that the drone is unassigned,
// and returns the same information.
func (d *Drone) ReportTaskStatus() (string, bool) {
	if d.hasTask {
		d.env.console.Printf("%s is currently working on: %s", d.name, d.task)
	} else {
		d.env.console.Printf("%s is not currently assigned any task.", d.name)
	}
	return d.task, d.hasTask
}
