package main

import (
	"context"

	"github.com/signalsfoundry/orbitron-station/model"
	"github.com/signalsfoundry/orbitron-station/station"
)

// Tasks handed to the drones, in station order.
var droneTasks = []string{
	"Monitor Communications",
	"Analyze Research Samples",
	"Monitor Oxygen Levels",
}

// runScenario drives one pass over the station: status reports before and
// after tasking, a research run, the oxygen check, and the lockdown sequence
// (a rejected attempt at the station, then the real security code relayed
// by mission control).
func runScenario(ctx context.Context, s *station.OrbitronSpaceStation, mc *station.MissionControl, securityCode string) {
	for _, d := range s.Drones() {
		d.ReportTaskStatus()
	}

	mc.ConnectToStation(ctx, s)
	mc.RequestControlCenterStatus(ctx)

	for i, d := range s.Drones() {
		d.AssignTask(ctx, droneTasks[i])
	}
	for _, d := range s.Drones() {
		d.ReportTaskStatus()
	}

	for _, kind := range model.ModuleKinds {
		mc.RequestDroneStatus(ctx, kind.DisplayName())
	}
	mc.RequestDroneStatus(ctx, "Cargo Bay")

	for _, m := range s.Modules() {
		m.GiveDroneABag()
	}

	s.ResearchLab().AddSample(ctx, "Regolith-001")
	s.ResearchLab().AddSample(ctx, "Microbial-Culture-A")

	mc.RequestOxygenStatus(ctx)

	s.InitiateLockdown(ctx, "IncorrectPassword")
	mc.RequestControlCenterStatus(ctx)

	mc.RelayLockdown(ctx, securityCode)
	mc.RequestControlCenterStatus(ctx)
}
