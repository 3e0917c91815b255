package station

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/signalsfoundry/orbitron-station/model"
	"golang.org/x/crypto/bcrypt"
)

const notConnected = "No connection to OrbitronSpaceStation."

func TestMissionControlDisconnected(t *testing.T) {
	var buf bytes.Buffer
	metrics := newStubMetrics()
	mc := NewMissionControl(WithOutput(&buf), WithMetricsRecorder(metrics))
	ctx := context.Background()

	if mc.Connected() {
		t.Fatalf("new mission control reports connected")
	}
	if mc.RequestControlCenterStatus(ctx) {
		t.Fatalf("control center status succeeded while disconnected")
	}
	if _, ok := mc.RequestOxygenStatus(ctx); ok {
		t.Fatalf("oxygen status succeeded while disconnected")
	}
	if got := mc.RequestDroneStatus(ctx, "Research Lab"); got != DroneStatusNotConnected {
		t.Fatalf("RequestDroneStatus = %v, want not connected", got)
	}
	if mc.RelayLockdown(ctx, testSecurityCode) {
		t.Fatalf("lockdown relayed while disconnected")
	}
	assertLines(t, &buf, notConnected, notConnected, notConnected, notConnected)

	for _, q := range []string{queryControlCenter, queryOxygen, queryDrone, queryLockdown} {
		if metrics.queries[q+"/"+outcomeNotConnected] != 1 {
			t.Fatalf("query %s not recorded as not connected: %v", q, metrics.queries)
		}
	}
}

func TestMissionControlConnectedQueries(t *testing.T) {
	s, buf := newTestStation(t, 15)
	mc := NewMissionControl(WithOutput(buf))
	ctx := context.Background()

	mc.ConnectToStation(ctx, s)
	if !mc.Connected() {
		t.Fatalf("expected connected")
	}
	assertLines(t, buf, "Connected to OrbitronSpaceStation.")

	if !mc.RequestControlCenterStatus(ctx) {
		t.Fatalf("RequestControlCenterStatus failed")
	}
	assertLines(t, buf, "Control Center Status:", "Module Name: Control Center", "Is Locked Down: false")

	status, ok := mc.RequestOxygenStatus(ctx)
	if !ok || status != model.OxygenCaution {
		t.Fatalf("RequestOxygenStatus = %v, %v; want caution", status, ok)
	}
	assertLines(t, buf,
		"Life Support System Oxygen Status:",
		"Caution: Low oxygen level. Take necessary precautions.",
	)
}

func TestMissionControlDroneStatus(t *testing.T) {
	s, buf := newTestStation(t, 80)
	mc := NewMissionControl(WithOutput(buf))
	ctx := context.Background()
	mc.ConnectToStation(ctx, s)
	lines(buf)

	if got := mc.RequestDroneStatus(ctx, "Research Lab"); got != DroneStatusReported {
		t.Fatalf("RequestDroneStatus = %v, want reported", got)
	}
	assertLines(t, buf, "ResearchLabDrone is not currently assigned any task.")

	s.ResearchLab().Drone().AssignTask(ctx, "Analyze Research Samples")
	mc.RequestDroneStatus(ctx, "Research Lab")
	assertLines(t, buf, "ResearchLabDrone is currently working on: Analyze Research Samples")

	if got := mc.RequestDroneStatus(ctx, "Cargo Bay"); got != DroneStatusModuleNotFound {
		t.Fatalf("RequestDroneStatus(Cargo Bay) = %v, want module not found", got)
	}
	assertLines(t, buf, "Module Cargo Bay not found in OrbitronSpaceStation.")

	if got := mc.RequestDroneStatus(ctx, "research lab"); got != DroneStatusModuleNotFound {
		t.Fatalf("lookup must be case-sensitive, got %v", got)
	}
	lines(buf)

	s.LifeSupport().SetDrone(nil)
	if got := mc.RequestDroneStatus(ctx, "Life Support System"); got != DroneStatusNoDrone {
		t.Fatalf("RequestDroneStatus = %v, want no drone", got)
	}
	assertLines(t, buf, "No drone assigned to Life Support System.")
}

func TestMissionControlLockdownObservable(t *testing.T) {
	metrics := newStubMetrics()
	s, buf := newTestStation(t, 80, WithMetricsRecorder(metrics))
	mc := NewMissionControl(WithOutput(buf), WithMetricsRecorder(metrics))
	ctx := context.Background()
	mc.ConnectToStation(ctx, s)
	lines(buf)

	if mc.RelayLockdown(ctx, "IncorrectPassword") {
		t.Fatalf("relay with wrong password succeeded")
	}
	mc.RequestControlCenterStatus(ctx)
	assertLines(t, buf,
		"Incorrect password. Lockdown failed.",
		"Control Center Status:",
		"Module Name: Control Center",
		"Is Locked Down: false",
	)

	if !mc.RelayLockdown(ctx, testSecurityCode) {
		t.Fatalf("relay with security code failed")
	}
	mc.RequestControlCenterStatus(ctx)
	assertLines(t, buf,
		"Control Center is now locked down.",
		"This is sensitive information accessible only under lockdown.",
		"Control Center Status:",
		"Module Name: Control Center",
		"Is Locked Down: true",
	)

	if metrics.queries[queryLockdown+"/failure"] != 1 || metrics.queries[queryLockdown+"/success"] != 1 {
		t.Fatalf("lockdown queries = %v", metrics.queries)
	}
}

func TestConnectLinksDrones(t *testing.T) {
	s, _ := newTestStation(t, 80)
	for _, d := range s.Drones() {
		if d.MissionControl() != nil {
			t.Fatalf("drone %q linked before connect", d.Name())
		}
	}

	mc := NewMissionControl(WithOutput(&bytes.Buffer{}))
	mc.ConnectToStation(context.Background(), s)
	for _, d := range s.Drones() {
		if d.MissionControl() != mc {
			t.Fatalf("drone %q not linked to mission control", d.Name())
		}
	}
	runtime.KeepAlive(mc)
}

func TestConnectNilStation(t *testing.T) {
	var buf bytes.Buffer
	mc := NewMissionControl(WithOutput(&buf))
	mc.ConnectToStation(context.Background(), nil)
	if mc.Connected() {
		t.Fatalf("connected to nil station")
	}
	assertLines(t, &buf, notConnected)
}

func TestMissionControlTreatsCollectedStationAsDisconnected(t *testing.T) {
	var buf bytes.Buffer
	mc := NewMissionControl(WithOutput(&buf))

	func() {
		s, err := New(context.Background(), Config{
			SecurityCode: testSecurityCode,
			OxygenLevel:  80,
			BcryptCost:   bcrypt.MinCost,
		}, WithOutput(&bytes.Buffer{}))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		mc.ConnectToStation(context.Background(), s)
	}()

	for i := 0; i < 10 && mc.Connected(); i++ {
		runtime.GC()
	}
	if mc.Connected() {
		t.Fatalf("mission control kept the station alive")
	}

	lines(&buf)
	if _, ok := mc.RequestOxygenStatus(context.Background()); ok {
		t.Fatalf("oxygen status succeeded after station was collected")
	}
	assertLines(t, &buf, notConnected)
}
