package station

import "github.com/signalsfoundry/orbitron-station/model"

// StationModule is the capability shared by every station compartment.
type StationModule interface {
	Name() string
	Kind() model.ModuleKind
	// Drone returns the hosted drone, or nil.
	Drone() *Drone
	// SetDrone fills the module's single drone slot; nil empties it.
	SetDrone(d *Drone)
	// GiveDroneABag hands the hosted drone a bag. It reports false when the
	// module has no drone.
	GiveDroneABag() bool
}

// baseModule holds the state common to all modules. Concrete modules embed it.
type baseModule struct {
	name  string
	kind  model.ModuleKind
	drone *Drone
	env   *env
}

func newBaseModule(kind model.ModuleKind, e *env) baseModule {
	return baseModule{
		name: kind.DisplayName(),
		kind: kind,
		env:  e,
	}
}

func (m *baseModule) Name() string           { return m.name }
func (m *baseModule) Kind() model.ModuleKind { return m.kind }
func (m *baseModule) Drone() *Drone          { return m.drone }
func (m *baseModule) SetDrone(d *Drone)      { m.drone = d }

func (m *baseModule) GiveDroneABag() bool {
	if m.drone == nil {
		m.env.console.Printf("No drone available in %s.", m.name)
		return false
	}
	m.drone.ReceiveBag()
	return true
}
