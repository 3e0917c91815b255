package station

import (
	"context"
	"fmt"

	"github.com/signalsfoundry/orbitron-station/internal/logging"
	"github.com/signalsfoundry/orbitron-station/model"
	"golang.org/x/crypto/bcrypt"
)

// Drone names, in station order.
const (
	ControlCenterDroneName = "ControlCenterDrone"
	ResearchLabDroneName   = "ResearchLabDrone"
	LifeSupportDroneName   = "LifeSupportDrone"
)

// Config holds the values fixed when a station is built.
type Config struct {
	SecurityCode string
	OxygenLevel  int
	// BcryptCost is the work factor for hashing SecurityCode. Zero means
	// bcrypt.DefaultCost.
	BcryptCost int
}

// OrbitronSpaceStation owns one control center, one research lab and one life
// support system, each hosting one drone.
type OrbitronSpaceStation struct {
	controlCenter *ControlCenter
	researchLab   *ResearchLab
	lifeSupport   *LifeSupportSystem

	// drones is fixed at construction: control, research, life support.
	drones []*Drone

	env *env
}

// New builds the station, its three modules and their drones, and links each
// drone to its module in both directions.
func New(ctx context.Context, cfg Config, opts ...Option) (*OrbitronSpaceStation, error) {
	e := newEnv(opts)

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	cc, err := newControlCenter(cfg.SecurityCode, cost, e)
	if err != nil {
		return nil, fmt.Errorf("build control center: %w", err)
	}
	rl := newResearchLab(e)
	ls := newLifeSupportSystem(cfg.OxygenLevel, e)

	s := &OrbitronSpaceStation{
		controlCenter: cc,
		researchLab:   rl,
		lifeSupport:   ls,
		env:           e,
	}

	for _, pair := range []struct {
		module StationModule
		name   string
	}{
		{cc, ControlCenterDroneName},
		{rl, ResearchLabDroneName},
		{ls, LifeSupportDroneName},
	} {
		d := newDrone(pair.name, pair.module, e)
		pair.module.SetDrone(d)
		s.drones = append(s.drones, d)
	}

	e.metrics.SetLockdownActive(false)
	e.metrics.SetResearchSamples(0)
	e.metrics.SetOxygenLevel(cfg.OxygenLevel)
	e.log.Info(ctx, "station online",
		logging.Int("modules", len(model.ModuleKinds)),
		logging.Int("drones", len(s.drones)),
		logging.Int("oxygen_level", cfg.OxygenLevel),
	)
	return s, nil
}

func (s *OrbitronSpaceStation) ControlCenter() *ControlCenter   { return s.controlCenter }
func (s *OrbitronSpaceStation) ResearchLab() *ResearchLab       { return s.researchLab }
func (s *OrbitronSpaceStation) LifeSupport() *LifeSupportSystem { return s.lifeSupport }

// Drones returns the station's drones in fixed order: control center, research
// lab, life support.
func (s *OrbitronSpaceStation) Drones() []*Drone {
	return append([]*Drone(nil), s.drones...)
}

// Modules returns the three modules in station order.
func (s *OrbitronSpaceStation) Modules() []StationModule {
	mods := make([]StationModule, 0, len(model.ModuleKinds))
	for _, kind := range model.ModuleKinds {
		mods = append(mods, s.Module(kind))
	}
	return mods
}

// Module returns the module of the given kind, or nil for an unknown kind.
func (s *OrbitronSpaceStation) Module(kind model.ModuleKind) StationModule {
	switch kind {
	case model.ModuleControlCenter:
		return s.controlCenter
	case model.ModuleResearchLab:
		return s.researchLab
	case model.ModuleLifeSupport:
		return s.lifeSupport
	default:
		return nil
	}
}

// ModuleByName looks a module up by its exact, case-sensitive display name.
func (s *OrbitronSpaceStation) ModuleByName(name string) (StationModule, bool) {
	kind, ok := model.ModuleKindByName(name)
	if !ok {
		return nil, false
	}
	return s.Module(kind), true
}

// InitiateLockdown forwards to the control center.
func (s *OrbitronSpaceStation) InitiateLockdown(ctx context.Context, password string) bool {
	return s.controlCenter.Lockdown(ctx, password)
}
