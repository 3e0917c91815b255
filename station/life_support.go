package station

import "github.com/signalsfoundry/orbitron-station/model"

// LifeSupportSystem reports on the oxygen level fixed at construction. The
// level is not validated; out-of-range values surface as an invalid reading.
type LifeSupportSystem struct {
	baseModule

	oxygenLevel int
}

func newLifeSupportSystem(oxygenLevel int, e *env) *LifeSupportSystem {
	return &LifeSupportSystem{
		baseModule:  newBaseModule(model.ModuleLifeSupport, e),
		oxygenLevel: oxygenLevel,
	}
}

func (l *LifeSupportSystem) OxygenLevel() int { return l.oxygenLevel }

// CheckOxygenStatus prints and returns the classification of the oxygen level.
func (l *LifeSupportSystem) CheckOxygenStatus() model.OxygenStatus {
	status := model.ClassifyOxygen(l.oxygenLevel)
	switch status {
	case model.OxygenNormal:
		l.env.console.Println("Oxygen level is within the normal range.")
	case model.OxygenCaution:
		l.env.console.Println("Caution: Low oxygen level. Take necessary precautions.")
	default:
		l.env.console.Println("Invalid oxygen level. Please check the sensor.")
	}
	l.env.metrics.RecordOxygenCheck(status)
	return status
}
