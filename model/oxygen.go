package model

// OxygenStatus is the classification of a life-support oxygen reading.
type OxygenStatus int

const (
	OxygenInvalid OxygenStatus = iota // <= 0 or > 100; sensor needs checking
	OxygenCaution                     // 1..20 inclusive
	OxygenNormal                      // 21..100 inclusive
)

// ClassifyOxygen maps an oxygen level to its status. Both ranges are inclusive.
func ClassifyOxygen(level int) OxygenStatus {
	switch {
	case level >= 21 && level <= 100:
		return OxygenNormal
	case level >= 1 && level <= 20:
		return OxygenCaution
	default:
		return OxygenInvalid
	}
}

func (s OxygenStatus) String() string {
	switch s {
	case OxygenNormal:
		return "normal"
	case OxygenCaution:
		return "caution"
	default:
		return "invalid"
	}
}
