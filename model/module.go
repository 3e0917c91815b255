package model

// ModuleKind identifies one of the fixed compartments of the station.
type ModuleKind int

const (
	ModuleControlCenter ModuleKind = iota
	ModuleResearchLab
	ModuleLifeSupport
)

// Display names used for lookups. Matching is exact and case-sensitive.
const (
	ControlCenterName = "Control Center"
	ResearchLabName   = "Research Lab"
	LifeSupportName   = "Life Support System"
)

// ModuleKinds lists every kind in station order (control, research, life support).
var ModuleKinds = []ModuleKind{ModuleControlCenter, ModuleResearchLab, ModuleLifeSupport}

// DisplayName returns the name the station registers the module under.
func (k ModuleKind) DisplayName() string {
	switch k {
	case ModuleControlCenter:
		return ControlCenterName
	case ModuleResearchLab:
		return ResearchLabName
	case ModuleLifeSupport:
		return LifeSupportName
	default:
		return ""
	}
}

// String implements fmt.Stringer with a short, label-friendly form.
func (k ModuleKind) String() string {
	switch k {
	case ModuleControlCenter:
		return "control_center"
	case ModuleResearchLab:
		return "research_lab"
	case ModuleLifeSupport:
		return "life_support"
	default:
		return "unknown"
	}
}

// ModuleKindByName resolves a display name to its kind. Any input other than
// one of the three exact display names reports false.
func ModuleKindByName(name string) (ModuleKind, bool) {
	switch name {
	case ControlCenterName:
		return ModuleControlCenter, true
	case ResearchLabName:
		return ModuleResearchLab, true
	case LifeSupportName:
		return ModuleLifeSupport, true
	default:
		return 0, false
	}
}
