package defs

import "fmt"

// PartSlot is the car subsystem a part or component is built for.
type PartSlot int

const (
	PartSlotEngine PartSlot = iota
	PartSlotAero
	PartSlotChassis
)

var partSlotNames = [...]string{"Engine", "Aero", "Chassis"}

// AllPartSlots lists every slot in declaration order.
func AllPartSlots() []PartSlot {
	return []PartSlot{PartSlotEngine, PartSlotAero, PartSlotChassis}
}

func (s PartSlot) Valid() bool { return s >= 0 && int(s) < len(partSlotNames) }

func (s PartSlot) String() string { return enumName(partSlotNames[:], int(s), "PartSlot") }

func (s PartSlot) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// SponsorTier ranks a sponsor deal.
type SponsorTier int

const (
	SponsorTierTitle SponsorTier = iota
	SponsorTierMajor
	SponsorTierMinor
	SponsorTierTechnical
)

var sponsorTierNames = [...]string{"Title", "Major", "Minor", "Technical"}

func (t SponsorTier) Valid() bool { return t >= 0 && int(t) < len(sponsorTierNames) }

func (t SponsorTier) String() string { return enumName(sponsorTierNames[:], int(t), "SponsorTier") }

func (t SponsorTier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// WeatherState is the coarse surface condition a weather type represents.
type WeatherState int

const (
	WeatherStateDry WeatherState = iota
	WeatherStateDamp
	WeatherStateWet
	WeatherStateMonsoon
)

var weatherStateNames = [...]string{"Dry", "Damp", "Wet", "Monsoon"}

func (w WeatherState) Valid() bool { return w >= 0 && int(w) < len(weatherStateNames) }

func (w WeatherState) String() string { return enumName(weatherStateNames[:], int(w), "WeatherState") }

func (w WeatherState) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// TyrePhase is the lifecycle stage of a tyre set.
type TyrePhase int

const (
	TyrePhaseFresh TyrePhase = iota
	TyrePhaseOptimal
	TyrePhaseWorn
	TyrePhaseCliff
)

var tyrePhaseNames = [...]string{"Fresh", "Optimal", "Worn", "Cliff"}

func (p TyrePhase) Valid() bool { return p >= 0 && int(p) < len(tyrePhaseNames) }

func (p TyrePhase) String() string { return enumName(tyrePhaseNames[:], int(p), "TyrePhase") }

func (p TyrePhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// QualifyingFormat selects how the grid is decided.
type QualifyingFormat int

const (
	QualifyingSingleSession QualifyingFormat = iota
	QualifyingThreeKnockout
)

var qualifyingFormatNames = [...]string{"SingleSession", "ThreeKnockout"}

func (q QualifyingFormat) Valid() bool { return q >= 0 && int(q) < len(qualifyingFormatNames) }

func (q QualifyingFormat) String() string {
	return enumName(qualifyingFormatNames[:], int(q), "QualifyingFormat")
}

func (q QualifyingFormat) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

// BuildingEffectType is what a facility level improves.
type BuildingEffectType int

const (
	EffectDevelopmentSpeed BuildingEffectType = iota
	EffectReliabilityBonus
	EffectPitStopSpeed
	EffectSetupAccuracy
	EffectKnowledgeRetention
)

var buildingEffectNames = [...]string{
	"DevelopmentSpeed", "ReliabilityBonus", "PitStopSpeed", "SetupAccuracy", "KnowledgeRetention",
}

func (e BuildingEffectType) Valid() bool { return e >= 0 && int(e) < len(buildingEffectNames) }

func (e BuildingEffectType) String() string {
	return enumName(buildingEffectNames[:], int(e), "BuildingEffectType")
}

func (e BuildingEffectType) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// enumName renders out-of-range values as e.g. "PartSlot(7)" so invalid
// content still prints something useful.
func enumName(names []string, v int, typeName string) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", typeName, v)
	}
	return names[v]
}
