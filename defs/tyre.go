package defs

// TyreCompoundDef describes a tyre compound's grip, wear lifecycle and
// operating temperature window.
//
// A set spends FreshLaps in the fresh phase, then OptimalLaps at peak, then
// WornLaps degrading, after which it falls off the cliff.
type TyreCompoundDef struct {
	ID                           TyreCompoundID `yaml:"id"`
	DisplayName                  string         `yaml:"display_name"`
	GripRatingBasisPoints        int            `yaml:"grip_rating_bp"`
	WearRatePerLapBasisPoints    int            `yaml:"wear_rate_per_lap_bp"`
	FreshLaps                    int            `yaml:"fresh_laps"`
	OptimalLaps                  int            `yaml:"optimal_laps"`
	WornLaps                     int            `yaml:"worn_laps"`
	CliffMsPerLap                int            `yaml:"cliff_ms_per_lap"`
	OptimalBonusMs               int            `yaml:"optimal_bonus_ms"`
	FreshPenaltyMs               int            `yaml:"fresh_penalty_ms"`
	TemperatureWindowLowCelsius  int            `yaml:"temperature_window_low_c"`
	TemperatureWindowHighCelsius int            `yaml:"temperature_window_high_c"`
	WarmupRateCelsiusPerLap      int            `yaml:"warmup_rate_c_per_lap"`
}

// PhaseAt returns the lifecycle phase of a set that has completed
// lapsOnTyre laps.
func (t TyreCompoundDef) PhaseAt(lapsOnTyre int) TyrePhase {
	switch {
	case lapsOnTyre < t.FreshLaps:
		return TyrePhaseFresh
	case lapsOnTyre < t.FreshLaps+t.OptimalLaps:
		return TyrePhaseOptimal
	case lapsOnTyre < t.FreshLaps+t.OptimalLaps+t.WornLaps:
		return TyrePhaseWorn
	default:
		return TyrePhaseCliff
	}
}

// PhaseDeltaMs is the lap time delta for a phase. Optimal is a bonus
// (negative), worn carries no fixed delta, and cliff is the per-lap rate.
func (t TyreCompoundDef) PhaseDeltaMs(phase TyrePhase) int {
	switch phase {
	case TyrePhaseFresh:
		return t.FreshPenaltyMs
	case TyrePhaseOptimal:
		return t.OptimalBonusMs
	case TyrePhaseCliff:
		return t.CliffMsPerLap
	default:
		return 0
	}
}

// InTemperatureWindow reports whether celsius lies inside the working window.
func (t TyreCompoundDef) InTemperatureWindow(celsius int) bool {
	return celsius >= t.TemperatureWindowLowCelsius && celsius <= t.TemperatureWindowHighCelsius
}
