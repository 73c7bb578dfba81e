package defs

import "maps"

// WeatherDef describes one weather type, what it costs each compound and how
// likely it is to turn into each other weather type.
type WeatherDef struct {
	ID                      WeatherTypeID          `yaml:"id"`
	DisplayName             string                 `yaml:"display_name"`
	State                   WeatherState           `yaml:"state"`
	BasePenaltyMs           int                    `yaml:"base_penalty_ms"`
	GripModifierBasisPoints int                    `yaml:"grip_modifier_bp"`
	CompoundMatchPenaltyMs  map[TyreCompoundID]int `yaml:"compound_match_penalty_ms"`
	// TransitionProbabilityBasisPoints must sum to exactly 10000.
	TransitionProbabilityBasisPoints map[WeatherTypeID]int `yaml:"transition_probability_bp"`
	TrackTemperatureDeltaCelsius     int                   `yaml:"track_temperature_delta_c"`
}

// Clone returns a deep copy.
func (w WeatherDef) Clone() WeatherDef {
	out := w
	out.CompoundMatchPenaltyMs = maps.Clone(w.CompoundMatchPenaltyMs)
	out.TransitionProbabilityBasisPoints = maps.Clone(w.TransitionProbabilityBasisPoints)
	return out
}
