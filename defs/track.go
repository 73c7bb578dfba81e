package defs

import (
	"maps"
	"slices"
)

// SectorDef is one timed subdivision of a lap. Index is zero-based and equals
// the sector's position in TrackDef.Sectors.
type SectorDef struct {
	Index                      int `yaml:"index"`
	BaseTimeMs                 int `yaml:"base_time_ms"`
	StraightPercentBasisPoints int `yaml:"straight_percent_bp"`
	CornerCount                int `yaml:"corner_count"`
}

// TrackDef describes a circuit. The sectors partition the lap: their base
// times sum to BaseTimeMs.
type TrackDef struct {
	ID                                    TrackID               `yaml:"id"`
	DisplayName                           string                `yaml:"display_name"`
	Country                               string                `yaml:"country"`
	LengthMeters                          int                   `yaml:"length_m"`
	BaseTimeMs                            int                   `yaml:"base_time_ms"`
	TotalLaps                             int                   `yaml:"total_laps"`
	Corners                               int                   `yaml:"corners"`
	Sectors                               []SectorDef           `yaml:"sectors"`
	OvertakingDifficultyRatingBasisPoints int                   `yaml:"overtaking_difficulty_bp"`
	TyreWearMultiplierBasisPoints         int                   `yaml:"tyre_wear_multiplier_bp"`
	FuelConsumptionKgPerLap               int                   `yaml:"fuel_consumption_kg_per_lap"`
	WeatherProbabilityBasisPoints         map[WeatherTypeID]int `yaml:"weather_probability_bp"`
	AmbientTemperatureBaseCelsius         int                   `yaml:"ambient_temperature_base_c"`
	TrackTemperatureBaseCelsius           int                   `yaml:"track_temperature_base_c"`
	DrsZoneSectorIndices                  []int                 `yaml:"drs_zone_sector_indices"`
}

// Clone returns a deep copy.
func (t TrackDef) Clone() TrackDef {
	out := t
	out.Sectors = slices.Clone(t.Sectors)
	out.WeatherProbabilityBasisPoints = maps.Clone(t.WeatherProbabilityBasisPoints)
	out.DrsZoneSectorIndices = slices.Clone(t.DrsZoneSectorIndices)
	return out
}

// HasDrs reports whether DRS is enabled in the sector at index.
func (t TrackDef) HasDrs(sectorIndex int) bool {
	return slices.Contains(t.DrsZoneSectorIndices, sectorIndex)
}

// RaceDistanceMeters is the full race length.
func (t TrackDef) RaceDistanceMeters() int {
	return t.LengthMeters * t.TotalLaps
}
