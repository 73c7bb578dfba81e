package defs

import (
	"fmt"
	"slices"
)

// SetupPenaltyEntry is one tier of the setup-mismatch table: a car whose setup
// matches the ideal by at least MatchPercentage loses PenaltyMs per lap.
type SetupPenaltyEntry struct {
	MatchPercentage int `yaml:"match_percentage"`
	PenaltyMs       int `yaml:"penalty_ms"`
}

// EngineModeScalar describes one selectable engine map.
type EngineModeScalar struct {
	ID                                  EngineModeID `yaml:"id"`
	PaceModifierMs                      int          `yaml:"pace_modifier_ms"`
	ReliabilityMultiplierBasisPoints    int          `yaml:"reliability_multiplier_bp"`
	FuelEfficiencyMultiplierBasisPoints int          `yaml:"fuel_efficiency_multiplier_bp"`
}

// PartRankTimeCostTable maps a part's upgrade rank to the lap time it costs,
// per slot. Rank 1 is the first entry.
type PartRankTimeCostTable struct {
	rankToMs map[PartSlot][]int
}

// NewPartRankTimeCostTable copies rankToMs so later changes to the caller's
// map or slices are not observed.
func NewPartRankTimeCostTable(rankToMs map[PartSlot][]int) PartRankTimeCostTable {
	owned := make(map[PartSlot][]int, len(rankToMs))
	for slot, values := range rankToMs {
		owned[slot] = slices.Clone(values)
	}
	return PartRankTimeCostTable{rankToMs: owned}
}

// Slot returns a copy of the cost list for slot and whether it is present.
func (t PartRankTimeCostTable) Slot(slot PartSlot) ([]int, bool) {
	values, ok := t.rankToMs[slot]
	return slices.Clone(values), ok
}

// Slots returns a deep copy of the whole table.
func (t PartRankTimeCostTable) Slots() map[PartSlot][]int {
	out := make(map[PartSlot][]int, len(t.rankToMs))
	for slot, values := range t.rankToMs {
		out[slot] = slices.Clone(values)
	}
	return out
}

// LookupMs returns the time cost of rank in slot. Ranks at or below 1 clamp
// to the first entry and ranks past the end clamp to the last.
func (t PartRankTimeCostTable) LookupMs(slot PartSlot, rank int) (int, error) {
	values := t.rankToMs[slot]
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no rank costs for slot %s", ErrNotFound, slot)
	}
	idx := 0
	if rank > 1 {
		idx = min(rank-1, len(values)-1)
	}
	return values[idx], nil
}

// MarshalYAML renders the table as a plain slot → costs mapping.
func (t PartRankTimeCostTable) MarshalYAML() (any, error) {
	return t.Slots(), nil
}

// DriverPaceScalars convert a driver rating into lap time.
type DriverPaceScalars struct {
	BaselineRating   int `yaml:"baseline_rating"`
	MsPerRatingPoint int `yaml:"ms_per_rating_point"`
}

// SetupScalars holds the setup-mismatch tiers.
type SetupScalars struct {
	Penalties []SetupPenaltyEntry `yaml:"penalties"`
}

type KnowledgeScalars struct {
	MaxPenaltyMs              int `yaml:"max_penalty_ms"`
	RetentionPercentPerSeason int `yaml:"retention_percent_per_season"`
}

type TyreTemperatureScalars struct {
	MsPerDegreeOutsideWindow int `yaml:"ms_per_degree_outside_window"`
}

type FuelScalars struct {
	MsPerKg int `yaml:"ms_per_kg"`
}

type DraftingScalars struct {
	MaxBenefitMs   int `yaml:"max_benefit_ms"`
	ThresholdGapMs int `yaml:"threshold_gap_ms"`
	DrsBonusMs     int `yaml:"drs_bonus_ms"`
}

type VarianceScalars struct {
	BaseRangeMs                       int `yaml:"base_range_ms"`
	ConsistencyAttenuationBasisPoints int `yaml:"consistency_attenuation_bp"`
}

// ScalarTables bundles every tuning constant of a pack.
type ScalarTables struct {
	PartRankTimeCostTable PartRankTimeCostTable  `yaml:"part_rank_time_cost"`
	DriverPace            DriverPaceScalars      `yaml:"driver_pace"`
	Setup                 SetupScalars           `yaml:"setup"`
	Knowledge             KnowledgeScalars       `yaml:"knowledge"`
	TyreTemperature       TyreTemperatureScalars `yaml:"tyre_temperature"`
	Fuel                  FuelScalars            `yaml:"fuel"`
	EngineModes           []EngineModeScalar     `yaml:"engine_modes"`
	Drafting              DraftingScalars        `yaml:"drafting"`
	Variance              VarianceScalars        `yaml:"variance"`
}

// Clone returns a deep copy.
func (s ScalarTables) Clone() ScalarTables {
	out := s
	out.PartRankTimeCostTable = NewPartRankTimeCostTable(s.PartRankTimeCostTable.rankToMs)
	out.Setup.Penalties = slices.Clone(s.Setup.Penalties)
	out.EngineModes = slices.Clone(s.EngineModes)
	return out
}

// EngineMode returns the engine mode with the given id.
func (s ScalarTables) EngineMode(id EngineModeID) (EngineModeScalar, error) {
	for _, m := range s.EngineModes {
		if m.ID == id {
			return m, nil
		}
	}
	return EngineModeScalar{}, fmt.Errorf("%w: EngineModeScalar %q", ErrNotFound, id)
}
