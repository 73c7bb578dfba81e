package defs

import "slices"

// RulesetDef is the sporting and technical regulation set a series runs
// under.
type RulesetDef struct {
	ID                    RulesetID        `yaml:"id"`
	DisplayName           string           `yaml:"display_name"`
	PointsTable           []int            `yaml:"points_table"`
	FastestLapBonusPoints int              `yaml:"fastest_lap_bonus_points"`
	AvailableCompounds    []TyreCompoundID `yaml:"available_compounds"`
	MinCompoundsPerRace   int              `yaml:"min_compounds_per_race"`
	RefuellingAllowed     bool             `yaml:"refuelling_allowed"`
	AvailableEngineModes  []EngineModeID   `yaml:"available_engine_modes"`
	PartLimitPerCategory  int              `yaml:"part_limit_per_category"`
	BudgetCapCents        int64            `yaml:"budget_cap_cents"`
	PitLaneTimeLossMs     int              `yaml:"pit_lane_time_loss_ms"`
	PitStopBaseTimeMs     int              `yaml:"pit_stop_base_time_ms"`
	QualifyingFormat      QualifyingFormat `yaml:"qualifying_format"`
	SprintRaceEnabled     bool             `yaml:"sprint_race_enabled"`
	// SprintPointsTable is non-empty exactly when SprintRaceEnabled is set.
	SprintPointsTable []int `yaml:"sprint_points_table"`
	DrsDisabledLaps   int   `yaml:"drs_disabled_laps"`
	DrsDisabledInWet  bool  `yaml:"drs_disabled_in_wet"`
}

// Clone returns a deep copy.
func (r RulesetDef) Clone() RulesetDef {
	out := r
	out.PointsTable = slices.Clone(r.PointsTable)
	out.AvailableCompounds = slices.Clone(r.AvailableCompounds)
	out.AvailableEngineModes = slices.Clone(r.AvailableEngineModes)
	out.SprintPointsTable = slices.Clone(r.SprintPointsTable)
	return out
}

// PointsFor returns the points awarded for a 1-based finishing position,
// zero outside the table.
func (r RulesetDef) PointsFor(position int) int {
	return pointsAt(r.PointsTable, position)
}

// SprintPointsFor is PointsFor for the sprint race.
func (r RulesetDef) SprintPointsFor(position int) int {
	return pointsAt(r.SprintPointsTable, position)
}

func pointsAt(table []int, position int) int {
	if position < 1 || position > len(table) {
		return 0
	}
	return table[position-1]
}

// SeriesDef is a championship: its tier, grid size, ruleset and calendar.
type SeriesDef struct {
	ID               SeriesID  `yaml:"id"`
	DisplayName      string    `yaml:"display_name"`
	Tier             int       `yaml:"tier"`
	RulesetID        RulesetID `yaml:"ruleset_id"`
	CalendarTemplate []TrackID `yaml:"calendar_template"`
	TeamCount        int       `yaml:"team_count"`
	DriversPerTeam   int       `yaml:"drivers_per_team"`
}

// Clone returns a deep copy.
func (s SeriesDef) Clone() SeriesDef {
	out := s
	out.CalendarTemplate = slices.Clone(s.CalendarTemplate)
	return out
}

// GridSize is the number of cars entered per race.
func (s SeriesDef) GridSize() int { return s.TeamCount * s.DriversPerTeam }
