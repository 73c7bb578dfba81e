package defs

import "slices"

// SponsorObjectiveTemplate is a goal a sponsor attaches to a deal. MetricKey
// names the season metric compared against TargetValue.
type SponsorObjectiveTemplate struct {
	Description  string `yaml:"description"`
	TargetValue  int    `yaml:"target_value"`
	MetricKey    string `yaml:"metric_key"`
	PenaltyCents int64  `yaml:"penalty_cents"`
}

// SponsorDef is a sponsor a team can sign, with its eligibility gates.
type SponsorDef struct {
	ID                           SponsorID                  `yaml:"id"`
	DisplayName                  string                     `yaml:"display_name"`
	Tier                         SponsorTier                `yaml:"tier"`
	PaymentPerRaceCents          int64                      `yaml:"payment_per_race_cents"`
	SigningBonusCents            int64                      `yaml:"signing_bonus_cents"`
	MinTeamReputationBasisPoints int                        `yaml:"min_team_reputation_bp"`
	MinChampionshipPosition      int                        `yaml:"min_championship_position"`
	ObjectiveTemplates           []SponsorObjectiveTemplate `yaml:"objective_templates"`
}

// Clone returns a deep copy.
func (s SponsorDef) Clone() SponsorDef {
	out := s
	out.ObjectiveTemplates = slices.Clone(s.ObjectiveTemplates)
	return out
}

// BuildingEffectDef is a single bonus granted by a building level.
type BuildingEffectDef struct {
	EffectType       BuildingEffectType `yaml:"effect_type"`
	ValueBasisPoints int                `yaml:"value_bp"`
}

// BuildingLevelDef is one upgrade step of a building. Levels are numbered
// from 1.
type BuildingLevelDef struct {
	Level            int                 `yaml:"level"`
	UpgradeCostCents int64               `yaml:"upgrade_cost_cents"`
	UpgradeTimeWeeks int                 `yaml:"upgrade_time_weeks"`
	Effects          []BuildingEffectDef `yaml:"effects"`
}

// BuildingDef is a factory facility and its upgrade ladder.
type BuildingDef struct {
	ID          BuildingID         `yaml:"id"`
	DisplayName string             `yaml:"display_name"`
	Levels      []BuildingLevelDef `yaml:"levels"`
}

// Clone returns a deep copy.
func (b BuildingDef) Clone() BuildingDef {
	out := b
	if b.Levels != nil {
		out.Levels = make([]BuildingLevelDef, len(b.Levels))
		for i, l := range b.Levels {
			l.Effects = slices.Clone(l.Effects)
			out.Levels[i] = l
		}
	}
	return out
}

// Level returns the definition for a 1-based level number.
func (b BuildingDef) Level(level int) (BuildingLevelDef, bool) {
	for _, l := range b.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return BuildingLevelDef{}, false
}

// MaxLevel is the highest level defined, or 0 with no levels.
func (b BuildingDef) MaxLevel() int {
	if len(b.Levels) == 0 {
		return 0
	}
	return b.Levels[len(b.Levels)-1].Level
}
