package cmd

import (
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/registry"
)

// kind describes one browsable entity kind: how to tabulate all of them and
// how to fetch a single one by id.
type kind struct {
	header table.Row
	rows   func(r *registry.Registry) []table.Row
	lookup func(r *registry.Registry, id string) (any, error)
}

var kinds = map[string]kind{
	"series": {
		header: table.Row{"ID", "Name", "Tier", "Ruleset", "Grid", "Rounds"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllSeries(), func(s defs.SeriesDef, _ int) table.Row {
				return table.Row{s.ID, s.DisplayName, s.Tier, s.RulesetID, s.GridSize(), len(s.CalendarTemplate)}
			})
		},
		lookup: lookup(defs.NewSeriesID, (*registry.Registry).Series),
	},
	"rulesets": {
		header: table.Row{"ID", "Name", "Qualifying", "Scoring", "Sprint", "Refuelling", "Budget cap"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllRulesets(), func(rs defs.RulesetDef, _ int) table.Row {
				return table.Row{rs.ID, rs.DisplayName, rs.QualifyingFormat, len(rs.PointsTable),
					rs.SprintRaceEnabled, rs.RefuellingAllowed, money(rs.BudgetCapCents)}
			})
		},
		lookup: lookup(defs.NewRulesetID, (*registry.Registry).Ruleset),
	},
	"tracks": {
		header: table.Row{"ID", "Name", "Country", "Length", "Laps", "Base lap", "Sectors", "DRS zones"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllTracks(), func(t defs.TrackDef, _ int) table.Row {
				return table.Row{t.ID, t.DisplayName, t.Country, kilometres(t.LengthMeters), t.TotalLaps,
					seconds(t.BaseTimeMs), len(t.Sectors), len(t.DrsZoneSectorIndices)}
			})
		},
		lookup: lookup(defs.NewTrackID, (*registry.Registry).Track),
	},
	"parts": {
		header: table.Row{"ID", "Name", "Slot", "Stat", "Build", "Cost"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllPartTypes(), func(p defs.PartTypeDef, _ int) table.Row {
				return table.Row{p.ID, p.DisplayName, p.Slot,
					percentRange(p.StatMinBasisPoints, p.StatMaxBasisPoints),
					weeks(p.BuildTimeBaseWeeks), money(p.BuildCostBaseCents)}
			})
		},
		lookup: lookup(defs.NewPartTypeID, (*registry.Registry).PartType),
	},
	"tyres": {
		header: table.Row{"ID", "Name", "Grip", "Wear/lap", "Life (laps)", "Window"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllTyreCompounds(), func(t defs.TyreCompoundDef, _ int) table.Row {
				return table.Row{t.ID, t.DisplayName, percent(t.GripRatingBasisPoints),
					percent(t.WearRatePerLapBasisPoints),
					fmt.Sprintf("%d/%d/%d", t.FreshLaps, t.OptimalLaps, t.WornLaps),
					fmt.Sprintf("%d-%d°C", t.TemperatureWindowLowCelsius, t.TemperatureWindowHighCelsius)}
			})
		},
		lookup: lookup(defs.NewTyreCompoundID, (*registry.Registry).TyreCompound),
	},
	"sponsors": {
		header: table.Row{"ID", "Name", "Tier", "Per race", "Signing bonus", "Min reputation", "Objectives"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllSponsors(), func(s defs.SponsorDef, _ int) table.Row {
				return table.Row{s.ID, s.DisplayName, s.Tier, money(s.PaymentPerRaceCents),
					money(s.SigningBonusCents), percent(s.MinTeamReputationBasisPoints), len(s.ObjectiveTemplates)}
			})
		},
		lookup: lookup(defs.NewSponsorID, (*registry.Registry).Sponsor),
	},
	"buildings": {
		header: table.Row{"ID", "Name", "Levels", "Full upgrade cost", "Full upgrade time"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllBuildings(), func(b defs.BuildingDef, _ int) table.Row {
				cost := lo.SumBy(b.Levels, func(l defs.BuildingLevelDef) int64 { return l.UpgradeCostCents })
				span := lo.SumBy(b.Levels, func(l defs.BuildingLevelDef) int { return l.UpgradeTimeWeeks })
				return table.Row{b.ID, b.DisplayName, b.MaxLevel(), money(cost), weeks(span)}
			})
		},
		lookup: lookup(defs.NewBuildingID, (*registry.Registry).Building),
	},
	"components": {
		header: table.Row{"ID", "Name", "Slot", "Stat", "Reliability", "Build", "Cost"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllComponents(), func(c defs.ComponentDef, _ int) table.Row {
				return table.Row{c.ID, c.DisplayName, c.TargetSlot,
					percentRange(c.StatContributionMinBasisPoints, c.StatContributionMaxBasisPoints),
					percentRange(c.ReliabilityContributionMinBasisPoints, c.ReliabilityContributionMaxBasisPoints),
					weeks(c.BuildTimeModifierWeeks), money(c.CostModifierCents)}
			})
		},
		lookup: lookup(defs.NewComponentID, (*registry.Registry).Component),
	},
	"drivers": {
		header: table.Row{"ID", "Name", "Speed", "Consistency", "Wet skill", "Age"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllDriverArchetypes(), func(d defs.DriverArchetypeDef, _ int) table.Row {
				return table.Row{d.ID, d.DisplayName,
					percentRange(d.SpeedMinBasisPoints, d.SpeedMaxBasisPoints),
					percentRange(d.ConsistencyMinBasisPoints, d.ConsistencyMaxBasisPoints),
					percentRange(d.WetSkillMinBasisPoints, d.WetSkillMaxBasisPoints),
					fmt.Sprintf("%d-%d", d.AgeMin, d.AgeMax)}
			})
		},
		lookup: lookup(defs.NewDriverArchetypeID, (*registry.Registry).DriverArchetype),
	},
	"weather": {
		header: table.Row{"ID", "Name", "State", "Base penalty", "Grip", "Track temp"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.AllWeatherTypes(), func(w defs.WeatherDef, _ int) table.Row {
				return table.Row{w.ID, w.DisplayName, w.State, seconds(w.BasePenaltyMs),
					percent(w.GripModifierBasisPoints), fmt.Sprintf("%+d°C", w.TrackTemperatureDeltaCelsius)}
			})
		},
		lookup: lookup(defs.NewWeatherTypeID, (*registry.Registry).WeatherType),
	},
	"engine-modes": {
		header: table.Row{"ID", "Pace", "Reliability", "Fuel efficiency"},
		rows: func(r *registry.Registry) []table.Row {
			return lo.Map(r.Scalars().EngineModes, func(m defs.EngineModeScalar, _ int) table.Row {
				return table.Row{m.ID, seconds(m.PaceModifierMs),
					percent(m.ReliabilityMultiplierBasisPoints), percent(m.FuelEfficiencyMultiplierBasisPoints)}
			})
		},
		lookup: lookup(defs.NewEngineModeID, (*registry.Registry).EngineMode),
	},
}

func kindNames() []string {
	names := lo.Keys(kinds)
	slices.Sort(names)
	return names
}

func kindByName(name string) (kind, error) {
	k, ok := kinds[name]
	if !ok {
		return kind{}, fmt.Errorf("%w: kind %q (have %v)", defs.ErrNotFound, name, kindNames())
	}
	return k, nil
}

// lookup adapts a typed registry lookup to a raw string id.
func lookup[I, D any](parse func(string) (I, error), get func(*registry.Registry, I) (D, error)) func(*registry.Registry, string) (any, error) {
	return func(r *registry.Registry, raw string) (any, error) {
		id, err := parse(raw)
		if err != nil {
			return nil, err
		}
		def, err := get(r, id)
		if err != nil {
			return nil, err
		}
		return def, nil
	}
}

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

func money(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// percent renders basis points as a percentage, e.g. 8500 → "85.00%".
func percent(bp int) string {
	return decimal.NewFromInt(int64(bp)).Div(hundred).StringFixed(2) + "%"
}

func percentRange(lowBP, highBP int) string {
	return percent(lowBP) + " - " + percent(highBP)
}

func seconds(ms int) string {
	return decimal.NewFromInt(int64(ms)).Div(thousand).StringFixed(3) + "s"
}

func kilometres(m int) string {
	return decimal.NewFromInt(int64(m)).Div(thousand).StringFixed(3) + " km"
}

func weeks(n int) string {
	return fmt.Sprintf("%dw", n)
}
