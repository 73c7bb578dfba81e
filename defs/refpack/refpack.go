// Package refpack ships the built-in reference content packs. Every call
// returns a freshly built pack, so callers may derive modified packs from it
// without affecting anyone else.
package refpack

import (
	"fmt"
	"slices"

	"github.com/alivastudio/motorracing-manager/defs"
)

var builders = map[string]func() *defs.Pack{
	"f1":      F1,
	"indycar": IndyCar,
}

// Names lists the reference packs in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName builds the named reference pack.
func ByName(name string) (*defs.Pack, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: reference pack %q (have %v)", defs.ErrNotFound, name, Names())
	}
	return build(), nil
}

func mustPack(c defs.PackContents) *defs.Pack {
	p, err := defs.NewPack(c)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// rankTable builds n costs starting at 0 and growing by step.
func rankTable(n, step int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i * step
	}
	return out
}

func sector(index, baseTimeMs, straightBP, corners int) defs.SectorDef {
	return defs.SectorDef{
		Index:                      index,
		BaseTimeMs:                 baseTimeMs,
		StraightPercentBasisPoints: straightBP,
		CornerCount:                corners,
	}
}

// weatherOdds maps the four standard weather ids to their probabilities.
func weatherOdds(dry, damp, wet, monsoon int) map[defs.WeatherTypeID]int {
	return map[defs.WeatherTypeID]int{
		defs.MustWeatherTypeID("dry"):     dry,
		defs.MustWeatherTypeID("damp"):    damp,
		defs.MustWeatherTypeID("wet"):     wet,
		defs.MustWeatherTypeID("monsoon"): monsoon,
	}
}

type tyreSpec struct {
	id, name                string
	grip, wear              int
	fresh, optimal, worn    int
	cliff, bonus, freshCost int
	windowLow, windowHigh   int
	warmup                  int
}

func (t tyreSpec) def() defs.TyreCompoundDef {
	return defs.TyreCompoundDef{
		ID:                           defs.MustTyreCompoundID(t.id),
		DisplayName:                  t.name,
		GripRatingBasisPoints:        t.grip,
		WearRatePerLapBasisPoints:    t.wear,
		FreshLaps:                    t.fresh,
		OptimalLaps:                  t.optimal,
		WornLaps:                     t.worn,
		CliffMsPerLap:                t.cliff,
		OptimalBonusMs:               t.bonus,
		FreshPenaltyMs:               t.freshCost,
		TemperatureWindowLowCelsius:  t.windowLow,
		TemperatureWindowHighCelsius: t.windowHigh,
		WarmupRateCelsiusPerLap:      t.warmup,
	}
}

func tyres(specs ...tyreSpec) []defs.TyreCompoundDef {
	out := make([]defs.TyreCompoundDef, len(specs))
	for i, s := range specs {
		out[i] = s.def()
	}
	return out
}

func weatherType(id, name string, state defs.WeatherState, basePenaltyMs, gripBP, tempDelta int,
	penalties map[defs.TyreCompoundID]int, transitions map[defs.WeatherTypeID]int) defs.WeatherDef {
	return defs.WeatherDef{
		ID:                               defs.MustWeatherTypeID(id),
		DisplayName:                      name,
		State:                            state,
		BasePenaltyMs:                    basePenaltyMs,
		GripModifierBasisPoints:          gripBP,
		CompoundMatchPenaltyMs:           penalties,
		TransitionProbabilityBasisPoints: transitions,
		TrackTemperatureDeltaCelsius:     tempDelta,
	}
}

// compoundPenalties pairs compound ids with penalties in order.
func compoundPenalties(ids []string, ms ...int) map[defs.TyreCompoundID]int {
	if len(ids) != len(ms) {
		panic("refpack: compound penalty count mismatch")
	}
	out := make(map[defs.TyreCompoundID]int, len(ids))
	for i, id := range ids {
		out[defs.MustTyreCompoundID(id)] = ms[i]
	}
	return out
}

func engineMode(id string, paceMs, reliabilityBP, fuelBP int) defs.EngineModeScalar {
	return defs.EngineModeScalar{
		ID:                                  defs.MustEngineModeID(id),
		PaceModifierMs:                      paceMs,
		ReliabilityMultiplierBasisPoints:    reliabilityBP,
		FuelEfficiencyMultiplierBasisPoints: fuelBP,
	}
}

func setupTiers(pairs ...int) []defs.SetupPenaltyEntry {
	out := make([]defs.SetupPenaltyEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, defs.SetupPenaltyEntry{MatchPercentage: pairs[i], PenaltyMs: pairs[i+1]})
	}
	return out
}

// Content shared by both reference packs.

func sponsors() []defs.SponsorDef {
	return []defs.SponsorDef{{
		ID:                           defs.MustSponsorID("megacorp"),
		DisplayName:                  "MegaCorp Industries",
		Tier:                         defs.SponsorTierTitle,
		PaymentPerRaceCents:          200_000_000,
		SigningBonusCents:            500_000_000,
		MinTeamReputationBasisPoints: 7000,
		MinChampionshipPosition:      5,
		ObjectiveTemplates: []defs.SponsorObjectiveTemplate{{
			Description:  "Finish in top 5 in constructors",
			TargetValue:  5,
			MetricKey:    "constructors_position",
			PenaltyCents: 100_000_000,
		}},
	}}
}

func buildings() []defs.BuildingDef {
	return []defs.BuildingDef{{
		ID:          defs.MustBuildingID("wind_tunnel"),
		DisplayName: "Wind Tunnel",
		Levels: []defs.BuildingLevelDef{
			{
				Level:            1,
				UpgradeCostCents: 200_000_000,
				UpgradeTimeWeeks: 6,
				Effects: []defs.BuildingEffectDef{
					{EffectType: defs.EffectDevelopmentSpeed, ValueBasisPoints: 500},
				},
			},
			{
				Level:            2,
				UpgradeCostCents: 350_000_000,
				UpgradeTimeWeeks: 8,
				Effects: []defs.BuildingEffectDef{
					{EffectType: defs.EffectDevelopmentSpeed, ValueBasisPoints: 900},
					{EffectType: defs.EffectSetupAccuracy, ValueBasisPoints: 400},
				},
			},
		},
	}}
}

func components() []defs.ComponentDef {
	return []defs.ComponentDef{
		{
			ID:                                    defs.MustComponentID("turbo_a"),
			DisplayName:                           "Turbo A",
			TargetSlot:                            defs.PartSlotEngine,
			StatContributionMinBasisPoints:        500,
			StatContributionMaxBasisPoints:        1500,
			ReliabilityContributionMinBasisPoints: 300,
			ReliabilityContributionMaxBasisPoints: 900,
			BuildTimeModifierWeeks:                1,
			CostModifierCents:                     25_000_000,
		},
		{
			ID:                                    defs.MustComponentID("wing_element_b"),
			DisplayName:                           "Wing Element B",
			TargetSlot:                            defs.PartSlotAero,
			StatContributionMinBasisPoints:        400,
			StatContributionMaxBasisPoints:        1200,
			ReliabilityContributionMinBasisPoints: 200,
			ReliabilityContributionMaxBasisPoints: 700,
			BuildTimeModifierWeeks:                0,
			CostModifierCents:                     12_000_000,
		},
	}
}

func driverArchetypes() []defs.DriverArchetypeDef {
	return []defs.DriverArchetypeDef{
		{
			ID:                               defs.MustDriverArchetypeID("veteran"),
			DisplayName:                      "Veteran",
			SpeedMinBasisPoints:              6500,
			SpeedMaxBasisPoints:              8500,
			ConsistencyMinBasisPoints:        7200,
			ConsistencyMaxBasisPoints:        9200,
			WetSkillMinBasisPoints:           6000,
			WetSkillMaxBasisPoints:           8000,
			OvertakingMinBasisPoints:         5500,
			OvertakingMaxBasisPoints:         7600,
			DefenceMinBasisPoints:            5600,
			DefenceMaxBasisPoints:            7800,
			AgeMin:                           28,
			AgeMax:                           38,
			StartingReputationMinBasisPoints: 5000,
			StartingReputationMaxBasisPoints: 8000,
		},
		{
			ID:                               defs.MustDriverArchetypeID("rookie_talent"),
			DisplayName:                      "Rookie Talent",
			SpeedMinBasisPoints:              7000,
			SpeedMaxBasisPoints:              9200,
			ConsistencyMinBasisPoints:        5000,
			ConsistencyMaxBasisPoints:        7800,
			WetSkillMinBasisPoints:           5800,
			WetSkillMaxBasisPoints:           8200,
			OvertakingMinBasisPoints:         6200,
			OvertakingMaxBasisPoints:         8800,
			DefenceMinBasisPoints:            5000,
			DefenceMaxBasisPoints:            7600,
			AgeMin:                           18,
			AgeMax:                           23,
			StartingReputationMinBasisPoints: 3500,
			StartingReputationMaxBasisPoints: 6500,
		},
	}
}
