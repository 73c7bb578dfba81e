package refpack

import "github.com/alivastudio/motorracing-manager/defs"

var f1Compounds = []string{"soft", "medium", "hard", "inter", "wet"}

// F1 returns the Formula 1 reference pack: one series over Monaco and
// Silverstone, five dry and wet compounds and a three-mode engine map.
func F1() *defs.Pack {
	return mustPack(defs.PackContents{
		PackID:  "ref_f1",
		Version: "1.0.0",
		Series: []defs.SeriesDef{{
			ID:               defs.MustSeriesID("f1"),
			DisplayName:      "Formula 1 Championship",
			Tier:             1,
			RulesetID:        defs.MustRulesetID("f1_2030_rules"),
			CalendarTemplate: []defs.TrackID{defs.MustTrackID("monaco"), defs.MustTrackID("silverstone")},
			TeamCount:        10,
			DriversPerTeam:   2,
		}},
		Rulesets: []defs.RulesetDef{{
			ID:                    defs.MustRulesetID("f1_2030_rules"),
			DisplayName:           "2030 F1 Regulations",
			PointsTable:           []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1},
			FastestLapBonusPoints: 1,
			AvailableCompounds: []defs.TyreCompoundID{
				defs.MustTyreCompoundID("soft"),
				defs.MustTyreCompoundID("medium"),
				defs.MustTyreCompoundID("hard"),
				defs.MustTyreCompoundID("inter"),
				defs.MustTyreCompoundID("wet"),
			},
			MinCompoundsPerRace: 2,
			RefuellingAllowed:   false,
			AvailableEngineModes: []defs.EngineModeID{
				defs.MustEngineModeID("push"),
				defs.MustEngineModeID("standard"),
				defs.MustEngineModeID("conserve"),
			},
			PartLimitPerCategory: 3,
			BudgetCapCents:       14_000_000_000,
			PitLaneTimeLossMs:    20000,
			PitStopBaseTimeMs:    2500,
			QualifyingFormat:     defs.QualifyingThreeKnockout,
			SprintRaceEnabled:    false,
			SprintPointsTable:    []int{},
			DrsDisabledLaps:      2,
			DrsDisabledInWet:     true,
		}},
		Tracks: []defs.TrackDef{
			{
				ID:                                    defs.MustTrackID("monaco"),
				DisplayName:                           "Monaco Grand Prix",
				Country:                               "Monaco",
				LengthMeters:                          3337,
				BaseTimeMs:                            73000,
				TotalLaps:                             78,
				Corners:                               19,
				Sectors:                               []defs.SectorDef{sector(0, 25000, 2000, 7), sector(1, 24000, 3000, 6), sector(2, 24000, 4000, 6)},
				OvertakingDifficultyRatingBasisPoints: 9200,
				TyreWearMultiplierBasisPoints:         7500,
				FuelConsumptionKgPerLap:               2,
				WeatherProbabilityBasisPoints:         weatherOdds(7000, 1500, 1000, 500),
				AmbientTemperatureBaseCelsius:         22,
				TrackTemperatureBaseCelsius:           38,
				DrsZoneSectorIndices:                  []int{2},
			},
			{
				ID:                                    defs.MustTrackID("silverstone"),
				DisplayName:                           "Silverstone Grand Prix",
				Country:                               "United Kingdom",
				LengthMeters:                          5891,
				BaseTimeMs:                            86000,
				TotalLaps:                             52,
				Corners:                               18,
				Sectors:                               []defs.SectorDef{sector(0, 28000, 3300, 6), sector(1, 29000, 2800, 6), sector(2, 29000, 3900, 6)},
				OvertakingDifficultyRatingBasisPoints: 5600,
				TyreWearMultiplierBasisPoints:         8400,
				FuelConsumptionKgPerLap:               2,
				WeatherProbabilityBasisPoints:         weatherOdds(5500, 2200, 1700, 600),
				AmbientTemperatureBaseCelsius:         18,
				TrackTemperatureBaseCelsius:           30,
				DrsZoneSectorIndices:                  []int{0, 2},
			},
		},
		PartTypes: []defs.PartTypeDef{
			{ID: defs.MustPartTypeID("engine_v1"), DisplayName: "Standard Engine", Slot: defs.PartSlotEngine,
				StatMinBasisPoints: 3000, StatMaxBasisPoints: 9500, BuildTimeBaseWeeks: 4, BuildCostBaseCents: 500_000_000, WeightGrams: 0},
			{ID: defs.MustPartTypeID("aero_front"), DisplayName: "Front Aero Package", Slot: defs.PartSlotAero,
				StatMinBasisPoints: 2500, StatMaxBasisPoints: 9200, BuildTimeBaseWeeks: 3, BuildCostBaseCents: 300_000_000, WeightGrams: 12000},
			{ID: defs.MustPartTypeID("chassis_v1"), DisplayName: "Base Chassis", Slot: defs.PartSlotChassis,
				StatMinBasisPoints: 3500, StatMaxBasisPoints: 9300, BuildTimeBaseWeeks: 5, BuildCostBaseCents: 650_000_000, WeightGrams: 45000},
		},
		TyreCompounds: tyres(
			tyreSpec{"soft", "Soft", 9000, 300, 2, 6, 4, 400, -80, 200, 85, 110, 8},
			tyreSpec{"medium", "Medium", 8200, 220, 2, 10, 6, 300, -40, 150, 82, 108, 7},
			tyreSpec{"hard", "Hard", 7600, 150, 1, 14, 8, 220, -20, 120, 80, 106, 6},
			tyreSpec{"inter", "Intermediate", 7000, 200, 1, 8, 5, 350, -10, 180, 78, 100, 7},
			tyreSpec{"wet", "Wet", 6200, 260, 1, 6, 4, 450, -5, 220, 75, 95, 8},
		),
		Sponsors:         sponsors(),
		Buildings:        buildings(),
		Components:       components(),
		DriverArchetypes: driverArchetypes(),
		WeatherTypes: []defs.WeatherDef{
			weatherType("dry", "Dry", defs.WeatherStateDry, 0, 10000, 5,
				compoundPenalties(f1Compounds, 0, 20, 40, 2500, 4200), weatherOdds(7000, 2000, 900, 100)),
			weatherType("damp", "Damp", defs.WeatherStateDamp, 1200, 7000, -2,
				compoundPenalties(f1Compounds, 900, 700, 600, 0, 600), weatherOdds(2500, 5000, 2200, 300)),
			weatherType("wet", "Wet", defs.WeatherStateWet, 3000, 4000, -8,
				compoundPenalties(f1Compounds, 6000, 5500, 5000, 800, 0), weatherOdds(500, 2000, 6500, 1000)),
			weatherType("monsoon", "Monsoon", defs.WeatherStateMonsoon, 5200, 2500, -11,
				compoundPenalties(f1Compounds, 8000, 7600, 7200, 2000, 200), weatherOdds(200, 1200, 4000, 4600)),
		},
		Scalars: &defs.ScalarTables{
			PartRankTimeCostTable: defs.NewPartRankTimeCostTable(map[defs.PartSlot][]int{
				defs.PartSlotEngine:  rankTable(10, 80),
				defs.PartSlotAero:    rankTable(10, 70),
				defs.PartSlotChassis: rankTable(10, 60),
			}),
			DriverPace:      defs.DriverPaceScalars{BaselineRating: 7000, MsPerRatingPoint: 8},
			Setup:           defs.SetupScalars{Penalties: setupTiers(100, 0, 90, 70, 75, 180, 50, 350, 0, 600)},
			Knowledge:       defs.KnowledgeScalars{MaxPenaltyMs: 300, RetentionPercentPerSeason: 40},
			TyreTemperature: defs.TyreTemperatureScalars{MsPerDegreeOutsideWindow: 25},
			Fuel:            defs.FuelScalars{MsPerKg: 8},
			EngineModes: []defs.EngineModeScalar{
				engineMode("push", -180, 15000, 12000),
				engineMode("standard", 0, 10000, 10000),
				engineMode("conserve", 120, 7000, 8000),
			},
			Drafting: defs.DraftingScalars{MaxBenefitMs: 300, ThresholdGapMs: 2000, DrsBonusMs: 100},
			Variance: defs.VarianceScalars{BaseRangeMs: 150, ConsistencyAttenuationBasisPoints: 5000},
		},
	})
}
