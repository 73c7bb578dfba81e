package refpack

import "github.com/alivastudio/motorracing-manager/defs"

var indyCompounds = []string{"primary", "alternate", "wet"}

// IndyCar returns the IndyCar reference pack. Unlike F1 it allows refuelling,
// runs sprint races and has no budget cap.
func IndyCar() *defs.Pack {
	return mustPack(defs.PackContents{
		PackID:  "ref_indycar",
		Version: "2.1.0",
		Series: []defs.SeriesDef{{
			ID:               defs.MustSeriesID("indycar"),
			DisplayName:      "IndyCar Series",
			Tier:             1,
			RulesetID:        defs.MustRulesetID("indy_2030_rules"),
			CalendarTemplate: []defs.TrackID{defs.MustTrackID("st_pete"), defs.MustTrackID("indy_road")},
			TeamCount:        11,
			DriversPerTeam:   2,
		}},
		Rulesets: []defs.RulesetDef{{
			ID:                    defs.MustRulesetID("indy_2030_rules"),
			DisplayName:           "2030 Indy Regulations",
			PointsTable:           []int{50, 40, 35, 32, 30, 28, 26, 24, 22, 20},
			FastestLapBonusPoints: 0,
			AvailableCompounds: []defs.TyreCompoundID{
				defs.MustTyreCompoundID("primary"),
				defs.MustTyreCompoundID("alternate"),
				defs.MustTyreCompoundID("wet"),
			},
			MinCompoundsPerRace: 2,
			RefuellingAllowed:   true,
			AvailableEngineModes: []defs.EngineModeID{
				defs.MustEngineModeID("attack"),
				defs.MustEngineModeID("standard"),
				defs.MustEngineModeID("save"),
			},
			PartLimitPerCategory: 2,
			BudgetCapCents:       0,
			PitLaneTimeLossMs:    17500,
			PitStopBaseTimeMs:    6200,
			QualifyingFormat:     defs.QualifyingSingleSession,
			SprintRaceEnabled:    true,
			SprintPointsTable:    []int{12, 9, 7, 5, 3, 2, 1},
			DrsDisabledLaps:      0,
			DrsDisabledInWet:     false,
		}},
		Tracks: []defs.TrackDef{
			{
				ID:                                    defs.MustTrackID("st_pete"),
				DisplayName:                           "St. Petersburg",
				Country:                               "United States",
				LengthMeters:                          2901,
				BaseTimeMs:                            70500,
				TotalLaps:                             100,
				Corners:                               14,
				Sectors:                               []defs.SectorDef{sector(0, 23000, 3500, 4), sector(1, 24000, 3200, 5), sector(2, 23500, 3300, 5)},
				OvertakingDifficultyRatingBasisPoints: 5000,
				TyreWearMultiplierBasisPoints:         8200,
				FuelConsumptionKgPerLap:               3,
				WeatherProbabilityBasisPoints:         weatherOdds(6500, 1800, 1300, 400),
				AmbientTemperatureBaseCelsius:         24,
				TrackTemperatureBaseCelsius:           36,
				DrsZoneSectorIndices:                  []int{1},
			},
			{
				ID:                                    defs.MustTrackID("indy_road"),
				DisplayName:                           "Indianapolis Road Course",
				Country:                               "United States",
				LengthMeters:                          3925,
				BaseTimeMs:                            81000,
				TotalLaps:                             85,
				Corners:                               14,
				Sectors:                               []defs.SectorDef{sector(0, 27000, 3000, 4), sector(1, 28000, 3600, 5), sector(2, 26000, 3400, 5)},
				OvertakingDifficultyRatingBasisPoints: 4300,
				TyreWearMultiplierBasisPoints:         7800,
				FuelConsumptionKgPerLap:               3,
				WeatherProbabilityBasisPoints:         weatherOdds(6200, 2000, 1400, 400),
				AmbientTemperatureBaseCelsius:         23,
				TrackTemperatureBaseCelsius:           34,
				DrsZoneSectorIndices:                  []int{0, 2},
			},
		},
		PartTypes: []defs.PartTypeDef{
			{ID: defs.MustPartTypeID("indy_engine"), DisplayName: "Indy Engine", Slot: defs.PartSlotEngine,
				StatMinBasisPoints: 4200, StatMaxBasisPoints: 9000, BuildTimeBaseWeeks: 3, BuildCostBaseCents: 280_000_000, WeightGrams: 0},
			{ID: defs.MustPartTypeID("indy_aero"), DisplayName: "Road Aero Kit", Slot: defs.PartSlotAero,
				StatMinBasisPoints: 4000, StatMaxBasisPoints: 8700, BuildTimeBaseWeeks: 2, BuildCostBaseCents: 180_000_000, WeightGrams: 9000},
			{ID: defs.MustPartTypeID("indy_chassis"), DisplayName: "Dallara Chassis", Slot: defs.PartSlotChassis,
				StatMinBasisPoints: 4500, StatMaxBasisPoints: 9100, BuildTimeBaseWeeks: 4, BuildCostBaseCents: 320_000_000, WeightGrams: 50000},
		},
		TyreCompounds: tyres(
			tyreSpec{"primary", "Primary", 7800, 180, 1, 15, 8, 220, -30, 100, 80, 108, 6},
			tyreSpec{"alternate", "Alternate", 8600, 260, 2, 8, 5, 360, -70, 170, 84, 110, 8},
			tyreSpec{"wet", "Wet", 6500, 240, 1, 7, 4, 420, -10, 210, 74, 96, 8},
		),
		Sponsors:         sponsors(),
		Buildings:        buildings(),
		Components:       components(),
		DriverArchetypes: driverArchetypes(),
		WeatherTypes: []defs.WeatherDef{
			weatherType("dry", "Dry", defs.WeatherStateDry, 0, 10000, 4,
				compoundPenalties(indyCompounds, 0, 50, 3800), weatherOdds(7200, 1900, 800, 100)),
			weatherType("damp", "Damp", defs.WeatherStateDamp, 1100, 7200, -1,
				compoundPenalties(indyCompounds, 800, 700, 500), weatherOdds(2400, 5100, 2100, 400)),
			weatherType("wet", "Wet", defs.WeatherStateWet, 2800, 4300, -7,
				compoundPenalties(indyCompounds, 5400, 5900, 0), weatherOdds(600, 2400, 6000, 1000)),
			weatherType("monsoon", "Monsoon", defs.WeatherStateMonsoon, 4700, 2800, -9,
				compoundPenalties(indyCompounds, 7600, 7800, 300), weatherOdds(300, 1400, 3900, 4400)),
		},
		Scalars: &defs.ScalarTables{
			PartRankTimeCostTable: defs.NewPartRankTimeCostTable(map[defs.PartSlot][]int{
				defs.PartSlotEngine:  rankTable(11, 50),
				defs.PartSlotAero:    rankTable(11, 45),
				defs.PartSlotChassis: rankTable(11, 40),
			}),
			DriverPace:      defs.DriverPaceScalars{BaselineRating: 6800, MsPerRatingPoint: 7},
			Setup:           defs.SetupScalars{Penalties: setupTiers(100, 0, 85, 80, 70, 180, 40, 360, 0, 620)},
			Knowledge:       defs.KnowledgeScalars{MaxPenaltyMs: 260, RetentionPercentPerSeason: 50},
			TyreTemperature: defs.TyreTemperatureScalars{MsPerDegreeOutsideWindow: 22},
			Fuel:            defs.FuelScalars{MsPerKg: 7},
			EngineModes: []defs.EngineModeScalar{
				engineMode("attack", -120, 13500, 11200),
				engineMode("standard", 0, 10000, 10000),
				engineMode("save", 140, 6800, 7600),
			},
			Drafting: defs.DraftingScalars{MaxBenefitMs: 240, ThresholdGapMs: 1800, DrsBonusMs: 60},
			Variance: defs.VarianceScalars{BaseRangeMs: 180, ConsistencyAttenuationBasisPoints: 4500},
		},
	})
}
