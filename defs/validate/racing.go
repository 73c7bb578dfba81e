package validate

import (
	"github.com/samber/lo"

	"github.com/alivastudio/motorracing-manager/defs"
)

func checkTyreCompounds(c *checker, compounds []defs.TyreCompoundDef) {
	for _, t := range compounds {
		id := t.ID.String()
		c.basisPoints(id+".GripRatingBasisPoints", t.GripRatingBasisPoints)
		positive(c, id+".WearRatePerLapBasisPoints", t.WearRatePerLapBasisPoints)
		nonNegative(c, id+".FreshLaps", t.FreshLaps)
		positive(c, id+".OptimalLaps", t.OptimalLaps)
		nonNegative(c, id+".WornLaps", t.WornLaps)
		positive(c, id+".CliffMsPerLap", t.CliffMsPerLap)
		if t.OptimalBonusMs >= 0 {
			c.addf("%s.OptimalBonusMs must be negative.", id)
		}
		if t.FreshPenaltyMs <= 0 {
			c.addf("%s.FreshPenaltyMs must be positive.", id)
		}
		if t.TemperatureWindowLowCelsius >= t.TemperatureWindowHighCelsius {
			c.addf("%s temperature window low must be less than high.", id)
		}
		positive(c, id+".WarmupRateCelsiusPerLap", t.WarmupRateCelsiusPerLap)
	}
}

func compoundIDs(pc defs.PackContents) map[defs.TyreCompoundID]struct{} {
	return idSet(pc.TyreCompounds, func(t defs.TyreCompoundDef) defs.TyreCompoundID { return t.ID })
}

func weatherIDs(pc defs.PackContents) map[defs.WeatherTypeID]struct{} {
	return idSet(pc.WeatherTypes, func(w defs.WeatherDef) defs.WeatherTypeID { return w.ID })
}

func checkWeather(c *checker, pc defs.PackContents) {
	compounds := compoundIDs(pc)
	weather := weatherIDs(pc)

	for _, w := range pc.WeatherTypes {
		id := w.ID.String()
		c.basisPoints(id+".GripModifierBasisPoints", w.GripModifierBasisPoints)
		nonNegative(c, id+".BasePenaltyMs", w.BasePenaltyMs)
		if !w.State.Valid() {
			c.addf("%s.State must be a valid WeatherState value.", id)
		}
		probabilityMap(c, id+".TransitionProbabilityBasisPoints", w.TransitionProbabilityBasisPoints, weather)
		references(c, id, "CompoundMatchPenaltyMs", defs.SortedKeys(w.CompoundMatchPenaltyMs), compounds)
	}
}

func checkRulesets(c *checker, pc defs.PackContents) {
	compounds := compoundIDs(pc)

	for _, r := range pc.Rulesets {
		id := r.ID.String()
		c.nonEmpty(id+".PointsTable", len(r.PointsTable))
		c.nonEmpty(id+".AvailableCompounds", len(r.AvailableCompounds))
		c.nonEmpty(id+".AvailableEngineModes", len(r.AvailableEngineModes))
		if lo.SomeBy(r.PointsTable, isNegative) {
			c.addf("%s.PointsTable values must be >= 0.", id)
		}
		if lo.SomeBy(r.SprintPointsTable, isNegative) {
			c.addf("%s.SprintPointsTable values must be >= 0.", id)
		}
		nonNegative(c, id+".FastestLapBonusPoints", r.FastestLapBonusPoints)
		if r.MinCompoundsPerRace <= 0 || r.MinCompoundsPerRace > len(r.AvailableCompounds) {
			c.addf("%s.MinCompoundsPerRace must be > 0 and <= AvailableCompounds.Count.", id)
		}
		positive(c, id+".PartLimitPerCategory", r.PartLimitPerCategory)
		nonNegative(c, id+".BudgetCapCents", r.BudgetCapCents)
		positive(c, id+".PitLaneTimeLossMs", r.PitLaneTimeLossMs)
		positive(c, id+".PitStopBaseTimeMs", r.PitStopBaseTimeMs)
		nonNegative(c, id+".DrsDisabledLaps", r.DrsDisabledLaps)
		if !r.QualifyingFormat.Valid() {
			c.addf("%s.QualifyingFormat must be valid.", id)
		}

		switch {
		case r.SprintRaceEnabled && len(r.SprintPointsTable) == 0:
			c.addf("%s.SprintPointsTable must be non-empty when SprintRaceEnabled is true.", id)
		case !r.SprintRaceEnabled && len(r.SprintPointsTable) > 0:
			c.addf("%s.SprintPointsTable must be empty when SprintRaceEnabled is false.", id)
		}

		references(c, id, "AvailableCompounds", r.AvailableCompounds, compounds)
		// A missing scalar bundle is already reported by checkPresence.
		if pc.Scalars != nil {
			modes := idSet(pc.Scalars.EngineModes, func(m defs.EngineModeScalar) defs.EngineModeID { return m.ID })
			references(c, id, "AvailableEngineModes", r.AvailableEngineModes, modes)
		}
	}
}

func isNegative(v int) bool { return v < 0 }

func checkTracks(c *checker, pc defs.PackContents) {
	weather := weatherIDs(pc)

	for _, t := range pc.Tracks {
		id := t.ID.String()
		positive(c, id+".LengthMeters", t.LengthMeters)
		positive(c, id+".BaseTimeMs", t.BaseTimeMs)
		positive(c, id+".TotalLaps", t.TotalLaps)
		nonNegative(c, id+".Corners", t.Corners)
		c.nonEmpty(id+".Sectors", len(t.Sectors))
		c.basisPoints(id+".OvertakingDifficultyRatingBasisPoints", t.OvertakingDifficultyRatingBasisPoints)
		c.basisPoints(id+".TyreWearMultiplierBasisPoints", t.TyreWearMultiplierBasisPoints)
		positive(c, id+".FuelConsumptionKgPerLap", t.FuelConsumptionKgPerLap)
		probabilityMap(c, id+".WeatherProbabilityBasisPoints", t.WeatherProbabilityBasisPoints, weather)

		sum := 0
		for i, s := range t.Sectors {
			if s.Index != i {
				c.addf("%s.Sectors must have sequential zero-based indices.", id)
			}
			positive(c, id+".Sector BaseTimeMs", s.BaseTimeMs)
			c.basisPoints(id+".Sector StraightPercentBasisPoints", s.StraightPercentBasisPoints)
			nonNegative(c, id+".Sector CornerCount", s.CornerCount)
			sum += s.BaseTimeMs
		}
		if sum != t.BaseTimeMs {
			c.addf("%s.BaseTimeMs must equal the sum of sector BaseTimeMs.", id)
		}

		seen := make(map[int]struct{}, len(t.DrsZoneSectorIndices))
		for _, sector := range t.DrsZoneSectorIndices {
			if _, dup := seen[sector]; dup {
				c.addf("%s.DrsZoneSectorIndices must be unique.", id)
			}
			seen[sector] = struct{}{}
			if sector < 0 || sector >= len(t.Sectors) {
				c.addf("%s.DrsZoneSectorIndices must reference valid sector indices.", id)
			}
		}
	}
}

func checkSeries(c *checker, pc defs.PackContents) {
	tracks := idSet(pc.Tracks, func(t defs.TrackDef) defs.TrackID { return t.ID })
	rulesets := idSet(pc.Rulesets, func(r defs.RulesetDef) defs.RulesetID { return r.ID })

	for _, s := range pc.Series {
		id := s.ID.String()
		if s.Tier < 1 {
			c.addf("%s.Tier must be >= 1.", id)
		}
		positive(c, id+".TeamCount", s.TeamCount)
		positive(c, id+".DriversPerTeam", s.DriversPerTeam)
		c.nonEmpty(id+".CalendarTemplate", len(s.CalendarTemplate))
		references(c, id, "RulesetId", []defs.RulesetID{s.RulesetID}, rulesets)
		references(c, id, "CalendarTemplate", s.CalendarTemplate, tracks)
	}
}
