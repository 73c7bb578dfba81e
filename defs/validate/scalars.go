package validate

import (
	"github.com/alivastudio/motorracing-manager/defs"
)

func checkScalars(c *checker, s *defs.ScalarTables) {
	if s == nil {
		return
	}

	for _, slot := range defs.AllPartSlots() {
		values, ok := s.PartRankTimeCostTable.Slot(slot)
		switch {
		case !ok:
			c.addf("PartRankTimeCostTable is missing slot '%s'.", slot)
		case len(values) == 0:
			c.addf("PartRankTimeCostTable slot '%s' must be non-empty.", slot)
		default:
			for i := 1; i < len(values); i++ {
				if values[i] < values[i-1] {
					c.addf("PartRankTimeCostTable slot '%s' must be monotonically non-decreasing.", slot)
					break
				}
			}
		}
	}

	positive(c, "DriverPaceScalars.MsPerRatingPoint", s.DriverPace.MsPerRatingPoint)

	c.nonEmpty("SetupScalars.Penalties", len(s.Setup.Penalties))
	for _, p := range s.Setup.Penalties {
		c.between("SetupPenaltyEntry.MatchPercentage", p.MatchPercentage, 0, 100)
		nonNegative(c, "SetupPenaltyEntry.PenaltyMs", p.PenaltyMs)
	}

	nonNegative(c, "KnowledgeScalars.MaxPenaltyMs", s.Knowledge.MaxPenaltyMs)
	c.between("KnowledgeScalars.RetentionPercentPerSeason", s.Knowledge.RetentionPercentPerSeason, 0, 100)

	nonNegative(c, "TyreTemperatureScalars.MsPerDegreeOutsideWindow", s.TyreTemperature.MsPerDegreeOutsideWindow)
	positive(c, "FuelScalars.MsPerKg", s.Fuel.MsPerKg)

	nonNegative(c, "DraftingScalars.MaxBenefitMs", s.Drafting.MaxBenefitMs)
	nonNegative(c, "DraftingScalars.ThresholdGapMs", s.Drafting.ThresholdGapMs)
	nonNegative(c, "DraftingScalars.DrsBonusMs", s.Drafting.DrsBonusMs)

	nonNegative(c, "VarianceScalars.BaseRangeMs", s.Variance.BaseRangeMs)
	c.basisPoints("VarianceScalars.ConsistencyAttenuationBasisPoints", s.Variance.ConsistencyAttenuationBasisPoints)

	c.nonEmpty("ScalarTables.EngineModes", len(s.EngineModes))
	duplicates(c, "EngineModeScalar", s.EngineModes, func(m defs.EngineModeScalar) defs.EngineModeID { return m.ID })
	for _, m := range s.EngineModes {
		positive(c, m.ID.String()+".ReliabilityMultiplierBasisPoints", m.ReliabilityMultiplierBasisPoints)
		positive(c, m.ID.String()+".FuelEfficiencyMultiplierBasisPoints", m.FuelEfficiencyMultiplierBasisPoints)
	}
}
