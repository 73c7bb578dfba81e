package validate

import (
	"github.com/samber/lo"

	"github.com/alivastudio/motorracing-manager/defs"
)

func checkSponsors(c *checker, sponsors []defs.SponsorDef) {
	for _, s := range sponsors {
		id := s.ID.String()
		if !s.Tier.Valid() {
			c.addf("%s.Tier must be valid.", id)
		}
		nonNegative(c, id+".PaymentPerRaceCents", s.PaymentPerRaceCents)
		nonNegative(c, id+".SigningBonusCents", s.SigningBonusCents)
		c.basisPoints(id+".MinTeamReputationBasisPoints", s.MinTeamReputationBasisPoints)
		nonNegative(c, id+".MinChampionshipPosition", s.MinChampionshipPosition)
		c.nonEmpty(id+".ObjectiveTemplates", len(s.ObjectiveTemplates))
		if lo.SomeBy(s.ObjectiveTemplates, func(o defs.SponsorObjectiveTemplate) bool { return o.PenaltyCents < 0 }) {
			c.addf("%s.ObjectiveTemplates PenaltyCents must be >= 0.", id)
		}
	}
}

func checkBuildings(c *checker, buildings []defs.BuildingDef) {
	for _, b := range buildings {
		id := b.ID.String()
		c.nonEmpty(id+".Levels", len(b.Levels))
		for i, l := range b.Levels {
			if l.Level != i+1 {
				c.addf("%s.Levels must be contiguous and start at 1.", id)
			}
			nonNegative(c, id+".UpgradeCostCents", l.UpgradeCostCents)
			positive(c, id+".UpgradeTimeWeeks", l.UpgradeTimeWeeks)
			c.nonEmpty(id+".Effects", len(l.Effects))
			for _, e := range l.Effects {
				if !e.EffectType.Valid() {
					c.addf("%s.EffectType must be valid.", id)
				}
				c.basisPoints(id+".Effect ValueBasisPoints", e.ValueBasisPoints)
			}
		}
	}
}
