package validate

import (
	"github.com/alivastudio/motorracing-manager/defs"
)

func checkPartTypes(c *checker, parts []defs.PartTypeDef) {
	for _, p := range parts {
		id := p.ID.String()
		if !p.Slot.Valid() {
			c.addf("%s.Slot must be valid.", id)
		}
		c.basisPointRange(id, "Stat", "stat", p.StatMinBasisPoints, p.StatMaxBasisPoints)
		positive(c, id+".BuildTimeBaseWeeks", p.BuildTimeBaseWeeks)
		positive(c, id+".BuildCostBaseCents", p.BuildCostBaseCents)
		nonNegative(c, id+".WeightGrams", p.WeightGrams)
	}
}

func checkComponents(c *checker, components []defs.ComponentDef) {
	for _, comp := range components {
		id := comp.ID.String()
		if !comp.TargetSlot.Valid() {
			c.addf("%s.TargetSlot must be valid.", id)
		}
		c.basisPointRange(id, "StatContribution", "stat contribution",
			comp.StatContributionMinBasisPoints, comp.StatContributionMaxBasisPoints)
		c.basisPointRange(id, "ReliabilityContribution", "reliability contribution",
			comp.ReliabilityContributionMinBasisPoints, comp.ReliabilityContributionMaxBasisPoints)
	}
}

func checkDriverArchetypes(c *checker, archetypes []defs.DriverArchetypeDef) {
	for _, d := range archetypes {
		id := d.ID.String()
		c.basisPointRange(id, "Speed", "speed", d.SpeedMinBasisPoints, d.SpeedMaxBasisPoints)
		c.basisPointRange(id, "Consistency", "consistency", d.ConsistencyMinBasisPoints, d.ConsistencyMaxBasisPoints)
		c.basisPointRange(id, "WetSkill", "wet skill", d.WetSkillMinBasisPoints, d.WetSkillMaxBasisPoints)
		c.basisPointRange(id, "Overtaking", "overtaking", d.OvertakingMinBasisPoints, d.OvertakingMaxBasisPoints)
		c.basisPointRange(id, "Defence", "defence", d.DefenceMinBasisPoints, d.DefenceMaxBasisPoints)
		c.basisPointRange(id, "StartingReputation", "starting reputation",
			d.StartingReputationMinBasisPoints, d.StartingReputationMaxBasisPoints)
		c.minMax(id+" age range", d.AgeMin, d.AgeMax)
		if d.AgeMin <= 0 || d.AgeMax <= 0 {
			c.addf("%s.AgeMin and AgeMax must be > 0.", id)
		}
	}
}
