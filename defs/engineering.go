package defs

// PartTypeDef is a buildable car part and the stat range it can roll.
type PartTypeDef struct {
	ID                 PartTypeID `yaml:"id"`
	DisplayName        string     `yaml:"display_name"`
	Slot               PartSlot   `yaml:"slot"`
	StatMinBasisPoints int        `yaml:"stat_min_bp"`
	StatMaxBasisPoints int        `yaml:"stat_max_bp"`
	BuildTimeBaseWeeks int        `yaml:"build_time_base_weeks"`
	BuildCostBaseCents int64      `yaml:"build_cost_base_cents"`
	WeightGrams        int        `yaml:"weight_g"`
}

// ComponentDef is a sub-part fitted into a part of TargetSlot. Its
// contribution ranges add to the host part's stat and reliability.
type ComponentDef struct {
	ID                                    ComponentID `yaml:"id"`
	DisplayName                           string      `yaml:"display_name"`
	TargetSlot                            PartSlot    `yaml:"target_slot"`
	StatContributionMinBasisPoints        int         `yaml:"stat_contribution_min_bp"`
	StatContributionMaxBasisPoints        int         `yaml:"stat_contribution_max_bp"`
	ReliabilityContributionMinBasisPoints int         `yaml:"reliability_contribution_min_bp"`
	ReliabilityContributionMaxBasisPoints int         `yaml:"reliability_contribution_max_bp"`
	BuildTimeModifierWeeks                int         `yaml:"build_time_modifier_weeks"`
	CostModifierCents                     int64       `yaml:"cost_modifier_cents"`
}
