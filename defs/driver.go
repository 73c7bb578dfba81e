package defs

// DriverArchetypeDef bounds the attributes rolled for a generated driver.
type DriverArchetypeDef struct {
	ID                               DriverArchetypeID `yaml:"id"`
	DisplayName                      string            `yaml:"display_name"`
	SpeedMinBasisPoints              int               `yaml:"speed_min_bp"`
	SpeedMaxBasisPoints              int               `yaml:"speed_max_bp"`
	ConsistencyMinBasisPoints        int               `yaml:"consistency_min_bp"`
	ConsistencyMaxBasisPoints        int               `yaml:"consistency_max_bp"`
	WetSkillMinBasisPoints           int               `yaml:"wet_skill_min_bp"`
	WetSkillMaxBasisPoints           int               `yaml:"wet_skill_max_bp"`
	OvertakingMinBasisPoints         int               `yaml:"overtaking_min_bp"`
	OvertakingMaxBasisPoints         int               `yaml:"overtaking_max_bp"`
	DefenceMinBasisPoints            int               `yaml:"defence_min_bp"`
	DefenceMaxBasisPoints            int               `yaml:"defence_max_bp"`
	AgeMin                           int               `yaml:"age_min"`
	AgeMax                           int               `yaml:"age_max"`
	StartingReputationMinBasisPoints int               `yaml:"starting_reputation_min_bp"`
	StartingReputationMaxBasisPoints int               `yaml:"starting_reputation_max_bp"`
}
