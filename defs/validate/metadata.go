package validate

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/mod/semver"

	"github.com/alivastudio/motorracing-manager/defs"
)

func checkMetadata(c *checker, pc defs.PackContents) {
	if strings.TrimSpace(pc.PackID) == "" {
		c.addf("PackId must be non-empty.")
	}
	if strings.TrimSpace(pc.Version) == "" {
		c.addf("PackVersion must be non-empty.")
	} else if !isSemver(pc.Version) {
		c.addf("PackVersion '%s' is not valid semver.", pc.Version)
	}
}

// isSemver accepts MAJOR.MINOR.PATCH with optional pre-release and build
// suffixes. The x/mod parser wants a leading "v" and also accepts the
// shorthand "v1" and "v1.2" forms, which a pack version may not use.
func isSemver(v string) bool {
	if strings.HasPrefix(v, "v") || !semver.IsValid("v"+v) {
		return false
	}
	core, _, _ := strings.Cut(v, "+")
	core, _, _ = strings.Cut(core, "-")
	return strings.Count(core, ".") == 2
}

func checkPresence(c *checker, pc defs.PackContents) {
	c.nonEmpty("Series", len(pc.Series))
	c.nonEmpty("Rulesets", len(pc.Rulesets))
	c.nonEmpty("Tracks", len(pc.Tracks))
	c.nonEmpty("PartTypes", len(pc.PartTypes))
	c.nonEmpty("TyreCompounds", len(pc.TyreCompounds))
	c.nonEmpty("Sponsors", len(pc.Sponsors))
	c.nonEmpty("Buildings", len(pc.Buildings))
	c.nonEmpty("Components", len(pc.Components))
	c.nonEmpty("DriverArchetypes", len(pc.DriverArchetypes))
	c.nonEmpty("WeatherTypes", len(pc.WeatherTypes))
	if pc.Scalars == nil {
		c.addf("Scalars must be provided.")
	}
}

func checkUniqueness(c *checker, pc defs.PackContents) {
	duplicates(c, "SeriesDef", pc.Series, func(v defs.SeriesDef) defs.SeriesID { return v.ID })
	duplicates(c, "RulesetDef", pc.Rulesets, func(v defs.RulesetDef) defs.RulesetID { return v.ID })
	duplicates(c, "TrackDef", pc.Tracks, func(v defs.TrackDef) defs.TrackID { return v.ID })
	duplicates(c, "PartTypeDef", pc.PartTypes, func(v defs.PartTypeDef) defs.PartTypeID { return v.ID })
	duplicates(c, "TyreCompoundDef", pc.TyreCompounds, func(v defs.TyreCompoundDef) defs.TyreCompoundID { return v.ID })
	duplicates(c, "SponsorDef", pc.Sponsors, func(v defs.SponsorDef) defs.SponsorID { return v.ID })
	duplicates(c, "BuildingDef", pc.Buildings, func(v defs.BuildingDef) defs.BuildingID { return v.ID })
	duplicates(c, "ComponentDef", pc.Components, func(v defs.ComponentDef) defs.ComponentID { return v.ID })
	duplicates(c, "DriverArchetypeDef", pc.DriverArchetypes, func(v defs.DriverArchetypeDef) defs.DriverArchetypeID { return v.ID })
	duplicates(c, "WeatherDef", pc.WeatherTypes, func(v defs.WeatherDef) defs.WeatherTypeID { return v.ID })
}

// duplicates reports each repeated id once, in order of first appearance.
func duplicates[T any, K identifier](c *checker, kind string, items []T, key func(T) K) {
	ids := lo.Map(items, func(item T, _ int) K { return key(item) })
	for _, dup := range lo.FindDuplicates(ids) {
		c.addf("%s: duplicate id '%s'.", kind, dup)
	}
}
