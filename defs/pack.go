// pack.go
//
// Defines the Pack aggregate: pack metadata plus one ordered collection per
// entity kind and the scalar bundle.

package defs

import (
	"fmt"
	"slices"
	"strings"
)

// PackContents is the raw material a loader hands to NewPack. The caller keeps
// ownership of its slices and maps; NewPack copies all of them.
type PackContents struct {
	PackID           string               `yaml:"pack_id"`
	Version          string               `yaml:"version"`
	Series           []SeriesDef          `yaml:"series"`
	Rulesets         []RulesetDef         `yaml:"rulesets"`
	Tracks           []TrackDef           `yaml:"tracks"`
	PartTypes        []PartTypeDef        `yaml:"part_types"`
	TyreCompounds    []TyreCompoundDef    `yaml:"tyre_compounds"`
	Sponsors         []SponsorDef         `yaml:"sponsors"`
	Buildings        []BuildingDef        `yaml:"buildings"`
	Components       []ComponentDef       `yaml:"components"`
	DriverArchetypes []DriverArchetypeDef `yaml:"driver_archetypes"`
	WeatherTypes     []WeatherDef         `yaml:"weather_types"`
	Scalars          *ScalarTables        `yaml:"scalars"`
}

// Pack is an immutable definition pack. The zero value is an empty pack that
// fails validation; use NewPack to build a real one.
//
// Collections returned by the accessors are deep copies; nothing a caller does
// to them reaches the pack.
type Pack struct {
	c PackContents
}

// NewPack copies c into a new Pack.
//
// Only caller defects are rejected here (blank metadata, missing scalars,
// identifiers that were never set, blank names). Everything else, including
// ranges, sums and cross references, is left to the validator so that content
// problems are reported together.
func NewPack(c PackContents) (*Pack, error) {
	if err := checkContents(&c); err != nil {
		return nil, err
	}
	return &Pack{c: cloneContents(c)}, nil
}

// ID returns the pack id.
func (p *Pack) ID() string { return p.c.PackID }

// Version returns the pack's semantic version string.
func (p *Pack) Version() string { return p.c.Version }

// Ordered collections, in authoring order.

func (p *Pack) Series() []SeriesDef { return cloneEach(p.c.Series, SeriesDef.Clone) }
func (p *Pack) Rulesets() []RulesetDef { return cloneEach(p.c.Rulesets, RulesetDef.Clone) }
func (p *Pack) Tracks() []TrackDef { return cloneEach(p.c.Tracks, TrackDef.Clone) }
func (p *Pack) PartTypes() []PartTypeDef { return slices.Clone(p.c.PartTypes) }
func (p *Pack) TyreCompounds() []TyreCompoundDef { return slices.Clone(p.c.TyreCompounds) }
func (p *Pack) Sponsors() []SponsorDef { return cloneEach(p.c.Sponsors, SponsorDef.Clone) }
func (p *Pack) Buildings() []BuildingDef { return cloneEach(p.c.Buildings, BuildingDef.Clone) }
func (p *Pack) Components() []ComponentDef { return slices.Clone(p.c.Components) }
func (p *Pack) DriverArchetypes() []DriverArchetypeDef { return slices.Clone(p.c.DriverArchetypes) }
func (p *Pack) WeatherTypes() []WeatherDef { return cloneEach(p.c.WeatherTypes, WeatherDef.Clone) }

// Scalars returns a copy of the scalar bundle, or nil if the pack has none.
func (p *Pack) Scalars() *ScalarTables {
	if p.c.Scalars == nil {
		return nil
	}
	s := p.c.Scalars.Clone()
	return &s
}

// Contents returns a deep copy of everything in the pack. Editing the copy and
// passing it back to NewPack is how a derived pack is built.
func (p *Pack) Contents() PackContents {
	return cloneContents(p.c)
}

func cloneContents(c PackContents) PackContents {
	out := c
	out.Series = cloneEach(c.Series, SeriesDef.Clone)
	out.Rulesets = cloneEach(c.Rulesets, RulesetDef.Clone)
	out.Tracks = cloneEach(c.Tracks, TrackDef.Clone)
	out.PartTypes = slices.Clone(c.PartTypes)
	out.TyreCompounds = slices.Clone(c.TyreCompounds)
	out.Sponsors = cloneEach(c.Sponsors, SponsorDef.Clone)
	out.Buildings = cloneEach(c.Buildings, BuildingDef.Clone)
	out.Components = slices.Clone(c.Components)
	out.DriverArchetypes = slices.Clone(c.DriverArchetypes)
	out.WeatherTypes = cloneEach(c.WeatherTypes, WeatherDef.Clone)
	if c.Scalars != nil {
		s := c.Scalars.Clone()
		out.Scalars = &s
	}
	return out
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func checkIDs[K idKind](owner, field string, ids ...ID[K]) error {
	for _, id := range ids {
		if id.IsZero() {
			var zero ID[K]
			return invalid("%s.%s contains an unset %s", owner, field, zero.Kind())
		}
	}
	return nil
}

func checkKeys[K idKind, V any](owner, field string, m map[ID[K]]V) error {
	for id := range m {
		if id.IsZero() {
			return invalid("%s.%s contains an unset %s", owner, field, id.Kind())
		}
	}
	return nil
}

func checkNamed[K idKind](kind string, i int, id ID[K], displayName string) error {
	if id.IsZero() {
		return invalid("%s[%d] has an unset %s", kind, i, id.Kind())
	}
	if blank(displayName) {
		return invalid("%s.DisplayName cannot be empty or whitespace", id)
	}
	return nil
}

func checkContents(c *PackContents) error {
	if blank(c.PackID) {
		return invalid("PackId cannot be empty or whitespace")
	}
	if blank(c.Version) {
		return invalid("Version cannot be empty or whitespace")
	}
	if c.Scalars == nil {
		return invalid("Scalars cannot be nil")
	}
	for i, m := range c.Scalars.EngineModes {
		if m.ID.IsZero() {
			return invalid("EngineModes[%d] has an unset %s", i, m.ID.Kind())
		}
	}

	for i, s := range c.Series {
		if err := checkNamed("SeriesDef", i, s.ID, s.DisplayName); err != nil {
			return err
		}
		if err := checkIDs(s.ID.String(), "RulesetId", s.RulesetID); err != nil {
			return err
		}
		if err := checkIDs(s.ID.String(), "CalendarTemplate", s.CalendarTemplate...); err != nil {
			return err
		}
	}
	for i, r := range c.Rulesets {
		if err := checkNamed("RulesetDef", i, r.ID, r.DisplayName); err != nil {
			return err
		}
		if err := checkIDs(r.ID.String(), "AvailableCompounds", r.AvailableCompounds...); err != nil {
			return err
		}
		if err := checkIDs(r.ID.String(), "AvailableEngineModes", r.AvailableEngineModes...); err != nil {
			return err
		}
	}
	for i, t := range c.Tracks {
		if err := checkNamed("TrackDef", i, t.ID, t.DisplayName); err != nil {
			return err
		}
		if blank(t.Country) {
			return invalid("%s.Country cannot be empty or whitespace", t.ID)
		}
		if err := checkKeys(t.ID.String(), "WeatherProbabilityBasisPoints", t.WeatherProbabilityBasisPoints); err != nil {
			return err
		}
	}
	for i, p := range c.PartTypes {
		if err := checkNamed("PartTypeDef", i, p.ID, p.DisplayName); err != nil {
			return err
		}
	}
	for i, t := range c.TyreCompounds {
		if err := checkNamed("TyreCompoundDef", i, t.ID, t.DisplayName); err != nil {
			return err
		}
	}
	for i, s := range c.Sponsors {
		if err := checkNamed("SponsorDef", i, s.ID, s.DisplayName); err != nil {
			return err
		}
		for j, o := range s.ObjectiveTemplates {
			if blank(o.Description) || blank(o.MetricKey) {
				return invalid("%s.ObjectiveTemplates[%d] needs a Description and a MetricKey", s.ID, j)
			}
		}
	}
	for i, b := range c.Buildings {
		if err := checkNamed("BuildingDef", i, b.ID, b.DisplayName); err != nil {
			return err
		}
	}
	for i, comp := range c.Components {
		if err := checkNamed("ComponentDef", i, comp.ID, comp.DisplayName); err != nil {
			return err
		}
	}
	for i, d := range c.DriverArchetypes {
		if err := checkNamed("DriverArchetypeDef", i, d.ID, d.DisplayName); err != nil {
			return err
		}
	}
	for i, w := range c.WeatherTypes {
		if err := checkNamed("WeatherDef", i, w.ID, w.DisplayName); err != nil {
			return err
		}
		if err := checkKeys(w.ID.String(), "CompoundMatchPenaltyMs", w.CompoundMatchPenaltyMs); err != nil {
			return err
		}
		if err := checkKeys(w.ID.String(), "TransitionProbabilityBasisPoints", w.TransitionProbabilityBasisPoints); err != nil {
			return err
		}
	}
	return nil
}
