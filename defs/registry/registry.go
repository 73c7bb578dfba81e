// Package registry serves typed, id-indexed lookups over a definition pack.
//
// A Registry is built once and never changes, so it can be shared freely
// between goroutines. Switching content, for example to another racing
// series, means building a new Registry from another pack.
package registry

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/validate"
)

// Registry is the read-only view over a pack. Every definition it returns is
// a deep copy, so callers may modify what they get back.
type Registry struct {
	packID  string
	version string

	series           index[defs.SeriesID, defs.SeriesDef]
	rulesets         index[defs.RulesetID, defs.RulesetDef]
	tracks           index[defs.TrackID, defs.TrackDef]
	partTypes        index[defs.PartTypeID, defs.PartTypeDef]
	tyreCompounds    index[defs.TyreCompoundID, defs.TyreCompoundDef]
	sponsors         index[defs.SponsorID, defs.SponsorDef]
	buildings        index[defs.BuildingID, defs.BuildingDef]
	components       index[defs.ComponentID, defs.ComponentDef]
	driverArchetypes index[defs.DriverArchetypeID, defs.DriverArchetypeDef]
	weatherTypes     index[defs.WeatherTypeID, defs.WeatherDef]
	scalars          defs.ScalarTables
}

// New indexes p without validating it. Callers that did not validate the pack
// themselves should use Load. If p holds duplicate ids the last one wins.
func New(p *defs.Pack) (*Registry, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: pack cannot be nil", defs.ErrInvalidArgument)
	}
	pc := p.Contents()
	if pc.Scalars == nil {
		return nil, fmt.Errorf("%w: pack %q has no scalars", defs.ErrInvalidArgument, pc.PackID)
	}

	r := &Registry{
		packID:  pc.PackID,
		version: pc.Version,
		series: newIndex("SeriesDef", pc.Series,
			func(v defs.SeriesDef) defs.SeriesID { return v.ID }, defs.SeriesDef.Clone),
		rulesets: newIndex("RulesetDef", pc.Rulesets,
			func(v defs.RulesetDef) defs.RulesetID { return v.ID }, defs.RulesetDef.Clone),
		tracks: newIndex("TrackDef", pc.Tracks,
			func(v defs.TrackDef) defs.TrackID { return v.ID }, defs.TrackDef.Clone),
		partTypes: newIndex("PartTypeDef", pc.PartTypes,
			func(v defs.PartTypeDef) defs.PartTypeID { return v.ID }, nil),
		tyreCompounds: newIndex("TyreCompoundDef", pc.TyreCompounds,
			func(v defs.TyreCompoundDef) defs.TyreCompoundID { return v.ID }, nil),
		sponsors: newIndex("SponsorDef", pc.Sponsors,
			func(v defs.SponsorDef) defs.SponsorID { return v.ID }, defs.SponsorDef.Clone),
		buildings: newIndex("BuildingDef", pc.Buildings,
			func(v defs.BuildingDef) defs.BuildingID { return v.ID }, defs.BuildingDef.Clone),
		components: newIndex("ComponentDef", pc.Components,
			func(v defs.ComponentDef) defs.ComponentID { return v.ID }, nil),
		driverArchetypes: newIndex("DriverArchetypeDef", pc.DriverArchetypes,
			func(v defs.DriverArchetypeDef) defs.DriverArchetypeID { return v.ID }, nil),
		weatherTypes: newIndex("WeatherDef", pc.WeatherTypes,
			func(v defs.WeatherDef) defs.WeatherTypeID { return v.ID }, defs.WeatherDef.Clone),
		scalars: *pc.Scalars,
	}

	logrus.Debugf("registry built for pack %q: %d series, %d tracks, %d tyre compounds, %d weather types",
		r.packID, r.series.len(), r.tracks.len(), r.tyreCompounds.len(), r.weatherTypes.len())
	return r, nil
}

// Load validates p and builds a Registry from it. An invalid pack is refused
// with an error wrapping validate.ErrInvalidPack.
func Load(p *defs.Pack) (*Registry, error) {
	if err := validate.Pack(p).Err(); err != nil {
		return nil, err
	}
	return New(p)
}

// PackID returns the id of the pack the registry was built from.
func (r *Registry) PackID() string { return r.packID }

// Version returns the pack's version.
func (r *Registry) Version() string { return r.version }

// Lookups. An unknown id returns an error wrapping defs.ErrNotFound.

func (r *Registry) Series(id defs.SeriesID) (defs.SeriesDef, error) { return r.series.get(id) }
func (r *Registry) Ruleset(id defs.RulesetID) (defs.RulesetDef, error) { return r.rulesets.get(id) }
func (r *Registry) Track(id defs.TrackID) (defs.TrackDef, error) { return r.tracks.get(id) }
func (r *Registry) PartType(id defs.PartTypeID) (defs.PartTypeDef, error) {
	return r.partTypes.get(id)
}
func (r *Registry) TyreCompound(id defs.TyreCompoundID) (defs.TyreCompoundDef, error) {
	return r.tyreCompounds.get(id)
}
func (r *Registry) Sponsor(id defs.SponsorID) (defs.SponsorDef, error) { return r.sponsors.get(id) }
func (r *Registry) Building(id defs.BuildingID) (defs.BuildingDef, error) {
	return r.buildings.get(id)
}
func (r *Registry) Component(id defs.ComponentID) (defs.ComponentDef, error) {
	return r.components.get(id)
}
func (r *Registry) DriverArchetype(id defs.DriverArchetypeID) (defs.DriverArchetypeDef, error) {
	return r.driverArchetypes.get(id)
}
func (r *Registry) WeatherType(id defs.WeatherTypeID) (defs.WeatherDef, error) {
	return r.weatherTypes.get(id)
}

// Ordered collections, as authored in the pack.

func (r *Registry) AllSeries() []defs.SeriesDef { return r.series.list() }
func (r *Registry) AllRulesets() []defs.RulesetDef { return r.rulesets.list() }
func (r *Registry) AllTracks() []defs.TrackDef { return r.tracks.list() }
func (r *Registry) AllPartTypes() []defs.PartTypeDef { return r.partTypes.list() }
func (r *Registry) AllTyreCompounds() []defs.TyreCompoundDef { return r.tyreCompounds.list() }
func (r *Registry) AllSponsors() []defs.SponsorDef { return r.sponsors.list() }
func (r *Registry) AllBuildings() []defs.BuildingDef { return r.buildings.list() }
func (r *Registry) AllComponents() []defs.ComponentDef { return r.components.list() }
func (r *Registry) AllDriverArchetypes() []defs.DriverArchetypeDef { return r.driverArchetypes.list() }
func (r *Registry) AllWeatherTypes() []defs.WeatherDef { return r.weatherTypes.list() }

// Scalars returns a copy of the pack's scalar bundle.
func (r *Registry) Scalars() defs.ScalarTables { return r.scalars.Clone() }

// EngineMode looks up an engine mode in the scalar bundle.
func (r *Registry) EngineMode(id defs.EngineModeID) (defs.EngineModeScalar, error) {
	return r.scalars.EngineMode(id)
}

// RulesetFor resolves the ruleset a series runs under.
func (r *Registry) RulesetFor(id defs.SeriesID) (defs.RulesetDef, error) {
	s, err := r.Series(id)
	if err != nil {
		return defs.RulesetDef{}, err
	}
	return r.Ruleset(s.RulesetID)
}

// Calendar resolves a series' calendar template into track definitions, in
// calendar order.
func (r *Registry) Calendar(id defs.SeriesID) ([]defs.TrackDef, error) {
	s, err := r.Series(id)
	if err != nil {
		return nil, err
	}
	tracks := make([]defs.TrackDef, 0, len(s.CalendarTemplate))
	for _, tid := range s.CalendarTemplate {
		t, err := r.Track(tid)
		if err != nil {
			return nil, fmt.Errorf("calendar of %s: %w", id, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}
