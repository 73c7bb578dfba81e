package defs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// idKind tags an ID instantiation with the entity kind it identifies.
type idKind interface {
	kindName() string
}

type (
	seriesKind          struct{}
	trackKind           struct{}
	rulesetKind         struct{}
	partTypeKind        struct{}
	tyreCompoundKind    struct{}
	sponsorKind         struct{}
	buildingKind        struct{}
	componentKind       struct{}
	driverArchetypeKind struct{}
	weatherTypeKind     struct{}
	engineModeKind      struct{}
)

func (seriesKind) kindName() string { return "SeriesId" }
func (trackKind) kindName() string { return "TrackId" }
func (rulesetKind) kindName() string { return "RulesetId" }
func (partTypeKind) kindName() string { return "PartTypeId" }
func (tyreCompoundKind) kindName() string { return "TyreCompoundId" }
func (sponsorKind) kindName() string { return "SponsorId" }
func (buildingKind) kindName() string { return "BuildingId" }
func (componentKind) kindName() string { return "ComponentId" }
func (driverArchetypeKind) kindName() string { return "DriverArchetypeId" }
func (weatherTypeKind) kindName() string { return "WeatherTypeId" }
func (engineModeKind) kindName() string { return "EngineModeId" }

// ID is an opaque, string-backed key for one entity kind. Two IDs are equal
// when their underlying strings are byte-identical. IDs of different kinds
// are different types and cannot be mixed.
//
// The zero value is the "default" identifier; it is never produced by the
// constructors and is rejected wherever an entity is assembled.
type ID[K idKind] struct {
	value string
}

func newID[K idKind](value string) (ID[K], error) {
	if strings.TrimSpace(value) == "" {
		var k K
		return ID[K]{}, fmt.Errorf("%w: %s cannot be empty or whitespace", ErrInvalidArgument, k.kindName())
	}
	return ID[K]{value: value}, nil
}

func mustID[K idKind](value string) ID[K] {
	id, err := newID[K](value)
	if err != nil {
		panic(err.Error())
	}
	return id
}

// String returns the underlying value.
func (id ID[K]) String() string { return id.value }

// IsZero reports whether id is the default identifier.
func (id ID[K]) IsZero() bool { return id.value == "" }

// Kind names the entity kind, e.g. "TrackId".
func (id ID[K]) Kind() string {
	var k K
	return k.kindName()
}

// MarshalText lets IDs render as plain strings, including as map keys.
func (id ID[K]) MarshalText() ([]byte, error) { return []byte(id.value), nil }

type (
	SeriesID          = ID[seriesKind]
	TrackID           = ID[trackKind]
	RulesetID         = ID[rulesetKind]
	PartTypeID        = ID[partTypeKind]
	TyreCompoundID    = ID[tyreCompoundKind]
	SponsorID         = ID[sponsorKind]
	BuildingID        = ID[buildingKind]
	ComponentID       = ID[componentKind]
	DriverArchetypeID = ID[driverArchetypeKind]
	WeatherTypeID     = ID[weatherTypeKind]
	EngineModeID      = ID[engineModeKind]
)

func NewSeriesID(v string) (SeriesID, error) { return newID[seriesKind](v) }
func NewTrackID(v string) (TrackID, error) { return newID[trackKind](v) }
func NewRulesetID(v string) (RulesetID, error) { return newID[rulesetKind](v) }
func NewPartTypeID(v string) (PartTypeID, error) { return newID[partTypeKind](v) }
func NewTyreCompoundID(v string) (TyreCompoundID, error) {
	return newID[tyreCompoundKind](v)
}
func NewSponsorID(v string) (SponsorID, error) { return newID[sponsorKind](v) }
func NewBuildingID(v string) (BuildingID, error) { return newID[buildingKind](v) }
func NewComponentID(v string) (ComponentID, error) { return newID[componentKind](v) }
func NewDriverArchetypeID(v string) (DriverArchetypeID, error) {
	return newID[driverArchetypeKind](v)
}
func NewWeatherTypeID(v string) (WeatherTypeID, error) { return newID[weatherTypeKind](v) }
func NewEngineModeID(v string) (EngineModeID, error) { return newID[engineModeKind](v) }

// Must* variants panic on blank input. Intended for literal content.

func MustSeriesID(v string) SeriesID { return mustID[seriesKind](v) }
func MustTrackID(v string) TrackID { return mustID[trackKind](v) }
func MustRulesetID(v string) RulesetID { return mustID[rulesetKind](v) }
func MustPartTypeID(v string) PartTypeID { return mustID[partTypeKind](v) }
func MustTyreCompoundID(v string) TyreCompoundID { return mustID[tyreCompoundKind](v) }
func MustSponsorID(v string) SponsorID { return mustID[sponsorKind](v) }
func MustBuildingID(v string) BuildingID { return mustID[buildingKind](v) }
func MustComponentID(v string) ComponentID { return mustID[componentKind](v) }
func MustDriverArchetypeID(v string) DriverArchetypeID { return mustID[driverArchetypeKind](v) }
func MustWeatherTypeID(v string) WeatherTypeID { return mustID[weatherTypeKind](v) }
func MustEngineModeID(v string) EngineModeID { return mustID[engineModeKind](v) }

// SortedKeys returns the keys of an ID-keyed map in byte order, so that
// anything derived from map iteration is deterministic.
func SortedKeys[K interface {
	comparable
	fmt.Stringer
}, V any](m map[K]V) []K {
	return slices.SortedFunc(maps.Keys(m), func(a, b K) int {
		return strings.Compare(a.String(), b.String())
	})
}
