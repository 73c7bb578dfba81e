package defs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_RejectsBlankInput(t *testing.T) {
	constructors := map[string]func(string) error{
		"SeriesId":          func(v string) error { _, err := NewSeriesID(v); return err },
		"TrackId":           func(v string) error { _, err := NewTrackID(v); return err },
		"RulesetId":         func(v string) error { _, err := NewRulesetID(v); return err },
		"PartTypeId":        func(v string) error { _, err := NewPartTypeID(v); return err },
		"TyreCompoundId":    func(v string) error { _, err := NewTyreCompoundID(v); return err },
		"SponsorId":         func(v string) error { _, err := NewSponsorID(v); return err },
		"BuildingId":        func(v string) error { _, err := NewBuildingID(v); return err },
		"ComponentId":       func(v string) error { _, err := NewComponentID(v); return err },
		"DriverArchetypeId": func(v string) error { _, err := NewDriverArchetypeID(v); return err },
		"WeatherTypeId":     func(v string) error { _, err := NewWeatherTypeID(v); return err },
		"EngineModeId":      func(v string) error { _, err := NewEngineModeID(v); return err },
	}
	for kind, newID := range constructors {
		for _, input := range []string{"", " ", "\t\n"} {
			err := newID(input)
			require.Error(t, err, "%s(%q)", kind, input)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), kind)
		}
		assert.NoError(t, newID("x"), kind)
	}
}

func TestID_EqualityIsOrdinal(t *testing.T) {
	a := MustTrackID("monaco")
	b, err := NewTrackID("monaco")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.NotEqual(t, a, MustTrackID("Monaco"))
	assert.NotEqual(t, a, MustTrackID("monaco "))

	seen := map[TrackID]int{a: 1}
	assert.Equal(t, 1, seen[b], "equal ids must hash equal")
}

func TestID_KeepsSurroundingWhitespace(t *testing.T) {
	id := MustSponsorID(" megacorp ")
	assert.Equal(t, " megacorp ", id.String())
}

func TestID_ZeroValueIsDefault(t *testing.T) {
	var id WeatherTypeID
	assert.True(t, id.IsZero())
	assert.False(t, MustWeatherTypeID("dry").IsZero())
	assert.Equal(t, "WeatherTypeId", id.Kind())
}

func TestID_KindsAreDistinctTypes(t *testing.T) {
	track := MustTrackID("same")
	series := MustSeriesID("same")

	assert.NotEqual(t, reflect.TypeOf(track), reflect.TypeOf(series))
	assert.Equal(t, track.String(), series.String())
	assert.Equal(t, "TrackId", track.Kind())
	assert.Equal(t, "SeriesId", series.Kind())
}

func TestMustID_PanicsOnBlank(t *testing.T) {
	assert.Panics(t, func() { MustBuildingID("") })
	assert.Panics(t, func() { MustEngineModeID("   ") })
	assert.NotPanics(t, func() { MustComponentID("turbo_a") })
}

func TestID_MarshalText(t *testing.T) {
	b, err := MustDriverArchetypeID("veteran").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "veteran", string(b))
}

func TestSortedKeys_ByteOrder(t *testing.T) {
	m := map[WeatherTypeID]int{
		MustWeatherTypeID("wet"):     1,
		MustWeatherTypeID("Dry"):     2,
		MustWeatherTypeID("damp"):    3,
		MustWeatherTypeID("monsoon"): 4,
	}
	got := SortedKeys(m)
	want := []WeatherTypeID{
		MustWeatherTypeID("Dry"),
		MustWeatherTypeID("damp"),
		MustWeatherTypeID("monsoon"),
		MustWeatherTypeID("wet"),
	}
	assert.Equal(t, want, got)
}
