package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/internal/testutil"
	"github.com/alivastudio/motorracing-manager/defs/validate"
)

func mustLoad(t *testing.T, p *defs.Pack) *Registry {
	t.Helper()
	r, err := Load(p)
	require.NoError(t, err)
	return r
}

func TestRegistry_ResolvesEveryDeclaredID(t *testing.T) {
	p := testutil.F1(t)
	r := mustLoad(t, p)

	assert.Equal(t, "ref_f1", r.PackID())
	assert.Equal(t, "1.0.0", r.Version())

	for _, want := range p.Series() {
		got, err := r.Series(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.Rulesets() {
		got, err := r.Ruleset(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.Tracks() {
		got, err := r.Track(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.PartTypes() {
		got, err := r.PartType(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.TyreCompounds() {
		got, err := r.TyreCompound(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.Sponsors() {
		got, err := r.Sponsor(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.Buildings() {
		got, err := r.Building(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.Components() {
		got, err := r.Component(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.DriverArchetypes() {
		got, err := r.DriverArchetype(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, want := range p.WeatherTypes() {
		got, err := r.WeatherType(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRegistry_UnknownIDIsNotFound(t *testing.T) {
	r := mustLoad(t, testutil.F1(t))

	_, err := r.Track(defs.MustTrackID("missing_track"))
	require.Error(t, err)
	assert.ErrorIs(t, err, defs.ErrNotFound)
	assert.Contains(t, err.Error(), "TrackDef")
	assert.Contains(t, err.Error(), "missing_track")

	_, err = r.Sponsor(defs.MustSponsorID("nobody"))
	assert.ErrorIs(t, err, defs.ErrNotFound)
	_, err = r.EngineMode(defs.MustEngineModeID("qualifying"))
	assert.ErrorIs(t, err, defs.ErrNotFound)
	_, err = r.WeatherType(defs.WeatherTypeID{})
	assert.ErrorIs(t, err, defs.ErrNotFound)
}

func TestRegistry_AllKeepsAuthoringOrder(t *testing.T) {
	r := mustLoad(t, testutil.F1(t))

	ids := func(tracks []defs.TrackDef) []string {
		out := make([]string, len(tracks))
		for i, tr := range tracks {
			out[i] = tr.ID.String()
		}
		return out
	}
	assert.Equal(t, []string{"monaco", "silverstone"}, ids(r.AllTracks()))
	assert.Len(t, r.AllTyreCompounds(), 5)
	assert.Len(t, r.AllWeatherTypes(), 4)
	assert.Len(t, r.AllSeries(), 1)
	assert.Len(t, r.AllRulesets(), 1)
	assert.Len(t, r.AllPartTypes(), 3)
	assert.Len(t, r.AllSponsors(), 1)
	assert.Len(t, r.AllBuildings(), 1)
	assert.Len(t, r.AllComponents(), 2)
	assert.Len(t, r.AllDriverArchetypes(), 2)
}

func TestRegistry_AllReturnsCopies(t *testing.T) {
	r := mustLoad(t, testutil.F1(t))

	tracks := r.AllTracks()
	tracks[0] = defs.TrackDef{}
	s := r.Scalars()
	s.EngineModes[0].PaceModifierMs = 0

	got, err := r.Track(defs.MustTrackID("monaco"))
	require.NoError(t, err)
	assert.Equal(t, "Monaco Grand Prix", got.DisplayName)
	assert.Equal(t, "monaco", r.AllTracks()[0].ID.String())
	m, err := r.EngineMode(defs.MustEngineModeID("push"))
	require.NoError(t, err)
	assert.Equal(t, -180, m.PaceModifierMs)
}

func TestRegistry_LookupsReturnDeepCopies(t *testing.T) {
	r := mustLoad(t, testutil.F1(t))
	monaco := defs.MustTrackID("monaco")
	dry := defs.MustWeatherTypeID("dry")

	a, err := r.Track(monaco)
	require.NoError(t, err)
	a.Sectors[0].BaseTimeMs = 1
	r.AllTracks()[0].WeatherProbabilityBasisPoints[dry] = 99999
	f1, err := r.Series(defs.MustSeriesID("f1"))
	require.NoError(t, err)
	f1.CalendarTemplate[0] = defs.MustTrackID("elsewhere")
	w, err := r.WeatherType(dry)
	require.NoError(t, err)
	w.TransitionProbabilityBasisPoints[dry] = 0
	r.AllBuildings()[0].Levels[0].Effects[0].ValueBasisPoints = 0

	b, err := r.Track(monaco)
	require.NoError(t, err)
	assert.Equal(t, 25000, b.Sectors[0].BaseTimeMs)
	assert.Equal(t, 7000, b.WeatherProbabilityBasisPoints[dry])
	cal, err := r.Calendar(defs.MustSeriesID("f1"))
	require.NoError(t, err)
	assert.Equal(t, monaco, cal[0].ID)
	w, err = r.WeatherType(dry)
	require.NoError(t, err)
	assert.NotZero(t, w.TransitionProbabilityBasisPoints[dry])
	assert.NotZero(t, r.AllBuildings()[0].Levels[0].Effects[0].ValueBasisPoints)
}

func TestRegistry_IsolatedAcrossPacks(t *testing.T) {
	f1 := mustLoad(t, testutil.F1(t))
	indy := mustLoad(t, testutil.IndyCar(t))

	_, err := f1.Track(defs.MustTrackID("monaco"))
	assert.NoError(t, err)
	_, err = indy.Track(defs.MustTrackID("monaco"))
	assert.ErrorIs(t, err, defs.ErrNotFound)

	// Both packs define "wet" with different numbers.
	f1Wet, err := f1.TyreCompound(defs.MustTyreCompoundID("wet"))
	require.NoError(t, err)
	indyWet, err := indy.TyreCompound(defs.MustTyreCompoundID("wet"))
	require.NoError(t, err)
	assert.Equal(t, 6200, f1Wet.GripRatingBasisPoints)
	assert.Equal(t, 6500, indyWet.GripRatingBasisPoints)

	assert.Equal(t, 8, f1.Scalars().DriverPace.MsPerRatingPoint)
	assert.Equal(t, 7, indy.Scalars().DriverPace.MsPerRatingPoint)
}

func TestRegistry_RulesetForAndCalendar(t *testing.T) {
	r := mustLoad(t, testutil.IndyCar(t))

	rules, err := r.RulesetFor(defs.MustSeriesID("indycar"))
	require.NoError(t, err)
	assert.Equal(t, "indy_2030_rules", rules.ID.String())
	assert.True(t, rules.SprintRaceEnabled)

	cal, err := r.Calendar(defs.MustSeriesID("indycar"))
	require.NoError(t, err)
	require.Len(t, cal, 2)
	assert.Equal(t, "st_pete", cal[0].ID.String())
	assert.Equal(t, "indy_road", cal[1].ID.String())

	_, err = r.Calendar(defs.MustSeriesID("f1"))
	assert.ErrorIs(t, err, defs.ErrNotFound)
}

func TestNew_DoesNotValidate(t *testing.T) {
	p := testutil.Mutate(t, testutil.F1(t), func(c *defs.PackContents) {
		c.Series[0].RulesetID = defs.MustRulesetID("missing_rules")
	})

	r, err := New(p)
	require.NoError(t, err)
	_, err = r.RulesetFor(defs.MustSeriesID("f1"))
	assert.ErrorIs(t, err, defs.ErrNotFound)
}

func TestNew_RejectsMissingPack(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, defs.ErrInvalidArgument)

	_, err = New(&defs.Pack{})
	assert.ErrorIs(t, err, defs.ErrInvalidArgument)
}

func TestLoad_RefusesInvalidPack(t *testing.T) {
	p := testutil.Mutate(t, testutil.F1(t), func(c *defs.PackContents) {
		c.Tracks[0].BaseTimeMs++
	})

	r, err := Load(p)
	assert.Nil(t, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrInvalidPack)
	assert.Contains(t, err.Error(), "monaco.BaseTimeMs must equal the sum of sector BaseTimeMs.")

	_, err = Load(nil)
	assert.ErrorIs(t, err, validate.ErrInvalidPack)
}
