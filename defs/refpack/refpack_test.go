package refpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/validate"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"f1", "indycar"}, Names())
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		require.NoError(t, err, name)
		r := validate.Pack(p)
		assert.True(t, r.IsValid(), "%s: %v", name, r.Errors())
	}

	_, err := ByName("nascar")
	assert.ErrorIs(t, err, defs.ErrNotFound)
	assert.Contains(t, err.Error(), "nascar")
}

func TestF1_FreshPackEveryCall(t *testing.T) {
	a, b := F1(), F1()
	require.NotSame(t, a, b)
	assert.Equal(t, a.Contents().Tracks[0].DisplayName, b.Contents().Tracks[0].DisplayName)
}

func TestF1_Contents(t *testing.T) {
	p := F1()
	assert.Equal(t, "ref_f1", p.ID())
	assert.Len(t, p.TyreCompounds(), 5)
	assert.Len(t, p.WeatherTypes(), 4)

	cost, err := p.Scalars().PartRankTimeCostTable.LookupMs(defs.PartSlotEngine, 10)
	require.NoError(t, err)
	assert.Equal(t, 720, cost)
	cost, err = p.Scalars().PartRankTimeCostTable.LookupMs(defs.PartSlotChassis, 99)
	require.NoError(t, err)
	assert.Equal(t, 540, cost)
}

func TestIndyCar_Contents(t *testing.T) {
	p := IndyCar()
	assert.Equal(t, "2.1.0", p.Version())
	rules := p.Rulesets()[0]
	assert.True(t, rules.RefuellingAllowed)
	assert.Equal(t, []int{12, 9, 7, 5, 3, 2, 1}, rules.SprintPointsTable)

	engine, ok := p.Scalars().PartRankTimeCostTable.Slot(defs.PartSlotEngine)
	require.True(t, ok)
	assert.Len(t, engine, 11)
	assert.Equal(t, 500, engine[10])
}
