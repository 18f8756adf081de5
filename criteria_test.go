package csa

import (
	"testing"

	"github.com/aaroncutress/csa-go/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackRoundTrip(t *testing.T) {
	for _, arr := range []int{OriginMins, -1, 0, 600, 1439, MaxMins - 1} {
		for _, changes := range []int{0, 1, 5, 127} {
			c := Pack(arr, changes, 0xDEADBEEF)

			assert.False(t, c.HasDepMins())
			assert.Equal(t, arr, c.ArrMins())
			assert.Equal(t, changes, c.Changes())
			assert.Equal(t, uint32(0xDEADBEEF), c.Payload())
			assert.Zero(t, uint64(c)>>63)
		}
	}
}

func TestPackRejectsOutOfRange(t *testing.T) {
	assert.PanicsWithError(t, "precondition violated: arrival -241 outside [-240, 2880)", func() {
		Pack(OriginMins-1, 0, 0)
	})
	assert.Panics(t, func() { Pack(MaxMins, 0, 0) })
	assert.Panics(t, func() { Pack(0, 128, 0) })
	assert.Panics(t, func() { Pack(0, -1, 0) })
}

func TestDepMins(t *testing.T) {
	c := Pack(700, 2, 7)
	for _, dep := range []int{OriginMins, -10, 0, 615, MaxMins - 1} {
		withDep := c.WithDepMins(dep)
		require.True(t, withDep.HasDepMins())
		assert.Equal(t, dep, withDep.DepMins())
		assert.Equal(t, 700, withDep.ArrMins())
		assert.Equal(t, 2, withDep.Changes())
		assert.Equal(t, uint32(7), withDep.Payload())
		assert.Equal(t, c, withDep.WithoutDepMins())
	}

	assert.Panics(t, func() { c.DepMins() })
}

func TestDepMinsOrdering(t *testing.T) {
	// Later departures pack into smaller words
	early := Pack(700, 0, 0).WithDepMins(600)
	late := Pack(700, 0, 0).WithDepMins(650)
	assert.Less(t, uint64(late), uint64(early))
}

func TestFieldReplacement(t *testing.T) {
	c := Pack(500, 3, 42).WithDepMins(480)

	assert.Equal(t, 4, c.WithAdditionalChange().Changes())
	assert.Equal(t, 480, c.WithAdditionalChange().DepMins())
	assert.Equal(t, uint32(99), c.WithPayload(99).Payload())
	assert.Equal(t, 500, c.WithPayload(99).ArrMins())

	assert.Panics(t, func() { Pack(0, 127, 0).WithAdditionalChange() })
}

func TestDominatesOrIsEqual(t *testing.T) {
	a := Pack(600, 1, 0)
	b := Pack(610, 1, 5)
	c := Pack(620, 2, 0)

	assert.True(t, a.DominatesOrIsEqual(a), "reflexive")
	assert.True(t, a.DominatesOrIsEqual(b))
	assert.True(t, b.DominatesOrIsEqual(c))
	assert.True(t, a.DominatesOrIsEqual(c), "transitive")
	assert.False(t, c.DominatesOrIsEqual(a))

	// Incomparable
	d := Pack(590, 3, 0)
	assert.False(t, a.DominatesOrIsEqual(d))
	assert.False(t, d.DominatesOrIsEqual(a))

	// Payload is ignored
	assert.True(t, Pack(600, 1, 9).DominatesOrIsEqual(Pack(600, 1, 3)))

	// Departing later is better
	assert.True(t, a.WithDepMins(550).DominatesOrIsEqual(a.WithDepMins(540)))
	assert.False(t, a.WithDepMins(540).DominatesOrIsEqual(a.WithDepMins(550)))
}

func TestDominatesRequiresMatchingDeparture(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, internal.ErrPrecondition)
	}()
	Pack(600, 0, 0).DominatesOrIsEqual(Pack(600, 0, 0).WithDepMins(500))
}

func TestCriteriaString(t *testing.T) {
	assert.Equal(t, "[dep 08:00, arr 09:15, 1 changes]", Pack(555, 1, 0).WithDepMins(480).String())
	assert.Equal(t, "[dep -, arr -01:30, 0 changes]", Pack(-90, 0, 0).String())
}
