package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack24x8RoundTrip(t *testing.T) {
	cases := []struct{ a, b int }{
		{0, 0},
		{1, 255},
		{mask24, 0},
		{mask24, mask8},
		{123456, 42},
	}
	for _, c := range cases {
		packed := Pack24x8(c.a, c.b)
		assert.Equal(t, c.a, Unpack24(packed))
		assert.Equal(t, c.b, Unpack8(packed))
	}
}

func TestPack24x8RejectsWideValues(t *testing.T) {
	assert.Panics(t, func() { Pack24x8(1<<24, 0) })
	assert.Panics(t, func() { Pack24x8(0, 256) })
	assert.Panics(t, func() { Pack24x8(-1, 0) })
	assert.Panics(t, func() { Pack24x8(0, -1) })
}

func TestPreconditionPanicCarriesSentinel(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrPrecondition)
	}()
	Pack24x8(1<<25, 0)
}

func TestPackedRangeRoundTrip(t *testing.T) {
	for _, start := range []int{0, 1, 1000, mask24 - 300} {
		for _, length := range []int{0, 1, 17, 255} {
			r := PackRange(start, start+length)
			assert.Equal(t, start, RangeStart(r))
			assert.Equal(t, length, RangeLength(r))
			assert.Equal(t, start+length, RangeEnd(r))
		}
	}
}

func TestPackedRangeRejectsInvalid(t *testing.T) {
	assert.Panics(t, func() { PackRange(0, 256) })
	assert.Panics(t, func() { PackRange(1<<24, 1<<24) })
	assert.Panics(t, func() { PackRange(10, 9) })
}
