package breakin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

func TestSlotsResetFillsPreview(t *testing.T) {
	s := NewSlots(8, 0)
	s.Reset(core.NewRand(1))

	assert.Equal(t, 0, s.FreeAvailable())
	for _, n := range s.Next {
		assert.True(t, n.Occupied)
		assert.Equal(t, shape.KindNone, n.Shape.Kind)
	}
}

func TestSlotsAdvancePromotesOldestPreview(t *testing.T) {
	rng := core.NewRand(2)
	s := NewSlots(8, 0)
	s.Reset(rng)
	first, second := s.Next[0], s.Next[1]

	assert.False(t, s.Advance(rng, 7.9))
	require.True(t, s.Advance(rng, 0.2))

	assert.Equal(t, first, s.Available[0])
	assert.Equal(t, second, s.Next[0])
	assert.True(t, s.Next[1].Occupied)
	assert.Zero(t, s.Timer)

	require.True(t, s.Advance(rng, 8))
	assert.Equal(t, second, s.Available[1])
	assert.Equal(t, -1, s.FreeAvailable())
}

func TestSlotsWaitWhileFull(t *testing.T) {
	rng := core.NewRand(3)
	s := NewSlots(1, 0)
	s.Reset(rng)
	require.True(t, s.Advance(rng, 1))
	require.True(t, s.Advance(rng, 1))
	next := s.Next

	assert.False(t, s.Advance(rng, 5))
	assert.Equal(t, s.Period, s.Timer)
	assert.Equal(t, next, s.Next)

	s.Take(1)
	assert.True(t, s.Advance(rng, 0.01), "a waiting shape fills the freed slot at once")
	assert.True(t, s.Available[1].Occupied)
}

func TestSlotsAlwaysSpecialAtFullChance(t *testing.T) {
	rng := core.NewRand(4)
	s := NewSlots(1, 1)
	for i := 0; i < 200; i++ {
		slot := s.generate(rng)
		sh := slot.Shape
		info := kindTable[sh.Kind]

		require.NotEqual(t, shape.KindNone, sh.Kind)
		n := sh.Cells.SpecialCount()
		assert.GreaterOrEqual(t, n, min(info.minCells, sh.Cells.Count()))
		assert.LessOrEqual(t, n, min(info.maxCells, sh.Cells.Count()))
	}
}

func TestAssignSpecialSamplesWithoutReplacement(t *testing.T) {
	rng := core.NewRand(5)
	line := shape.New(shape.Yellow, 0xF0)
	for i := 0; i < 100; i++ {
		sh := assignSpecial(rng, line, shape.KindArrow)
		n := sh.Cells.SpecialCount()
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 3)
		assert.Equal(t, 4, sh.Cells.Count())
	}

	one := assignSpecial(rng, shape.New(shape.Yellow, 0x80), shape.KindArrow)
	assert.Equal(t, 1, one.Cells.SpecialCount())
}

func TestDrawSpecialKindCoversAllKinds(t *testing.T) {
	rng := core.NewRand(6)
	seen := map[shape.Kind]int{}
	for i := 0; i < 2000; i++ {
		seen[drawSpecialKind(rng)]++
	}
	for _, k := range specialKinds {
		assert.Positive(t, seen[k], k.String())
	}
	assert.Zero(t, seen[shape.KindNone])
}
