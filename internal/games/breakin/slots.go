package breakin

import (
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// Slot holds one queued shape.
type Slot struct {
	Shape    shape.Shape
	Occupied bool
}

// Slots is the four-slot shape pipeline: two available slots the brick side
// places from and two next slots previewing what comes after.
type Slots struct {
	Available [2]Slot
	Next      [2]Slot
	Timer     float64
	Period    float64
	chance    float64
}

// NewSlots creates an empty pipeline.
func NewSlots(period, specialChance float64) Slots {
	return Slots{Period: period, chance: specialChance}
}

// Reset empties the available slots and fills the preview queue.
func (s *Slots) Reset(rng *core.Rand) {
	s.Timer = 0
	s.Available = [2]Slot{}
	for i := range s.Next {
		s.Next[i] = s.generate(rng)
	}
}

// FreeAvailable returns the index of the first empty available slot, or -1.
func (s *Slots) FreeAvailable() int {
	for i := range s.Available {
		if !s.Available[i].Occupied {
			return i
		}
	}
	return -1
}

// Advance accumulates elapsed time and promotes the oldest preview into a
// free available slot once the period is reached. It reports whether a
// promotion happened.
func (s *Slots) Advance(rng *core.Rand, elapsed float64) bool {
	s.Timer = min(s.Period, s.Timer+elapsed)
	if s.Timer < s.Period {
		return false
	}
	free := s.FreeAvailable()
	if free < 0 {
		return false
	}

	s.Timer = 0
	s.Available[free] = s.Next[0]
	copy(s.Next[:], s.Next[1:])
	s.Next[len(s.Next)-1] = s.generate(rng)
	return true
}

// Take empties available slot i and returns its shape.
func (s *Slots) Take(i int) shape.Shape {
	sh := s.Available[i].Shape
	s.Available[i] = Slot{}
	return sh
}

// generate draws a random oriented catalog shape and maybe marks specials.
func (s *Slots) generate(rng *core.Rand) Slot {
	sh := shape.Random(rng)
	if rng.Chance(s.chance) {
		sh = assignSpecial(rng, sh, drawSpecialKind(rng))
	}
	return Slot{Shape: sh, Occupied: true}
}

// assignSpecial marks cells of sh as kind, sampling occupied cells without
// replacement.
func assignSpecial(rng *core.Rand, sh shape.Shape, kind shape.Kind) shape.Shape {
	info := kindTable[kind]
	want := min(rng.IntRange(info.minCells, info.maxCells), sh.Cells.Count())
	sh.Kind = kind

	for placed := 0; placed < want; placed++ {
		pick := rng.Intn(sh.Cells.Count() - placed)
		cells := sh.Cells
		sh.Each(func(x, y int, special bool) {
			if special || pick < 0 {
				return
			}
			if pick == 0 {
				cells = cells.WithSpecial(x, y)
			}
			pick--
		})
		sh.Cells = cells
	}
	return sh
}
