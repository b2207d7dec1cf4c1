package breakin

import "github.com/vovakirdan/break-in/internal/core"

// Combo tracks consecutive same-color breaks. Max of zero disables it.
type Combo struct {
	Max       int
	LastColor core.RGBA
	Streak    int
}

// Register records a broken brick color. It returns the combo sound step
// and whether this break completed a combo.
func (c *Combo) Register(color core.RGBA) (step int, completed bool) {
	if c.Max <= 0 {
		return 1, false
	}

	if c.Streak > 0 && color == c.LastColor {
		c.Streak++
	} else {
		c.LastColor = color
		c.Streak = 1
	}

	if c.Max == ComboSteps {
		step = (c.Streak - 1) % ComboSteps
	} else {
		step = core.Clamp(1+(c.Streak-1)%c.Max, 0, ComboSteps-1)
	}
	if c.Streak%c.Max == 0 {
		return ComboSteps - 1, true
	}
	return step, false
}
