package breakin

// Side identifies a match participant.
type Side int

const (
	SideNone   Side = iota
	SidePaddle      // attacker: reaches the top of the screen to win
	SideBricks      // defender: wins when the paddle runs out of balls and lives
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SidePaddle:
		return "paddle"
	case SideBricks:
		return "bricks"
	default:
		return "none"
	}
}

// Sound names a sound cue for the audio layer.
type Sound int

const (
	SoundBallHit Sound = iota
	SoundHeavyBallHit
	SoundBounce
	SoundPlace
	SoundCantPlace
	SoundPaddle
	SoundPaddleHitsBall
	SoundHurt
	SoundWoot
	SoundPreerw
	SoundCombo
	SoundWinPaddle
	SoundWinBricks
)

var soundNames = [...]string{
	SoundBallHit:        "ball_hit",
	SoundHeavyBallHit:   "heavy_ball_hit",
	SoundBounce:         "bounce",
	SoundPlace:          "place",
	SoundCantPlace:      "cant_place",
	SoundPaddle:         "paddle",
	SoundPaddleHitsBall: "paddle_hits_ball",
	SoundHurt:           "hurt",
	SoundWoot:           "woot",
	SoundPreerw:         "preerw",
	SoundCombo:          "combo",
	SoundWinPaddle:      "win_paddle",
	SoundWinBricks:      "win_bricks",
}

// String returns the sound name.
func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// ComboSteps is the number of distinct combo sound steps. The last one is
// the chord played when a combo completes.
const ComboSteps = 5

// EventKind tags an Event.
type EventKind int

const (
	EventSound EventKind = iota
	EventBrickPlaced
	EventPlacementRejected
	EventBrickBroken
	EventBallLost
	EventDropCaught
	EventMatchEnded
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventSound:
		return "sound"
	case EventBrickPlaced:
		return "brick_placed"
	case EventPlacementRejected:
		return "placement_rejected"
	case EventBrickBroken:
		return "brick_broken"
	case EventBallLost:
		return "ball_lost"
	case EventDropCaught:
		return "drop_caught"
	case EventMatchEnded:
		return "match_ended"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Event is a side effect produced during a step for the audio and
// presentation layers. Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Sound Sound
	// ComboStep is set for SoundCombo, in [0, ComboSteps).
	ComboStep int
	// Volume is the master volume for sound events.
	Volume float64
	// Cell is the placement origin or the broken cell.
	Cell   Cell
	Drop   DropKind
	Winner Side
	// ByAI marks placements made by the autoplacer.
	ByAI bool
}
