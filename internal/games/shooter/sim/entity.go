package sim

import (
	"math"

	"github.com/vovakirdan/battleship-shooter/internal/core"
)

// Kind tags an entity for rendering and collision bookkeeping.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
	KindPowerUp
	KindStar
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "powerup"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Pattern is the firing pattern used on a fire edge.
type Pattern int

const (
	PatternSingle Pattern = iota
	PatternDouble
	PatternTriple
)

// String returns the name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternSingle:
		return "single"
	case PatternDouble:
		return "double"
	case PatternTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// Horizontal shot offsets from the player's center, per pattern.
var (
	singleOffsets = []int{15}
	doubleOffsets = []int{10, 20}
	tripleOffsets = []int{5, 15, 25}
)

// FiringState holds the player's power-up counters and timers.
// Double and triple may be active at the same time; triple wins when firing.
type FiringState struct {
	DoubleActive      bool
	DoubleTimer       int
	DoubleIsPermanent bool
	TripleActive      bool
	TripleTimer       int
	StarsCollected    int // Never decreases
	BonusStars        int // 0 .. TripleThreshold-1
}

// Pattern returns the pattern a fire edge would use right now.
func (f FiringState) Pattern() Pattern {
	switch {
	case f.TripleActive:
		return PatternTriple
	case f.DoubleActive:
		return PatternDouble
	default:
		return PatternSingle
	}
}

// Player is the ship at the bottom of the playfield. There is exactly one
// per session.
type Player struct {
	core.Rect
	VX int
	FiringState
}

// Projectile is a player shot travelling upward.
type Projectile struct {
	core.Rect
	ID uint64
	VY int // Negative: up
}

// Enemy occupies a fixed arena slot for the whole session. Destruction and
// falling off the bottom both respawn it in place: Slot never changes, while
// ID and Generation change with every respawn.
type Enemy struct {
	core.Rect
	ID         uint64
	Slot       int
	Generation int
	VY         int
}

// PowerUp is a falling star that upgrades the firing pattern when collected.
type PowerUp struct {
	core.Rect
	ID uint64
	VY int
}

// Star is background decoration. It never collides with anything.
type Star struct {
	X, Y  int
	Speed int
	Size  int
}

// Bounds returns the box the star is drawn in, centered on (X, Y).
func (s Star) Bounds() core.Rect {
	return core.RectFromCenter(s.X, s.Y, 2*s.Size, 2*s.Size)
}

// satInc increments n without wrapping past math.MaxInt.
func satInc(n int) int {
	if n < math.MaxInt {
		return n + 1
	}
	return n
}
