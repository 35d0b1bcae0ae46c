package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Sizes is the tier ladder: the diameter of a body at each tier, ascending.
// The last tier is terminal and never merges.
var Sizes = []float64{32, 44, 60, 78, 100, 126, 156, 190, 228, 270, 316}

// Body is one circle in the arena. Position is its center in pixels with y
// growing downward; velocity is in pixels per tick.
type Body struct {
	Pos  cp.Vector
	Vel  cp.Vector
	Tier int
	Size float64
	Mass float64

	// Friction damps horizontal velocity every tick. Restitution scales
	// reflected velocity on impact. Uniform values today, but carried
	// per body.
	Friction    float64
	Restitution float64

	// per-tick scratch flags owned by Step
	merging   bool
	contacted bool
}

// NewBody creates a body of the given tier at pos, at rest.
func NewBody(tier int, pos cp.Vector, tun Tuning) *Body {
	size := Sizes[tier]
	return &Body{
		Pos:         pos,
		Tier:        tier,
		Size:        size,
		Mass:        massFor(size),
		Friction:    tun.Friction,
		Restitution: tun.Restitution,
	}
}

func (b *Body) Radius() float64 { return b.Size / 2 }

// massFor is the area of a disk with the given diameter, so mass grows with
// the square of size.
func massFor(size float64) float64 {
	r := size / 2
	return math.Pi * r * r
}
