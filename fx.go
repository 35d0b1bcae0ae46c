package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/melonfall/common"
)

const ringFrames = 24

// mergeRing is a short expanding ring drawn where a merge landed.
type mergeRing struct {
	x, y  float32
	from  float32
	to    float32
	tier  int
	frame int
}

func newMergeRing(x, y, radius float64, tier int) *mergeRing {
	return &mergeRing{
		x:    float32(x),
		y:    float32(y),
		from: float32(radius) * 0.6,
		to:   float32(radius) * 1.6,
		tier: tier,
	}
}

// update advances one frame and reports whether the ring is spent.
func (r *mergeRing) update() bool {
	r.frame++
	return r.frame >= ringFrames
}

func (r *mergeRing) draw(dst *ebiten.Image) {
	t := float32(r.frame) / ringFrames
	radius := common.Lerp(r.from, r.to, t)
	c := tierColor(r.tier)
	c.A = uint8(common.Lerp(200, 0, t))
	vector.StrokeCircle(dst, r.x, r.y, radius, 3, c, true)
}
