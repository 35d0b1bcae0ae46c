package sim

import "math"

// Step advances the simulation by one tick. Frozen outside Playing.
//
// Bodies update in list order: integrate, clamp against the walls and
// floor, then an O(n²) scan against every other body. Merge decisions are
// collected during the scan and applied after it, so the pile is never
// edited mid-iteration. The game-over check runs last, once per tick.
func (w *World) Step() {
	if w == nil || w.State != Playing {
		return
	}
	w.tick++

	for _, b := range w.Bodies {
		b.contacted = false
		b.merging = false
	}

	type pair struct{ a, b *Body }
	var merges []pair

	for i, b := range w.Bodies {
		if b.merging {
			// claimed as a merge partner earlier this tick; it is
			// about to be replaced, leave it where it stopped
			continue
		}
		w.integrate(b)
		w.collideBounds(b)

		r := b.Radius()
		for j, o := range w.Bodies {
			if j == i || o.merging {
				continue
			}
			dx := o.Pos.X - b.Pos.X
			dy := o.Pos.Y - b.Pos.Y
			rsum := r + o.Radius()
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= rsum {
				continue
			}
			b.contacted = true
			o.contacted = true

			if b.Tier == o.Tier && b.Tier+1 < len(Sizes) {
				b.merging = true
				o.merging = true
				merges = append(merges, pair{b, o})
				break
			}
			resolveOverlap(b, o, dist, rsum)
		}

		if !b.merging && !b.contacted &&
			math.Abs(b.Vel.Y) < w.tun.RestThreshold &&
			b.Pos.Y+r < w.Height-floorSlack {
			// nothing under it and barely moving: damping keeps
			// gravity from biting, so shove it back into free fall
			b.Vel.Y += w.tun.RestNudge
		}
	}

	for _, m := range merges {
		w.mergePair(m.a, m.b)
	}

	for _, b := range w.Bodies {
		if b.Pos.Y-b.Radius() <= 0 {
			w.State = GameOver
			w.events = append(w.events, Event{Kind: EventGameOver})
			break
		}
	}
}

// integrate applies gravity, damping and one Euler position step.
func (w *World) integrate(b *Body) {
	b.Vel.Y = (b.Vel.Y + w.tun.Gravity) * w.tun.VerticalDamping
	b.Vel.X *= b.Friction
	b.Pos = b.Pos.Add(b.Vel)
}

// collideBounds keeps the circle between the side walls and above the
// floor, reflecting velocity scaled by restitution. Tiny floor bounces are
// zeroed so piles come to rest. There is no ceiling clamp: crossing the top
// is the losing condition, not a wall.
func (w *World) collideBounds(b *Body) {
	r := b.Radius()
	if b.Pos.X-r < 0 {
		b.Pos.X = r
		b.Vel.X = -b.Vel.X * b.Restitution
	} else if b.Pos.X+r > w.Width {
		b.Pos.X = w.Width - r
		b.Vel.X = -b.Vel.X * b.Restitution
	}
	if b.Pos.Y+r > w.Height {
		b.Pos.Y = w.Height - r
		b.Vel.Y = -b.Vel.Y * b.Restitution
		if math.Abs(b.Vel.Y) < w.tun.RestThreshold {
			b.Vel.Y = 0
		}
	}
}

// resolveOverlap pushes two overlapping bodies apart and cancels their
// closing velocity. The separation is weighted by mass so the heavier body
// moves less; the impulse follows the usual restitution form with the
// softer body winning.
func resolveOverlap(a, b *Body, dist, rsum float64) {
	nx := b.Pos.X - a.Pos.X
	ny := b.Pos.Y - a.Pos.Y
	if dist < slop {
		// coincident centers: pick a fixed axis so the normal stays
		// finite and the pair still separates
		dist = slop
		nx, ny = 0, slop
	}
	nx /= dist
	ny /= dist

	total := a.Mass + b.Mass
	shift := (rsum - dist) * correctionFactor
	a.Pos.X -= nx * shift * (b.Mass / total)
	a.Pos.Y -= ny * shift * (b.Mass / total)
	b.Pos.X += nx * shift * (a.Mass / total)
	b.Pos.Y += ny * shift * (a.Mass / total)

	rvx := b.Vel.X - a.Vel.X
	rvy := b.Vel.Y - a.Vel.Y
	velAlongNormal := rvx*nx + rvy*ny
	if velAlongNormal >= 0 {
		return
	}
	e := math.Min(a.Restitution, b.Restitution)
	j := -(1 + e) * velAlongNormal / (1/a.Mass + 1/b.Mass)
	a.Vel.X -= nx * j / a.Mass
	a.Vel.Y -= ny * j / a.Mass
	b.Vel.X += nx * j / b.Mass
	b.Vel.Y += ny * j / b.Mass
}
