package sim

import (
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
)

// State is the lifecycle phase of a world.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// World is the entire simulation state: the settled pile, the pending body
// waiting at the drop point, the score and the lifecycle phase. There are no
// package globals; everything a tick touches lives here. All mutation must
// happen on a single goroutine.
type World struct {
	Width  float64
	Height float64

	// Bodies holds the settled pile in insertion order. Step iterates it
	// in this order, so order is part of the simulation's determinism.
	Bodies  []*Body
	Pending *Body
	Score   int
	State   State

	tick   uint64
	tun    Tuning
	rng    *rand.Rand
	events []Event
}

// NewWorld builds a Playing world with an empty pile and a freshly spawned
// pending body. A nil rng falls back to a time-seeded source; tests inject
// a fixed seed instead.
func NewWorld(width, height float64, tun Tuning, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &World{
		Width:  width,
		Height: height,
		tun:    tun,
		rng:    rng,
	}
	w.spawnPending()
	return w
}

// Tuning returns the active tuning profile.
func (w *World) Tuning() Tuning { return w.tun }

// SetTuning swaps the profile. Existing bodies keep the friction and
// restitution they were created with; global terms apply from the next tick.
func (w *World) SetTuning(t Tuning) { w.tun = t }

// Tick reports how many steps have run since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// spawnPending stages the next body at the drop point, tier drawn uniformly
// from the two smallest.
func (w *World) spawnPending() {
	tier := w.rng.Intn(2)
	w.Pending = NewBody(tier, cp.Vector{X: w.Width / 2, Y: w.tun.SpawnY}, w.tun)
}

// Drop releases the pending body into the pile with a downward shove and a
// bounded random sideways kick, then immediately stages the next one.
// Silent no-op when nothing is pending or the game is over.
func (w *World) Drop() {
	if w == nil || w.State != Playing || w.Pending == nil {
		return
	}
	b := w.Pending
	b.Vel = cp.Vector{
		X: (w.rng.Float64()*2 - 1) * w.tun.DropKick,
		Y: w.tun.DropSpeed,
	}
	w.Bodies = append(w.Bodies, b)
	w.Pending = nil
	w.events = append(w.events, Event{Kind: EventDrop, Tier: b.Tier, Pos: b.Pos})
	w.spawnPending()
}

// MovePendingTo centers the pending body on x, clamped so the circle stays
// between the walls.
func (w *World) MovePendingTo(x float64) {
	if w == nil || w.State != Playing || w.Pending == nil {
		return
	}
	r := w.Pending.Radius()
	if x < r {
		x = r
	}
	if x > w.Width-r {
		x = w.Width - r
	}
	w.Pending.Pos.X = x
}

// MovePendingBy shifts the pending body sideways with the same clamping.
func (w *World) MovePendingBy(dx float64) {
	if w == nil || w.Pending == nil {
		return
	}
	w.MovePendingTo(w.Pending.Pos.X + dx)
}

// mergePair replaces two settled equal-tier bodies with a single body of the
// next tier at their mass-weighted average position and velocity, and scores
// ten points per new tier index. Returns the new body, or nil if the pair is
// not mergeable.
func (w *World) mergePair(a, b *Body) *Body {
	if a == nil || b == nil || a == b {
		return nil
	}
	if a.Tier != b.Tier || a.Tier+1 >= len(Sizes) {
		return nil
	}
	ai, bi := w.indexOf(a), w.indexOf(b)
	if ai < 0 || bi < 0 {
		return nil
	}

	total := a.Mass + b.Mass
	merged := NewBody(a.Tier+1, cp.Vector{
		X: (a.Pos.X*a.Mass + b.Pos.X*b.Mass) / total,
		Y: (a.Pos.Y*a.Mass + b.Pos.Y*b.Mass) / total,
	}, w.tun)
	merged.Vel = cp.Vector{
		X: (a.Vel.X*a.Mass + b.Vel.X*b.Mass) / total,
		Y: (a.Vel.Y*a.Mass + b.Vel.Y*b.Mass) / total,
	}

	w.removePair(ai, bi)
	w.Bodies = append(w.Bodies, merged)
	w.Score += merged.Tier * 10
	w.events = append(w.events, Event{Kind: EventMerge, Tier: merged.Tier, Pos: merged.Pos})
	return merged
}

func (w *World) indexOf(b *Body) int {
	for i, o := range w.Bodies {
		if o == b {
			return i
		}
	}
	return -1
}

// removePair deletes two indexes, preserving the order of everything else.
func (w *World) removePair(i, j int) {
	if i > j {
		i, j = j, i
	}
	w.Bodies = append(w.Bodies[:j], w.Bodies[j+1:]...)
	w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
}

// Reset starts a new game: empty pile, zero score, fresh pending body.
// Only honored from GameOver.
func (w *World) Reset() {
	if w == nil || w.State != GameOver {
		return
	}
	w.Bodies = nil
	w.Score = 0
	w.tick = 0
	w.State = Playing
	w.spawnPending()
}

// DrainEvents returns the events accumulated since the previous drain and
// clears the queue.
func (w *World) DrainEvents() []Event {
	ev := w.events
	w.events = nil
	return ev
}

// ColumnHeights splits the arena into n equal columns and reports the pile
// height in each: the distance from the floor up to the topmost body
// overlapping that column, 0 where the column is empty.
func (w *World) ColumnHeights(n int) []float64 {
	if w == nil || n <= 0 {
		return nil
	}
	heights := make([]float64, n)
	colW := w.Width / float64(n)
	for _, b := range w.Bodies {
		r := b.Radius()
		lo := int((b.Pos.X - r) / colW)
		hi := int((b.Pos.X + r) / colW)
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		for c := lo; c <= hi; c++ {
			if h := w.Height - (b.Pos.Y - r); h > heights[c] {
				heights[c] = h
			}
		}
	}
	return heights
}
