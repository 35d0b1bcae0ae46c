package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
)

const (
	testWidth  = 540
	testHeight = 960
)

func newTestWorld(seed int64) *World {
	return NewWorld(testWidth, testHeight, DefaultTuning(), rand.New(rand.NewSource(seed)))
}

// place appends a settled body at rest, bypassing the drop flow.
func place(w *World, tier int, x, y float64) *Body {
	b := NewBody(tier, cp.Vector{X: x, Y: y}, w.tun)
	w.Bodies = append(w.Bodies, b)
	return b
}

func approx(got, want, eps float64) bool {
	return math.Abs(got-want) <= eps
}

func TestNewWorldStartsPlaying(t *testing.T) {
	w := newTestWorld(1)
	if w.State != Playing {
		t.Fatalf("expected state %v, got %v", Playing, w.State)
	}
	if len(w.Bodies) != 0 || w.Score != 0 {
		t.Fatalf("expected empty world, got %d bodies score %d", len(w.Bodies), w.Score)
	}
	if w.Pending == nil {
		t.Fatal("expected a pending body at start")
	}
	if w.Pending.Pos.X != testWidth/2 || w.Pending.Pos.Y != w.tun.SpawnY {
		t.Fatalf("expected pending at drop point, got %v", w.Pending.Pos)
	}
	if w.Pending.Tier != 0 && w.Pending.Tier != 1 {
		t.Fatalf("expected pending tier 0 or 1, got %d", w.Pending.Tier)
	}
}

func TestPendingTierStaysSmall(t *testing.T) {
	w := newTestWorld(7)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[w.Pending.Tier] = true
		w.Drop()
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("expected both starter tiers over 200 spawns, got %v", seen)
	}
	for tier := range seen {
		if tier != 0 && tier != 1 {
			t.Fatalf("unexpected pending tier %d", tier)
		}
	}
}

func TestDrop(t *testing.T) {
	t.Run("promotes_pending", func(t *testing.T) {
		w := newTestWorld(3)
		p := w.Pending
		w.Drop()

		if len(w.Bodies) != 1 || w.Bodies[0] != p {
			t.Fatalf("expected the pending body in the pile, got %d bodies", len(w.Bodies))
		}
		if p.Vel.Y != w.tun.DropSpeed {
			t.Fatalf("expected downward velocity %v, got %v", w.tun.DropSpeed, p.Vel.Y)
		}
		if math.Abs(p.Vel.X) > w.tun.DropKick {
			t.Fatalf("kick %v outside bound %v", p.Vel.X, w.tun.DropKick)
		}
		if w.Pending == nil || w.Pending == p {
			t.Fatal("expected a fresh pending body immediately after drop")
		}
	})

	t.Run("no_pending_is_noop", func(t *testing.T) {
		w := newTestWorld(3)
		w.Pending = nil
		w.Drop()
		if len(w.Bodies) != 0 {
			t.Fatalf("expected no bodies, got %d", len(w.Bodies))
		}
		if len(w.DrainEvents()) != 0 {
			t.Fatal("expected no events from a no-op drop")
		}
	})

	t.Run("rejected_after_game_over", func(t *testing.T) {
		w := newTestWorld(3)
		w.State = GameOver
		w.Drop()
		if len(w.Bodies) != 0 {
			t.Fatalf("expected drop rejected while game over, got %d bodies", len(w.Bodies))
		}
	})
}

func TestMovePendingClamps(t *testing.T) {
	w := newTestWorld(5)
	r := w.Pending.Radius()

	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"far_left", -100, r},
		{"far_right", testWidth + 100, testWidth - r},
		{"center", testWidth / 2, testWidth / 2},
		{"just_inside_left", r + 1, r + 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w.MovePendingTo(c.x)
			if w.Pending.Pos.X != c.want {
				t.Fatalf("expected x=%v, got %v", c.want, w.Pending.Pos.X)
			}
		})
	}
}

func TestMovePendingByAccumulates(t *testing.T) {
	w := newTestWorld(5)
	w.MovePendingTo(100)
	w.MovePendingBy(30)
	w.MovePendingBy(-10)
	if w.Pending.Pos.X != 120 {
		t.Fatalf("expected x=120, got %v", w.Pending.Pos.X)
	}

	w.MovePendingBy(-10000)
	if w.Pending.Pos.X != w.Pending.Radius() {
		t.Fatalf("expected clamp at left wall, got %v", w.Pending.Pos.X)
	}
}

func TestMergePair(t *testing.T) {
	t.Run("combines_into_next_tier", func(t *testing.T) {
		w := newTestWorld(11)
		a := place(w, 2, 100, 900)
		b := place(w, 2, 140, 900)
		a.Vel = cp.Vector{X: 2, Y: -1}
		b.Vel = cp.Vector{X: -4, Y: 3}

		merged := w.mergePair(a, b)
		if merged == nil {
			t.Fatal("expected a merge")
		}
		if len(w.Bodies) != 1 || w.Bodies[0] != merged {
			t.Fatalf("expected only the merged body, got %d", len(w.Bodies))
		}
		if merged.Tier != 3 || merged.Size != Sizes[3] {
			t.Fatalf("expected tier 3 body, got tier %d size %v", merged.Tier, merged.Size)
		}
		// equal masses, so the weighted averages collapse to midpoints
		if !approx(merged.Pos.X, 120, 1e-9) || !approx(merged.Pos.Y, 900, 1e-9) {
			t.Fatalf("expected midpoint position, got %v", merged.Pos)
		}
		if !approx(merged.Vel.X, -1, 1e-9) || !approx(merged.Vel.Y, 1, 1e-9) {
			t.Fatalf("expected averaged velocity, got %v", merged.Vel)
		}
		if w.Score != 30 {
			t.Fatalf("expected score 30, got %d", w.Score)
		}
	})

	t.Run("rejects_top_tier", func(t *testing.T) {
		w := newTestWorld(11)
		top := len(Sizes) - 1
		a := place(w, top, 100, 700)
		b := place(w, top, 400, 700)
		if w.mergePair(a, b) != nil {
			t.Fatal("top tier must not merge")
		}
		if len(w.Bodies) != 2 || w.Score != 0 {
			t.Fatalf("expected untouched pile, got %d bodies score %d", len(w.Bodies), w.Score)
		}
	})

	t.Run("rejects_mismatched_tiers", func(t *testing.T) {
		w := newTestWorld(11)
		a := place(w, 1, 100, 700)
		b := place(w, 2, 200, 700)
		if w.mergePair(a, b) != nil {
			t.Fatal("different tiers must not merge")
		}
	})

	t.Run("rejects_same_body", func(t *testing.T) {
		w := newTestWorld(11)
		a := place(w, 1, 100, 700)
		if w.mergePair(a, a) != nil {
			t.Fatal("a body must not merge with itself")
		}
	})

	t.Run("weights_position_by_mass", func(t *testing.T) {
		w := newTestWorld(11)
		a := place(w, 1, 100, 800)
		b := place(w, 1, 200, 800)
		// skew one mass and verify the weighting instead of the midpoint
		a.Mass = 3 * b.Mass

		merged := w.mergePair(a, b)
		if merged == nil {
			t.Fatal("expected a merge")
		}
		if !approx(merged.Pos.X, 125, 1e-9) {
			t.Fatalf("expected mass-weighted x=125, got %v", merged.Pos.X)
		}
	})
}

func TestResetLifecycle(t *testing.T) {
	w := newTestWorld(13)
	place(w, 4, testWidth/2, 0) // top edge well above the arena
	w.Step()
	if w.State != GameOver {
		t.Fatalf("expected game over, got %v", w.State)
	}

	w.Score = 170
	w.Reset()
	if w.State != Playing {
		t.Fatalf("expected playing after reset, got %v", w.State)
	}
	if len(w.Bodies) != 0 || w.Score != 0 || w.Tick() != 0 {
		t.Fatalf("expected a fresh world, got %d bodies score %d tick %d", len(w.Bodies), w.Score, w.Tick())
	}
	if w.Pending == nil || w.Pending.Pos.X != testWidth/2 {
		t.Fatal("expected a fresh pending body at the drop point")
	}

	// reset only acts from GameOver
	place(w, 2, 100, 900)
	w.Reset()
	if len(w.Bodies) != 1 {
		t.Fatalf("expected reset ignored while playing, got %d bodies", len(w.Bodies))
	}
}

func TestDrainEvents(t *testing.T) {
	w := newTestWorld(17)
	w.Drop()

	ev := w.DrainEvents()
	if len(ev) != 1 || ev[0].Kind != EventDrop {
		t.Fatalf("expected one drop event, got %v", ev)
	}
	if len(w.DrainEvents()) != 0 {
		t.Fatal("expected queue drained")
	}
}

func TestColumnHeights(t *testing.T) {
	w := newTestWorld(19)
	if hs := w.ColumnHeights(6); len(hs) != 6 {
		t.Fatalf("expected 6 columns, got %d", len(hs))
	} else {
		for i, h := range hs {
			if h != 0 {
				t.Fatalf("expected empty column %d, got height %v", i, h)
			}
		}
	}

	// a tier-2 body resting on the floor in the first column
	b := place(w, 2, 40, testHeight-Sizes[2]/2)
	hs := w.ColumnHeights(6)
	if !approx(hs[0], b.Size, 1e-9) {
		t.Fatalf("expected pile height %v in column 0, got %v", b.Size, hs[0])
	}
	if hs[5] != 0 {
		t.Fatalf("expected far column empty, got %v", hs[5])
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func(seed int64) *World {
		w := newTestWorld(seed)
		for k := 0; k < 6; k++ {
			w.MovePendingTo(float64(60 + k*80))
			w.Drop()
			for i := 0; i < 40; i++ {
				w.Step()
			}
		}
		return w
	}

	w1 := run(99)
	w2 := run(99)

	if w1.Score != w2.Score || w1.State != w2.State || len(w1.Bodies) != len(w2.Bodies) {
		t.Fatalf("replay diverged: score %d/%d state %v/%v bodies %d/%d",
			w1.Score, w2.Score, w1.State, w2.State, len(w1.Bodies), len(w2.Bodies))
	}
	for i := range w1.Bodies {
		a, b := w1.Bodies[i], w2.Bodies[i]
		if a.Pos != b.Pos || a.Vel != b.Vel || a.Tier != b.Tier {
			t.Fatalf("body %d diverged: %+v vs %+v", i, a, b)
		}
	}
}
