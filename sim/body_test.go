package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestSizesLadderAscends(t *testing.T) {
	if len(Sizes) < 2 {
		t.Fatalf("expected at least two tiers, got %d", len(Sizes))
	}
	for i := 1; i < len(Sizes); i++ {
		if Sizes[i] <= Sizes[i-1] {
			t.Fatalf("ladder not ascending at tier %d: %v <= %v", i, Sizes[i], Sizes[i-1])
		}
	}
}

func TestMassScalesWithSizeSquared(t *testing.T) {
	cases := []struct {
		name   string
		small  float64
		large  float64
		factor float64
	}{
		{"double_size_quadruple_mass", 10, 20, 4},
		{"triple_size_ninefold_mass", 16, 48, 9},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ratio := massFor(c.large) / massFor(c.small)
			if !approx(ratio, c.factor, 1e-9) {
				t.Fatalf("expected mass ratio %v, got %v", c.factor, ratio)
			}
		})
	}
}

func TestNewBodyTakesTuningCoefficients(t *testing.T) {
	tun := DefaultTuning()
	tun.Friction = 0.5
	tun.Restitution = 0.75

	b := NewBody(3, cp.Vector{X: 10, Y: 20}, tun)
	if b.Size != Sizes[3] {
		t.Fatalf("expected size %v, got %v", Sizes[3], b.Size)
	}
	if b.Mass <= 0 {
		t.Fatalf("expected positive mass, got %v", b.Mass)
	}
	if b.Friction != 0.5 || b.Restitution != 0.75 {
		t.Fatalf("expected tuning coefficients on body, got friction=%v restitution=%v", b.Friction, b.Restitution)
	}
	if b.Vel.X != 0 || b.Vel.Y != 0 {
		t.Fatalf("expected new body at rest, got %v", b.Vel)
	}
}
