// Package tuning loads the simulation balance profile. The compiled-in
// default ships with the binary; a disk file can override any subset of it
// and is re-read live while the game runs.
package tuning

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/melonfall/common"
	"github.com/milk9111/melonfall/sim"
)

//go:embed tuning.yaml
var defaultYAML []byte

// Spec is the on-disk shape of a tuning profile.
type Spec struct {
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	VerticalDamping float64 `yaml:"vertical_damping"`
	Restitution     float64 `yaml:"restitution"`
	RestThreshold   float64 `yaml:"rest_threshold"`
	RestNudge       float64 `yaml:"rest_nudge"`
	DropSpeed       float64 `yaml:"drop_speed"`
	DropKick        float64 `yaml:"drop_kick"`
	SpawnY          float64 `yaml:"spawn_y"`
	PendingStep     float64 `yaml:"pending_step"`
}

// Load returns the embedded default profile with the file at path, if any,
// layered on top. Fields the override file omits keep their defaults. The
// result is validated before it is returned.
func Load(path string) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(defaultYAML, &spec); err != nil {
		return Spec{}, fmt.Errorf("tuning: unmarshal embedded default: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Spec{}, fmt.Errorf("tuning: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return Spec{}, fmt.Errorf("tuning: unmarshal %s: %w", path, err)
		}
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Validate rejects profiles the solver cannot run stably.
func (s Spec) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{s.Gravity > 0, "gravity must be positive"},
		{s.Friction > 0 && s.Friction <= 1, "friction must be in (0, 1]"},
		{s.VerticalDamping > 0 && s.VerticalDamping <= 1, "vertical_damping must be in (0, 1]"},
		{s.Restitution >= 0 && s.Restitution < 1, "restitution must be in [0, 1)"},
		{s.RestThreshold >= 0, "rest_threshold must not be negative"},
		{s.RestNudge >= 0, "rest_nudge must not be negative"},
		{s.DropSpeed > 0, "drop_speed must be positive"},
		{s.DropKick >= 0, "drop_kick must not be negative"},
		{s.SpawnY > 0 && s.SpawnY < common.BaseHeight, "spawn_y must be inside the arena"},
		{s.PendingStep > 0, "pending_step must be positive"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("tuning: %s", c.msg)
		}
	}
	return nil
}

// Sim maps the profile onto the simulation's tuning struct.
func (s Spec) Sim() sim.Tuning {
	return sim.Tuning{
		Gravity:         s.Gravity,
		Friction:        s.Friction,
		VerticalDamping: s.VerticalDamping,
		Restitution:     s.Restitution,
		RestThreshold:   s.RestThreshold,
		RestNudge:       s.RestNudge,
		DropSpeed:       s.DropSpeed,
		DropKick:        s.DropKick,
		SpawnY:          s.SpawnY,
		PendingStep:     s.PendingStep,
	}
}
