package sim

// Tuning holds the simulation constants. Friction and Restitution are
// copied onto bodies at creation; everything else applies globally each
// tick. Swapping the tuning mid-game never rewrites existing bodies.
type Tuning struct {
	Gravity         float64
	Friction        float64
	VerticalDamping float64
	Restitution     float64
	RestThreshold   float64
	RestNudge       float64
	DropSpeed       float64
	DropKick        float64
	SpawnY          float64
	PendingStep     float64
}

// DefaultTuning is the shipped balance profile.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         0.5,
		Friction:        0.99,
		VerticalDamping: 0.999,
		Restitution:     0.3,
		RestThreshold:   0.35,
		RestNudge:       0.2,
		DropSpeed:       2.5,
		DropKick:        0.6,
		SpawnY:          100,
		PendingStep:     4,
	}
}

// Solver constants, not tunable. correctionFactor resolves half the overlap
// per visit; slop keeps the contact normal finite at near-zero separation;
// floorSlack is how far off the floor a body must be to count as airborne.
const (
	correctionFactor = 0.5
	slop             = 0.01
	floorSlack       = 0.5
)
