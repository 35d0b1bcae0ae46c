package sim

import "github.com/jakecoffman/cp"

// EventKind tags a simulation event.
type EventKind int

const (
	// EventDrop fires when a pending body is released into the arena.
	EventDrop EventKind = iota
	// EventMerge fires when a pair combines. Tier and Pos describe the
	// new body.
	EventMerge
	// EventGameOver fires once, on the Playing -> GameOver transition.
	EventGameOver
)

// Event is a notification queued during a tick and drained by the caller
// afterwards. The simulation never calls out; collaborators poll.
type Event struct {
	Kind EventKind
	Tier int
	Pos  cp.Vector
}
