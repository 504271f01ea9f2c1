// Package sim turns a planned run into a per-frame trajectory while driving
// a pluggable game engine that scores it.
//
// Simulation is a pure function of its inputs: no clocks are read, nothing is
// shared between calls, and frames within a run are evaluated strictly in order.
package sim

import (
	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
)

// Step is one animation frame and the score attributed to it.
type Step struct {
	Position core.Position `json:"position"`
	Award    float64       `json:"award"`
}

// FieldState is a game's scoring state. The simulator only reads its clock.
type FieldState interface {
	// ElapsedSeconds is the engine-maintained running clock, advanced by
	// every step duration passed to StepFieldState.
	ElapsedSeconds() float64
}

// Game is the contract a concrete game implements to score runs.
// Field states are threaded by value: each call returns the state the next
// call observes.
type Game[FS FieldState] interface {
	// ID returns the unique identifier the engine is registered under.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// EmptyField returns the state at the start of a run.
	EmptyField() FS

	// StepFieldState advances fs by stepSeconds. loc is the location the
	// robot occupies, or nil while it is in transit.
	StepFieldState(fs FS, stepSeconds float64, loc *arena.Location) FS

	// ComputeFieldAward returns the score earned by the frame just stepped,
	// together with the state after claiming it.
	ComputeFieldAward(fs FS) (FS, float64)

	// ScoreSteps returns the total score of a finished run.
	ScoreSteps(fs FS, steps []Step) float64
}
