package sim

import (
	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
)

// Runner hides a game's field state type so engines with different states
// can sit side by side in the registry.
type Runner[FS FieldState] struct {
	game Game[FS]
}

// Bind wraps g in a Runner.
func Bind[FS FieldState](g Game[FS]) *Runner[FS] {
	return &Runner[FS]{game: g}
}

// ID returns the wrapped game's identifier.
func (r *Runner[FS]) ID() string {
	return r.game.ID()
}

// Title returns the wrapped game's display name.
func (r *Runner[FS]) Title() string {
	return r.game.Title()
}

// Simulate runs ComputeSteps with the wrapped game.
func (r *Runner[FS]) Simulate(
	instrs []arena.Runnable,
	locations []arena.Location,
	cal core.Calibration,
	animationRate float64,
) (Result, error) {
	return ComputeSteps(r.game, instrs, locations, cal, animationRate)
}
