package tui

import (
	"fmt"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/registry"
	"github.com/vovakirdan/arena-planner/internal/sim"
)

// Playback is a simulated run ready to be shown.
type Playback struct {
	Title         string // engine title
	Layout        arena.Layout
	Result        sim.Result
	AnimationRate float64
}

// BuildPlayback simulates layout with e and packages the result for the viewer.
func BuildPlayback(e registry.Engine, layout arena.Layout, velocity, animationRate float64) (Playback, error) {
	cal := layout.Calibration(velocity)
	if !cal.Ready() {
		return Playback{}, fmt.Errorf("layout %q is not calibrated (velocity %.2f, ratios %.3f/%.3f)",
			layout.Name, cal.Velocity, cal.XRatio, cal.YRatio)
	}

	res, err := e.Simulate(layout.Instrs, layout.Locations, cal, animationRate)
	if err != nil {
		return Playback{}, err
	}

	return Playback{
		Title:         e.Title(),
		Layout:        layout,
		Result:        res,
		AnimationRate: animationRate,
	}, nil
}

// Frames returns the number of frames in the run.
func (p Playback) Frames() int {
	return len(p.Result.Steps)
}

// PointsThrough sums the awards of frames 0..frame.
func (p Playback) PointsThrough(frame int) float64 {
	var total float64
	for i := 0; i <= frame && i < len(p.Result.Steps); i++ {
		total += p.Result.Steps[i].Award
	}
	return total
}
