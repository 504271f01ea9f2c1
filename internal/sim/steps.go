package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
	"github.com/vovakirdan/arena-planner/internal/planner"
)

// Result is a simulated run: the resolved moves, one Step per rendered frame,
// the engine's final score and the simulated duration.
type Result struct {
	Moves          []planner.Move
	Steps          []Step
	Score          float64
	ElapsedSeconds float64
}

// FrameIndex maps wall-clock playback time to a frame number using
// floor(seconds * animationRate), clamped to the last frame.
// Returns -1 when there are no frames.
func (r Result) FrameIndex(elapsed time.Duration, animationRate float64) int {
	if len(r.Steps) == 0 {
		return -1
	}
	idx := int(math.Floor(elapsed.Seconds() * animationRate))
	return core.Clamp(idx, 0, len(r.Steps)-1)
}

// Finished reports whether playback at elapsed has shown every frame.
func (r Result) Finished(elapsed time.Duration, animationRate float64) bool {
	return int(math.Floor(elapsed.Seconds()*animationRate)) >= len(r.Steps)-1
}

// ComputeSteps plans instrs and simulates the plan frame by frame at
// animationRate frames per second, scoring it with g.
//
// A calibration or animation rate that is not strictly positive and finite
// yields an empty result and no error. Planner errors are returned unchanged.
func ComputeSteps[FS FieldState](
	g Game[FS],
	instrs []arena.Runnable,
	locations []arena.Location,
	cal core.Calibration,
	animationRate float64,
) (Result, error) {
	if !cal.Ready() || !core.PositiveFinite(animationRate) {
		return Result{Moves: []planner.Move{}, Steps: []Step{}}, nil
	}

	moves, err := planner.ComputePath(instrs, locations, cal)
	if err != nil {
		return Result{}, err
	}

	st := run[FS]{
		fs:    g.EmptyField(),
		steps: make([]Step, 0, estimateFrames(moves, animationRate)),
	}
	for _, m := range moves {
		st = advance(g, st, m, animationRate)
	}

	return Result{
		Moves:          moves,
		Steps:          st.steps,
		Score:          g.ScoreSteps(st.fs, st.steps),
		ElapsedSeconds: st.fs.ElapsedSeconds(),
	}, nil
}

// run is the accumulator threaded through the fold over moves.
type run[FS FieldState] struct {
	fs    FS
	loc   *arena.Location
	pos   core.Position
	steps []Step
}

func advance[FS FieldState](g Game[FS], st run[FS], m planner.Move, rate float64) run[FS] {
	switch m.Runnable.Kind {
	case arena.KindStart:
		return startAt(st, m)
	case arena.KindMove:
		return travel(g, st, m, rate)
	case arena.KindAct:
		return perform(g, st, m, rate)
	default:
		return st
	}
}

// startAt anchors the robot with a single zero-award frame.
func startAt[FS FieldState](st run[FS], m planner.Move) run[FS] {
	loc := m.EndLoc
	st.loc = &loc
	st.pos = m.EndPosition
	st.steps = append(st.steps, Step{Position: m.EndPosition, Award: 0})
	return st
}

// travel emits evenly spaced frames along the straight line to the
// destination. The last frame is placed on the destination itself so
// interpolation error never leaves the robot short.
func travel[FS FieldState](g Game[FS], st run[FS], m planner.Move, rate float64) run[FS] {
	from, to := st.pos, m.EndPosition
	dest := m.EndLoc

	n := frameCount(m.RunSeconds, rate)
	if n == 0 && m.RunSeconds > 0 {
		n = 1
	}

	if n > 0 {
		stepSeconds := m.RunSeconds / float64(n)
		for j := 0; j < n; j++ {
			st.fs = g.StepFieldState(st.fs, stepSeconds, nil)
			var award float64
			st.fs, award = g.ComputeFieldAward(st.fs)

			pos := to
			if j < n-1 {
				pos = core.Lerp(from, to, float64(j+1)/float64(n))
			}
			st.steps = append(st.steps, Step{Position: pos, Award: award})
		}
	}

	// Arrival is registered without a frame of its own.
	st.fs = g.StepFieldState(st.fs, 0, &dest)
	st.loc = &dest
	st.pos = to
	return st
}

// perform holds the robot still for the action's duration. The action's
// reward is credited once, on its final frame.
func perform[FS FieldState](g Game[FS], st run[FS], m planner.Move, rate float64) run[FS] {
	var reward float64
	if m.Action != nil {
		reward = m.Action.Reward
	}

	n := frameCount(m.RunSeconds, rate)
	if n == 0 {
		// Too short to render: keep the clock honest and credit the
		// previous frame instead of emitting one.
		st.fs = g.StepFieldState(st.fs, m.RunSeconds, st.loc)
		var award float64
		st.fs, award = g.ComputeFieldAward(st.fs)
		if len(st.steps) == 0 {
			st.steps = append(st.steps, Step{Position: st.pos})
		}
		st.steps[len(st.steps)-1].Award += award + reward
		return st
	}

	stepSeconds := m.RunSeconds / float64(n)
	for j := 0; j < n; j++ {
		st.fs = g.StepFieldState(st.fs, stepSeconds, st.loc)
		var award float64
		st.fs, award = g.ComputeFieldAward(st.fs)
		if j == n-1 {
			award += reward
		}
		st.steps = append(st.steps, Step{Position: st.pos, Award: award})
	}
	return st
}

// maxPrealloc caps the capacity hint so a long plan grows the slice instead
// of reserving it up front.
const maxPrealloc = 1 << 16

func frameCount(seconds, rate float64) int {
	n := math.Floor(seconds * rate)
	if !(n > 0) {
		return 0
	}
	return int(n)
}

func estimateFrames(moves []planner.Move, rate float64) int {
	est := planner.TotalSeconds(moves) * rate
	if !(est > 0) {
		return len(moves)
	}
	return int(math.Min(est, maxPrealloc)) + len(moves)
}
