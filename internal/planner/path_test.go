package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
)

func testLocations() []arena.Location {
	return []arena.Location{
		{LocID: "A", Position: core.P(0, 0), Actions: []arena.GameAction{
			{ActionID: "take_cone", Reward: 0, Duration: 2},
		}},
		{LocID: "B", Position: core.P(100, 0), Actions: []arena.GameAction{
			{ActionID: "place_high", Reward: 5, Duration: 2},
		}},
		{LocID: "C", Position: core.P(100, 200)},
	}
}

var unitCal = core.Calibration{Velocity: 1, XRatio: 100, YRatio: 100}

func TestComputePathStartMoveAct(t *testing.T) {
	instrs := []arena.Runnable{
		arena.Start("A"),
		arena.MoveTo("B"),
		arena.Act("place_high"),
	}

	moves, err := ComputePath(instrs, testLocations(), unitCal)
	if err != nil {
		t.Fatalf("ComputePath() failed: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(moves))
	}

	start := moves[0]
	if start.RunSeconds != 0 || start.EndLoc.LocID != "A" || !start.EndPosition.SamePoint(core.P(0, 0)) {
		t.Errorf("start move = %+v", start)
	}

	move := moves[1]
	if move.EndLoc.LocID != "B" || math.Abs(move.RunSeconds-1) > 1e-9 {
		t.Errorf("move = %+v, expected 1 second to B", move)
	}

	act := moves[2]
	if act.Action == nil || act.Action.ActionID != "place_high" {
		t.Fatalf("act move has no resolved action: %+v", act)
	}
	if act.RunSeconds != 2 {
		t.Errorf("act RunSeconds = %v, expected action duration 2", act.RunSeconds)
	}
	if !act.EndPosition.SamePoint(move.EndPosition) {
		t.Error("acting must not move the robot")
	}
}

func TestComputePathNonSquareCalibration(t *testing.T) {
	instrs := []arena.Runnable{arena.Start("B"), arena.MoveTo("C")}
	cal := core.Calibration{Velocity: 2, XRatio: 10, YRatio: 50}

	moves, err := ComputePath(instrs, testLocations(), cal)
	if err != nil {
		t.Fatalf("ComputePath() failed: %v", err)
	}

	// dy = 200px at 50px/unit = 4 units, at 2 units/s
	if math.Abs(moves[1].RunSeconds-2) > 1e-9 {
		t.Errorf("RunSeconds = %v, expected 2", moves[1].RunSeconds)
	}
}

func TestComputePathNotReady(t *testing.T) {
	instrs := []arena.Runnable{arena.Start("A"), arena.MoveTo("B")}

	cals := []core.Calibration{
		{Velocity: 0, XRatio: 1, YRatio: 1},
		{Velocity: 1, XRatio: 0, YRatio: 1},
		{Velocity: 1, XRatio: 1, YRatio: -3},
	}
	for _, cal := range cals {
		moves, err := ComputePath(instrs, testLocations(), cal)
		if err != nil {
			t.Errorf("ComputePath(%+v) error = %v, expected nil", cal, err)
		}
		if len(moves) != 0 {
			t.Errorf("ComputePath(%+v) returned %d moves, expected none", cal, len(moves))
		}
	}
}

func TestComputePathErrors(t *testing.T) {
	tests := []struct {
		name   string
		instrs []arena.Runnable
		want   error
		index  int
	}{
		{
			name:   "unknown destination",
			instrs: []arena.Runnable{arena.Start("A"), arena.MoveTo("Z")},
			want:   ErrUnknownLocation,
			index:  1,
		},
		{
			name:   "unknown start",
			instrs: []arena.Runnable{arena.Start("Z")},
			want:   ErrUnknownLocation,
			index:  0,
		},
		{
			name:   "action not at current location",
			instrs: []arena.Runnable{arena.Start("A"), arena.Act("place_high")},
			want:   ErrUnknownAction,
			index:  1,
		},
		{
			name:   "action resolved against location reached by the last move",
			instrs: []arena.Runnable{arena.Start("A"), arena.MoveTo("C"), arena.Act("take_cone")},
			want:   ErrUnknownAction,
			index:  2,
		},
		{
			name:   "move before start",
			instrs: []arena.Runnable{arena.MoveTo("B")},
			want:   ErrInvalidSequence,
			index:  0,
		},
		{
			name:   "act before start",
			instrs: []arena.Runnable{arena.Act("take_cone")},
			want:   ErrInvalidSequence,
			index:  0,
		},
		{
			name:   "unknown kind",
			instrs: []arena.Runnable{arena.Start("A"), {Kind: "teleport"}},
			want:   ErrInvalidSequence,
			index:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := ComputePath(tt.instrs, testLocations(), unitCal)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, expected %v", err, tt.want)
			}
			if moves != nil {
				t.Errorf("expected no moves on error, got %d", len(moves))
			}

			var pe *PlanError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *PlanError", err)
			}
			if pe.Index != tt.index {
				t.Errorf("Index = %d, expected %d", pe.Index, tt.index)
			}
		})
	}
}

func TestComputePathRepeatedStart(t *testing.T) {
	instrs := []arena.Runnable{arena.Start("A"), arena.MoveTo("B"), arena.Start("C"), arena.MoveTo("B")}

	moves, err := ComputePath(instrs, testLocations(), unitCal)
	if err != nil {
		t.Fatalf("ComputePath() failed: %v", err)
	}
	if moves[2].RunSeconds != 0 {
		t.Error("a later start should reposition without travel time")
	}
	if math.Abs(moves[3].RunSeconds-2) > 1e-9 {
		t.Errorf("move after restart = %v, expected 2 (from C)", moves[3].RunSeconds)
	}
}

func TestRunTimes(t *testing.T) {
	instrs := []arena.Runnable{arena.Start("A"), arena.Act("take_cone"), arena.MoveTo("B"), arena.Act("place_high")}

	moves, err := ComputePath(instrs, testLocations(), unitCal)
	if err != nil {
		t.Fatalf("ComputePath() failed: %v", err)
	}

	times := RunTimes(moves)
	expected := []float64{0, 2, 1, 2}
	for i := range expected {
		if math.Abs(times[i]-expected[i]) > 1e-9 {
			t.Errorf("times[%d] = %v, expected %v", i, times[i], expected[i])
		}
	}
	if math.Abs(TotalSeconds(moves)-5) > 1e-9 {
		t.Errorf("TotalSeconds() = %v, expected 5", TotalSeconds(moves))
	}
}

func TestComputePathRejectsInvalidDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
	}{
		{"negative", -100},
		{"zero", 0},
		{"NaN", math.NaN()},
		{"infinite", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locs := []arena.Location{{LocID: "A", Actions: []arena.GameAction{{ActionID: "x", Reward: 1, Duration: tt.duration}}}}
			moves, err := ComputePath([]arena.Runnable{arena.Start("A"), arena.Act("x")}, locs, unitCal)
			if !errors.Is(err, ErrInvalidDuration) {
				t.Fatalf("error = %v, expected ErrInvalidDuration", err)
			}
			var pe *PlanError
			if !errors.As(err, &pe) || pe.Index != 1 || pe.Ref != "x" {
				t.Errorf("PlanError = %+v", pe)
			}
			if moves != nil {
				t.Errorf("expected no moves, got %d", len(moves))
			}
		})
	}
}
