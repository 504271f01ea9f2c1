// Package planner resolves a run script against the arena's locations into
// timed moves. It does not avoid exclusions: every move is a straight line.
package planner

import (
	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
)

// Move is an instruction resolved to a location, an end position and a duration.
type Move struct {
	Runnable    arena.Runnable
	EndLoc      arena.Location
	EndPosition core.Position
	RunSeconds  float64
	Action      *arena.GameAction // set for act moves only
}

// ComputePath resolves instrs in order. Each move or act is resolved against
// the location established by the instruction before it.
//
// A calibration that is not ready yields an empty plan and no error: callers
// must read that as "not yet computable" rather than "nothing to do".
func ComputePath(instrs []arena.Runnable, locations []arena.Location, cal core.Calibration) ([]Move, error) {
	if !cal.Ready() {
		return []Move{}, nil
	}

	moves := make([]Move, 0, len(instrs))
	var (
		current Move
		started bool
	)

	for i, instr := range instrs {
		var m Move

		switch instr.Kind {
		case arena.KindStart:
			loc, ok := arena.FindLocation(locations, instr.LocID)
			if !ok {
				return nil, planErr(i, instr, ErrUnknownLocation)
			}
			m = Move{
				Runnable:    instr,
				EndLoc:      *loc,
				EndPosition: loc.Position,
			}

		case arena.KindMove:
			if !started {
				return nil, planErr(i, instr, ErrInvalidSequence)
			}
			loc, ok := arena.FindLocation(locations, instr.DestLocID)
			if !ok {
				return nil, planErr(i, instr, ErrUnknownLocation)
			}
			m = Move{
				Runnable:    instr,
				EndLoc:      *loc,
				EndPosition: loc.Position,
				RunSeconds:  core.TravelSeconds(current.EndPosition, loc.Position, cal),
			}

		case arena.KindAct:
			if !started {
				return nil, planErr(i, instr, ErrInvalidSequence)
			}
			act, ok := current.EndLoc.Action(instr.ActionID)
			if !ok {
				return nil, planErr(i, instr, ErrUnknownAction)
			}
			if !core.PositiveFinite(act.Duration) {
				return nil, planErr(i, instr, ErrInvalidDuration)
			}
			m = Move{
				Runnable:    instr,
				EndLoc:      current.EndLoc,
				EndPosition: current.EndPosition,
				RunSeconds:  act.Duration,
				Action:      act,
			}

		default:
			return nil, planErr(i, instr, ErrInvalidSequence)
		}

		moves = append(moves, m)
		current, started = m, true
	}

	return moves, nil
}

// RunTimes returns the duration of each resolved instruction, index-aligned
// with the script.
func RunTimes(moves []Move) []float64 {
	times := make([]float64, len(moves))
	for i, m := range moves {
		times[i] = m.RunSeconds
	}
	return times
}

// TotalSeconds sums the duration of every move.
func TotalSeconds(moves []Move) float64 {
	total := 0.0
	for _, m := range moves {
		total += m.RunSeconds
	}
	return total
}
