package planner

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arena-planner/internal/arena"
)

// Sentinel errors for unresolvable instructions. Match with errors.Is.
var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidSequence = errors.New("invalid sequence")
	ErrInvalidDuration = errors.New("action duration must be positive and finite")
)

// PlanError locates an unresolvable instruction in the script.
type PlanError struct {
	Index int        // position in the instruction list
	Kind  arena.Kind // kind of the offending instruction
	Ref   string     // location or action id it referred to
	Err   error      // one of the sentinel errors
}

func (e *PlanError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("planner: instruction %d (%s): %v", e.Index, e.Kind, e.Err)
	}
	return fmt.Sprintf("planner: instruction %d (%s %q): %v", e.Index, e.Kind, e.Ref, e.Err)
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

func planErr(idx int, r arena.Runnable, err error) error {
	return &PlanError{Index: idx, Kind: r.Kind, Ref: r.Ref(), Err: err}
}
