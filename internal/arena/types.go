// Package arena defines the data model a run is planned over: locations,
// the actions available at them, obstacle rectangles and the run script.
// Field names follow the persisted wire shape so saved layouts round-trip.
package arena

import (
	"github.com/vovakirdan/arena-planner/internal/core"
)

// Resource is a countable quantity of a named game piece.
// Actions declare what they produce and consume, but nothing applies them yet.
type Resource struct {
	PieceID string `json:"piece_id" yaml:"piece_id"`
	Count   int    `json:"count" yaml:"count"`
}

// GameAction is a timed action the robot can perform at a location.
type GameAction struct {
	ActionID string     `json:"action_id" yaml:"action_id"`
	Reward   float64    `json:"reward" yaml:"reward"`
	Duration float64    `json:"duration" yaml:"duration"` // seconds
	Produces []Resource `json:"produces" yaml:"produces"`
	Consumes []Resource `json:"consumes" yaml:"consumes"`
}

// Location is a labelled point of the arena and the actions available there.
type Location struct {
	LocID    string        `json:"loc_id" yaml:"loc_id"`
	Position core.Position `json:"position" yaml:"position"`
	Actions  []GameAction  `json:"actions" yaml:"actions"`
}

// Action looks up an action by id.
func (l *Location) Action(actionID string) (*GameAction, bool) {
	for i := range l.Actions {
		if l.Actions[i].ActionID == actionID {
			return &l.Actions[i], true
		}
	}
	return nil, false
}

// Exclusion is an obstacle rectangle in pixel space.
// Planning does not route around exclusions yet.
type Exclusion struct {
	TopLeft core.Position `json:"top_left" yaml:"top_left"`
	Width   float64       `json:"width" yaml:"width"`
	Height  float64       `json:"height" yaml:"height"`
}

// Contains reports whether p lies inside the rectangle.
func (e Exclusion) Contains(p core.Position) bool {
	return p.X >= e.TopLeft.X && p.X < e.TopLeft.X+e.Width &&
		p.Y >= e.TopLeft.Y && p.Y < e.TopLeft.Y+e.Height
}

// Kind tags a Runnable.
type Kind string

const (
	KindStart Kind = "start"
	KindMove  Kind = "move"
	KindAct   Kind = "act"
)

// Runnable is one instruction of a run script.
// Exactly one of the reference fields is meaningful, selected by Kind.
type Runnable struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	LocID     string `json:"loc_id,omitempty" yaml:"loc_id,omitempty"`
	DestLocID string `json:"dest_loc_id,omitempty" yaml:"dest_loc_id,omitempty"`
	ActionID  string `json:"action_id,omitempty" yaml:"action_id,omitempty"`
}

// Start returns an instruction that places the robot at locID.
func Start(locID string) Runnable {
	return Runnable{Kind: KindStart, LocID: locID}
}

// MoveTo returns an instruction that drives to destLocID.
func MoveTo(destLocID string) Runnable {
	return Runnable{Kind: KindMove, DestLocID: destLocID}
}

// Act returns an instruction that performs actionID at the current location.
func Act(actionID string) Runnable {
	return Runnable{Kind: KindAct, ActionID: actionID}
}

// Ref returns the id the instruction refers to.
func (r Runnable) Ref() string {
	switch r.Kind {
	case KindStart:
		return r.LocID
	case KindMove:
		return r.DestLocID
	case KindAct:
		return r.ActionID
	default:
		return ""
	}
}

// String renders the instruction the way the run editor lists it.
func (r Runnable) String() string {
	switch r.Kind {
	case KindStart:
		return `Start at location "` + r.LocID + `"`
	case KindMove:
		return `Move to location "` + r.DestLocID + `"`
	case KindAct:
		return `Take action "` + r.ActionID + `"`
	default:
		return "Unknown instruction " + string(r.Kind)
	}
}

// FindLocation looks up a location by id.
func FindLocation(locations []Location, locID string) (*Location, bool) {
	for i := range locations {
		if locations[i].LocID == locID {
			return &locations[i], true
		}
	}
	return nil, false
}
