package chargedup

import (
	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
)

// GridColumnActions returns the placement actions offered at a grid column
// that takes piece. Higher rows pay more and take longer to reach.
func GridColumnActions(piece Item) []arena.GameAction {
	consumes := func() []arena.Resource {
		return []arena.Resource{{PieceID: string(piece), Count: 1}}
	}
	return []arena.GameAction{
		{ActionID: "place_high", Reward: 5, Duration: 2, Produces: []arena.Resource{}, Consumes: consumes()},
		{ActionID: "place_mid", Reward: 4, Duration: 2, Produces: []arena.Resource{}, Consumes: consumes()},
		{ActionID: "place_low", Reward: 3, Duration: 1, Produces: []arena.Resource{}, Consumes: consumes()},
	}
}

// LoadingZoneActions returns the pickup actions offered at a loading zone.
func LoadingZoneActions() []arena.GameAction {
	return []arena.GameAction{
		{ActionID: "take_cone", Reward: 0, Duration: 2,
			Produces: []arena.Resource{{PieceID: string(ItemCone), Count: 1}}, Consumes: []arena.Resource{}},
		{ActionID: "take_cube", Reward: 0, Duration: 2,
			Produces: []arena.Resource{{PieceID: string(ItemCube), Count: 1}}, Consumes: []arena.Resource{}},
	}
}

// PreloadLayout is an empty Charged Up layout measured against the field
// image: 580 px spans 1654 cm across and 326 px spans 802 cm down.
func PreloadLayout() arena.Layout {
	return arena.Layout{
		GameID:        GameID,
		Locations:     []arena.Location{},
		Exclusions:    []arena.Exclusion{},
		Instrs:        []arena.Runnable{},
		MeasureWidth:  580,
		RealWidth:     1654,
		MeasureHeight: 326,
		RealHeight:    802,
	}
}

// StarterLayout is a small runnable layout: pick up a cone at the loading
// zone, place it high on the nearest cone column and finish on the charge
// station named stationLocID.
func StarterLayout(stationLocID string) arena.Layout {
	l := PreloadLayout()
	l.Name = "starter"
	l.Locations = []arena.Location{
		{LocID: "loading_zone", Position: core.P(540, 40), Actions: LoadingZoneActions()},
		{LocID: "cone_column", Position: core.P(40, 60), Actions: GridColumnActions(ItemCone)},
		{LocID: "cube_column", Position: core.P(40, 100), Actions: GridColumnActions(ItemCube)},
		{LocID: stationLocID, Position: core.P(140, 163), Actions: []arena.GameAction{}},
	}
	l.Exclusions = []arena.Exclusion{
		{TopLeft: core.P(110, 120), Width: 60, Height: 86},
	}
	l.Instrs = []arena.Runnable{
		arena.Start("loading_zone"),
		arena.Act("take_cone"),
		arena.MoveTo("cone_column"),
		arena.Act("place_high"),
		arena.MoveTo(stationLocID),
	}
	return l
}
