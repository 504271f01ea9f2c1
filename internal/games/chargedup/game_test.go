package chargedup

import (
	"testing"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/config"
	"github.com/vovakirdan/arena-planner/internal/core"
	"github.com/vovakirdan/arena-planner/internal/registry"
	"github.com/vovakirdan/arena-planner/internal/sim"
)

const (
	T = true
	F = false
)

func newGame(t *testing.T, mutate func(*config.ChargedUpConfig)) *Game {
	t.Helper()
	cfg := config.DefaultChargedUpConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestScoreLinks(t *testing.T) {
	tests := []struct {
		name     string
		cells    [9]bool
		expected int
	}{
		// 0-2 is a link, 3 resets, 4-6 is a link, 7-8 never reach three
		{"gap after first link", [9]bool{T, T, T, F, T, T, T, T, T}, 2},
		{"all occupied", [9]bool{T, T, T, T, T, T, T, T, T}, 3},
		{"empty", [9]bool{}, 0},
		{"pairs broken by gaps", [9]bool{T, T, F, T, T, F, T, T, F}, 0},
		{"link straddling grids", [9]bool{F, T, T, T, F, F, F, F, F}, 1},
		{"greedy does not overlap", [9]bool{T, T, T, T, T, F, F, F, F}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreLinks(tt.cells); got != tt.expected {
				t.Errorf("ScoreLinks(%v) = %d, expected %d", tt.cells, got, tt.expected)
			}
		})
	}
}

func fillRow(t *testing.T, grids *[3]Grid, row string) {
	t.Helper()
	items := map[byte]Item{'a': ItemCone, 'b': ItemCube, 'c': ItemCone}
	for i := range grids {
		for _, col := range []byte{'a', 'b', 'c'} {
			if err := grids[i].Place(row, col, items[col]); err != nil {
				t.Fatalf("Place(%s, %c) failed: %v", row, col, err)
			}
		}
	}
}

func TestLinkScoreRowKinds(t *testing.T) {
	var topOnly, midOnly [3]Grid
	fillRow(t, &topOnly, "top")
	fillRow(t, &midOnly, "mid")

	tests := []struct {
		name     string
		grids    *[3]Grid
		legacy   bool
		expected int
	}{
		{"top row, own rows", &topOnly, false, 3},
		{"mid row, own rows", &midOnly, false, 3},
		{"top row, legacy reads top three times", &topOnly, true, 9},
		{"mid row, legacy ignores mid", &midOnly, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linkScore(tt.grids, tt.legacy); got != tt.expected {
				t.Errorf("linkScore() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestGridPlace(t *testing.T) {
	var g Grid

	if err := g.Place("top", 'a', ItemCube); err == nil {
		t.Error("top row column a should reject a cube")
	}
	if err := g.Place("mid", 'b', ItemCone); err == nil {
		t.Error("mid row column b should reject a cone")
	}
	if err := g.Place("low", 'b', ItemCone); err != nil {
		t.Errorf("low row takes any piece: %v", err)
	}
	if err := g.Place("low", 'b', ItemCube); err == nil {
		t.Error("occupied cell should reject a second piece")
	}
	if err := g.Place("side", 'a', ItemCone); err == nil {
		t.Error("unknown row should be rejected")
	}
	if err := g.Place("top", 'z', ItemCone); err == nil {
		t.Error("unknown column should be rejected")
	}
	if g.Low.B != ItemCone {
		t.Errorf("Low.B = %q, expected cone", g.Low.B)
	}
}

func TestStationEngagement(t *testing.T) {
	g := newGame(t, nil)
	station := &arena.Location{LocID: "M"}
	other := &arena.Location{LocID: "A"}

	fs := g.EmptyField()
	fs = g.StepFieldState(fs, 0.1, station)
	if fs.BlueStation.Engaged != 1 {
		t.Fatalf("Engaged = %d after arriving at M, expected 1", fs.BlueStation.Engaged)
	}

	// Latched, not incremented
	for i := 0; i < 5; i++ {
		fs = g.StepFieldState(fs, 0.1, station)
	}
	if fs.BlueStation.Engaged != 1 {
		t.Errorf("Engaged = %d while dwelling, expected 1", fs.BlueStation.Engaged)
	}

	fs = g.StepFieldState(fs, 0.1, nil)
	if fs.BlueStation.Engaged != 0 {
		t.Errorf("Engaged = %d in transit, expected decay to 0", fs.BlueStation.Engaged)
	}
	fs = g.StepFieldState(fs, 0.1, other)
	if fs.BlueStation.Engaged != 0 {
		t.Errorf("Engaged = %d, should not go below 0", fs.BlueStation.Engaged)
	}
	if fs.RedStation.Engaged != 0 {
		t.Error("the other alliance's station must not change")
	}
	if d := fs.Elapsed - 0.8; d > 1e-9 || d < -1e-9 {
		t.Errorf("Elapsed = %v, expected 0.8", fs.Elapsed)
	}
}

func TestStationEngagementRedAlliance(t *testing.T) {
	g := newGame(t, func(c *config.ChargedUpConfig) { c.Alliance = "red" })

	fs := g.StepFieldState(g.EmptyField(), 0.1, &arena.Location{LocID: "M"})
	if fs.RedStation.Engaged != 1 || fs.BlueStation.Engaged != 0 {
		t.Errorf("stations = blue %+v red %+v, expected red engaged", fs.BlueStation, fs.RedStation)
	}
}

func TestBonusWindowSingleClaim(t *testing.T) {
	g := newGame(t, nil)
	fs := g.EmptyField()

	if fs.EndAutoScored || fs.EndGameScored {
		t.Fatal("bonuses must start unclaimed")
	}

	fs.Elapsed = 15 // bounds are exclusive
	fs, award := g.ComputeFieldAward(fs)
	if award != 0 {
		t.Errorf("award at exactly 15s = %v, expected 0", award)
	}

	fs.Elapsed = 16
	fs, award = g.ComputeFieldAward(fs)
	if award != 12 || !fs.EndAutoScored {
		t.Fatalf("award at 16s = %v (scored=%v), expected 12", award, fs.EndAutoScored)
	}

	fs.Elapsed = 17
	fs, award = g.ComputeFieldAward(fs)
	if award != 0 {
		t.Errorf("second frame in window awarded %v, expected 0", award)
	}
	if !fs.EndAutoScored {
		t.Error("EndAutoScored must stay true")
	}

	fs.Elapsed = 151
	fs, award = g.ComputeFieldAward(fs)
	if award != 10 || !fs.EndGameScored {
		t.Errorf("end game award = %v (scored=%v), expected 10", award, fs.EndGameScored)
	}

	fs.Elapsed = 152
	if _, award = g.ComputeFieldAward(fs); award != 0 {
		t.Errorf("end game bonus paid twice: %v", award)
	}
}

func TestScoreStepsSumsAwardsAndLinks(t *testing.T) {
	g := newGame(t, nil)
	fs := g.EmptyField()
	fillRow(t, &fs.BlueGrids, "top")
	fillRow(t, &fs.RedGrids, "mid") // not our alliance

	steps := []sim.Step{{Award: 12}, {Award: 0}, {Award: 5}}
	if got := g.ScoreSteps(fs, steps); got != 20 {
		t.Errorf("ScoreSteps() = %v, expected 17 awards + 3 links", got)
	}
}

func TestPreload(t *testing.T) {
	g := newGame(t, func(c *config.ChargedUpConfig) {
		c.Preload = []config.CellConfig{
			{Grid: 0, Row: "top", Col: "a", Item: "cone"},
			{Grid: 0, Row: "top", Col: "b", Item: "block"},
			{Grid: 0, Row: "top", Col: "c", Item: "cone"},
			{Alliance: "red", Grid: 2, Row: "low", Col: "c", Item: "cube"},
		}
	})

	fs := g.EmptyField()
	if fs.BlueGrids[0].Top.B != ItemCube {
		t.Errorf("Top.B = %q, expected cube", fs.BlueGrids[0].Top.B)
	}
	if fs.RedGrids[2].Low.C != ItemCube {
		t.Errorf("red Low.C = %q, expected cube", fs.RedGrids[2].Low.C)
	}
	if got := g.ScoreSteps(fs, nil); got != 1 {
		t.Errorf("ScoreSteps() = %v, expected one preloaded link", got)
	}

	// Each run starts from an independent copy
	fs.BlueGrids[0].Top.A = ItemNone
	if g.EmptyField().BlueGrids[0].Top.A != ItemCone {
		t.Error("mutating a field state leaked into EmptyField")
	}
}

func TestNewRejectsBadPreload(t *testing.T) {
	tests := []config.CellConfig{
		{Grid: 0, Row: "top", Col: "a", Item: "cube"},
		{Grid: 0, Row: "top", Col: "a", Item: "banana"},
	}
	for _, cell := range tests {
		cfg := config.DefaultChargedUpConfig()
		cfg.Preload = []config.CellConfig{cell}
		if _, err := New(cfg); err == nil {
			t.Errorf("New() accepted preload %+v", cell)
		}
	}
}

func autoLayout() []arena.Location {
	return []arena.Location{
		{LocID: "A", Position: core.P(0, 0), Actions: []arena.GameAction{
			{ActionID: "hold", Reward: 1, Duration: 20},
		}},
		{LocID: "M", Position: core.P(100, 0)},
	}
}

func TestSimulatedRunClaimsEndAutoOnce(t *testing.T) {
	g := newGame(t, nil)
	instrs := []arena.Runnable{arena.Start("A"), arena.Act("hold"), arena.MoveTo("M")}
	cal := core.Calibration{Velocity: 1, XRatio: 100, YRatio: 100}

	res, err := sim.ComputeSteps[FieldState](g, instrs, autoLayout(), cal, 10)
	if err != nil {
		t.Fatalf("ComputeSteps() failed: %v", err)
	}

	bonusFrames := 0
	for _, s := range res.Steps {
		if s.Award == 12 {
			bonusFrames++
		}
	}
	if bonusFrames != 1 {
		t.Errorf("end-auto bonus paid on %d frames, expected 1", bonusFrames)
	}
	if res.Score != 13 {
		t.Errorf("Score = %v, expected bonus 12 + reward 1", res.Score)
	}
	if d := res.ElapsedSeconds - 21; d > 1e-6 || d < -1e-6 {
		t.Errorf("ElapsedSeconds = %v, expected 21", res.ElapsedSeconds)
	}
}

func TestSimulatedRunMissesWindowAtLowRate(t *testing.T) {
	g := newGame(t, nil)
	instrs := []arena.Runnable{arena.Start("A"), arena.Act("hold")}
	cal := core.Calibration{Velocity: 1, XRatio: 100, YRatio: 100}

	// One frame every 5 seconds: 5, 10, 15, 20 never land strictly inside (15, 18)
	res, err := sim.ComputeSteps[FieldState](g, instrs, autoLayout(), cal, 0.2)
	if err != nil {
		t.Fatalf("ComputeSteps() failed: %v", err)
	}
	if res.Score != 1 {
		t.Errorf("Score = %v, expected only the action reward", res.Score)
	}

	// One frame every 4 seconds lands on 16
	res, err = sim.ComputeSteps[FieldState](g, instrs, autoLayout(), cal, 0.25)
	if err != nil {
		t.Fatalf("ComputeSteps() failed: %v", err)
	}
	if res.Score != 13 {
		t.Errorf("Score = %v, expected bonus 12 + reward 1", res.Score)
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("chargedup is not registered")
	}
	e, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if e.Title() != "Charged Up" {
		t.Errorf("Title() = %q", e.Title())
	}

	res, err := e.Simulate([]arena.Runnable{arena.Start("A"), arena.Act("hold")}, autoLayout(),
		core.Calibration{Velocity: 1, XRatio: 1, YRatio: 1}, 10)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if res.Score != 13 {
		t.Errorf("Score = %v, expected 13", res.Score)
	}
}

func TestActionTemplates(t *testing.T) {
	grid := GridColumnActions(ItemCone)
	if len(grid) != 3 || grid[0].ActionID != "place_high" || grid[0].Reward != 5 {
		t.Errorf("GridColumnActions() = %+v", grid)
	}
	if grid[2].Consumes[0].PieceID != "cone" {
		t.Errorf("place_low consumes %+v, expected a cone", grid[2].Consumes)
	}

	zone := LoadingZoneActions()
	if zone[0].Produces[0].PieceID != "cone" || zone[1].Produces[0].PieceID != "cube" {
		t.Errorf("LoadingZoneActions() = %+v", zone)
	}

	l := PreloadLayout()
	x, y := l.Ratios()
	if x <= 0 || y <= 0 || l.GameID != GameID {
		t.Errorf("PreloadLayout() = %+v", l)
	}
}

func TestStarterLayout(t *testing.T) {
	l := StarterLayout("M")
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	g, err := New(config.DefaultChargedUpConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	res, err := sim.ComputeSteps[FieldState](g, l.Instrs, l.Locations, l.Calibration(300), 10)
	if err != nil {
		t.Fatalf("ComputeSteps() failed: %v", err)
	}

	// Only place_high pays; the run ends well before the auto window.
	if res.Score != 5 {
		t.Errorf("Score = %v, expected 5", res.Score)
	}
	last := res.Steps[len(res.Steps)-1].Position
	if !last.SamePoint(core.P(140, 163)) {
		t.Errorf("run ends at %+v, expected the station", last)
	}
}
