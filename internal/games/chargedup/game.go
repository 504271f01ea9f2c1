// Package chargedup scores runs for the Charged Up game: three-cell links on
// the alliance's scoring grids plus one-shot bonuses for being on the field
// at the end of autonomous and at the end of the match.
package chargedup

import (
	"fmt"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/config"
	"github.com/vovakirdan/arena-planner/internal/registry"
	"github.com/vovakirdan/arena-planner/internal/sim"
)

// GameID is the registry key of this engine.
const GameID = "chargedup"

// configPath is the custom config path set by the CLI (--config flag).
var configPath string

// SetConfigPath sets a custom config file path for engines created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(GameID, func() registry.Engine {
		cfg, err := config.LoadChargedUp(configPath)
		if err != nil {
			cfg = config.DefaultChargedUpConfig()
		}
		g, err := New(cfg)
		if err != nil {
			// The hardcoded defaults always validate.
			g, err = New(config.DefaultChargedUpConfig())
			if err != nil {
				panic(err)
			}
		}
		return sim.Bind[FieldState](g)
	})
}

// Game implements sim.Game for Charged Up.
type Game struct {
	cfg     config.ChargedUpConfig
	initial FieldState
}

var _ sim.Game[FieldState] = (*Game)(nil)

// New creates an engine from cfg, placing any preloaded pieces.
func New(cfg config.ChargedUpConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chargedup: %w", err)
	}

	g := &Game{cfg: cfg}
	for i, cell := range cfg.Preload {
		item, ok := ParseItem(cell.Item)
		if !ok {
			return nil, fmt.Errorf("chargedup: preload %d: unknown item %q", i, cell.Item)
		}
		alliance := cell.Alliance
		if alliance == "" {
			alliance = cfg.Alliance
		}
		grids := g.initial.Grids(alliance)
		if err := grids[cell.Grid].Place(cell.Row, cell.Col[0], item); err != nil {
			return nil, fmt.Errorf("preload %d: %w", i, err)
		}
	}
	return g, nil
}

// ID returns the unique identifier for this engine.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this engine.
func (g *Game) Title() string {
	return "Charged Up"
}

// EmptyField returns the field at the start of a run: preloaded pieces, an
// idle station and both bonuses unclaimed.
func (g *Game) EmptyField() FieldState {
	return g.initial
}

// StepFieldState advances the clock. While the robot sits on the charge
// station its station is engaged; elsewhere engagement decays one unit per step.
func (g *Game) StepFieldState(fs FieldState, stepSeconds float64, loc *arena.Location) FieldState {
	fs.Elapsed += stepSeconds

	st := fs.Station(g.cfg.Alliance)
	if loc != nil && loc.LocID == g.cfg.StationLocID {
		if st.Engaged == 0 {
			st.Engaged = 1
		}
	} else if st.Engaged > 0 {
		st.Engaged--
	}
	return fs
}

// ComputeFieldAward pays each bonus window once, on the first frame that
// lands strictly inside it.
func (g *Game) ComputeFieldAward(fs FieldState) (FieldState, float64) {
	switch {
	case !fs.EndAutoScored && g.cfg.EndAuto.Contains(fs.Elapsed):
		fs.EndAutoScored = true
		return fs, g.cfg.EndAuto.Points
	case !fs.EndGameScored && g.cfg.EndGame.Contains(fs.Elapsed):
		fs.EndGameScored = true
		return fs, g.cfg.EndGame.Points
	default:
		return fs, 0
	}
}

// ScoreSteps totals the frame awards and adds the alliance's link score.
func (g *Game) ScoreSteps(fs FieldState, steps []sim.Step) float64 {
	total := 0.0
	for _, s := range steps {
		total += s.Award
	}
	return total + float64(linkScore(fs.Grids(g.cfg.Alliance), g.cfg.LegacyRowLinks))
}
