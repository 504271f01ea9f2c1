// Package config provides YAML-based configuration loading for the planner
// and its game engines.
package config

// PlannerConfig contains the defaults used when planning and simulating runs.
type PlannerConfig struct {
	Robot      RobotConfig      `yaml:"robot"`
	Simulation SimulationConfig `yaml:"simulation"`
	Playback   PlaybackConfig   `yaml:"playback"`
	Storage    StorageConfig    `yaml:"storage"`
}

// RobotConfig describes the robot being planned for.
type RobotConfig struct {
	Velocity float64 `yaml:"velocity"` // real-world units per second
}

// SimulationConfig controls trajectory sampling.
type SimulationConfig struct {
	AnimationRate float64 `yaml:"animation_rate"` // frames per simulated second
	DefaultGame   string  `yaml:"default_game"`
}

// PlaybackConfig controls the terminal playback viewer.
type PlaybackConfig struct {
	FPS   int     `yaml:"fps"`   // redraws per wall-clock second
	Speed float64 `yaml:"speed"` // playback speed multiplier
}

// StorageConfig locates the run database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ChargedUpConfig contains all configuration for the ChargedUp engine.
type ChargedUpConfig struct {
	Alliance       string       `yaml:"alliance"`       // "blue" or "red"
	StationLocID   string       `yaml:"station_loc_id"` // location id of the charge station
	EndAuto        AwardWindow  `yaml:"end_auto"`
	EndGame        AwardWindow  `yaml:"end_game"`
	LegacyRowLinks bool         `yaml:"legacy_row_links"` // score mid/low links from the top row
	Preload        []CellConfig `yaml:"preload"`
}

// AwardWindow is an open interval of simulated time that pays out once.
type AwardWindow struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Points float64 `yaml:"points"`
}

// Contains reports whether t lies strictly inside the window.
func (w AwardWindow) Contains(t float64) bool {
	return t > w.Start && t < w.End
}

// CellConfig places a game piece in a grid cell before the run starts.
type CellConfig struct {
	Alliance string `yaml:"alliance"`
	Grid     int    `yaml:"grid"` // 0-2
	Row      string `yaml:"row"`  // top, mid, low
	Col      string `yaml:"col"`  // a, b, c
	Item     string `yaml:"item"` // cone, cube
}
