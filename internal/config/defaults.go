package config

import (
	_ "embed"
)

//go:embed defaults/planner.yaml
var defaultPlannerYAML []byte

//go:embed defaults/chargedup.yaml
var defaultChargedUpYAML []byte

// DefaultPlannerConfig returns the default planner configuration.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		Robot: RobotConfig{
			Velocity: 3.0,
		},
		Simulation: SimulationConfig{
			AnimationRate: 30,
			DefaultGame:   "chargedup",
		},
		Playback: PlaybackConfig{
			FPS:   30,
			Speed: 1.0,
		},
		Storage: StorageConfig{
			DBPath: "~/.planner/runs.db",
		},
	}
}

// DefaultChargedUpConfig returns the default ChargedUp configuration.
func DefaultChargedUpConfig() ChargedUpConfig {
	return ChargedUpConfig{
		Alliance:     "blue",
		StationLocID: "M",
		EndAuto: AwardWindow{
			Start:  15,
			End:    18,
			Points: 12,
		},
		EndGame: AwardWindow{
			Start:  150,
			End:    153,
			Points: 10,
		},
	}
}
