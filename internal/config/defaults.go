package config

import (
	_ "embed"
)

//go:embed defaults/balloons.yaml
var defaultBalloonsYAML []byte

//go:embed defaults/parcels.yaml
var defaultParcelsYAML []byte

//go:embed defaults/powercells.yaml
var defaultPowercellsYAML []byte

// DefaultBalloonsConfig returns the default Balloon Pop configuration.
func DefaultBalloonsConfig() BalloonsConfig {
	return BalloonsConfig{
		Quiz: QuizConfig{
			RoundsToWin:  8,
			MaxMistakes:  3,
			ChoiceCount:  4,
			OperandStart: 10,
			OperandEnd:   20,
			Ops:          []string{"+", "-"},
		},
		Physics: BalloonsPhysics{
			RiseSpeed:  1.6,
			WobbleAmp:  1.4,
			WobbleFreq: 0.4,
		},
		Timing: TimingConfig{
			RoundPause: 0.9,
			Feedback:   1.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultParcelsConfig returns the default Parcel Drop configuration.
func DefaultParcelsConfig() ParcelsConfig {
	return ParcelsConfig{
		Quiz: QuizConfig{
			RoundsToWin:  8,
			MaxMistakes:  3,
			ChoiceCount:  3,
			OperandStart: 10,
			OperandEnd:   18,
			Ops:          []string{"+", "-"},
		},
		Physics: ParcelsPhysics{
			FallSpeedMin:  1.2,
			FallSpeedMax:  2.4,
			SwayAmp:       1.8,
			DroneAccel:    140,
			DroneDamping:  0.9,
			DroneMaxSpeed: 26,
		},
		Timing: TimingConfig{
			RoundPause: 0.9,
			Feedback:   1.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.9,
			},
		},
	}
}

// DefaultPowercellsConfig returns the default Power Cells configuration.
func DefaultPowercellsConfig() PowercellsConfig {
	return PowercellsConfig{
		Quiz: QuizConfig{
			RoundsToWin: 6,
			MaxMistakes: 3,
		},
		Tokens: TokensConfig{
			Count:     6,
			MinParts:  2,
			MaxParts:  3,
			MaxAddend: 9,
		},
		Timing: TimingConfig{
			RoundPause: 1.0,
			Feedback:   1.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 6,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "balloons":
		return defaultBalloonsYAML
	case "parcels":
		return defaultParcelsYAML
	case "powercells":
		return defaultPowercellsYAML
	default:
		return nil
	}
}
