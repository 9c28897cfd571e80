// Package config provides YAML-based game configuration loading and
// difficulty management for the math games.
package config

// QuizConfig contains the arithmetic settings shared by every game.
type QuizConfig struct {
	RoundsToWin  int      `yaml:"rounds_to_win"` // Correct answers needed to win
	MaxMistakes  int      `yaml:"max_mistakes"`  // Wrong answers allowed before losing
	ChoiceCount  int      `yaml:"choice_count"`  // Answers offered per round
	OperandStart int      `yaml:"operand_start"` // Max operand at difficulty 0
	OperandEnd   int      `yaml:"operand_end"`   // Max operand at difficulty 1
	Ops          []string `yaml:"ops"`           // Operators: "+", "-", "x"
}

// TimingConfig controls round pacing, in seconds.
type TimingConfig struct {
	RoundPause float64 `yaml:"round_pause"` // Delay between answering and the next round
	Feedback   float64 `yaml:"feedback"`    // How long correct/incorrect feedback stays up
}

// BalloonsConfig contains all configuration for the Balloon Pop game.
type BalloonsConfig struct {
	Quiz       QuizConfig       `yaml:"quiz"`
	Physics    BalloonsPhysics  `yaml:"physics"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BalloonsPhysics defines movement parameters for Balloon Pop.
type BalloonsPhysics struct {
	RiseSpeed  float64 `yaml:"rise_speed"`  // Cells per second upward
	WobbleAmp  float64 `yaml:"wobble_amp"`  // Horizontal wobble amplitude in cells
	WobbleFreq float64 `yaml:"wobble_freq"` // Wobble cycles per second
}

// ParcelsConfig contains all configuration for the Parcel Drop game.
type ParcelsConfig struct {
	Quiz       QuizConfig       `yaml:"quiz"`
	Physics    ParcelsPhysics   `yaml:"physics"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ParcelsPhysics defines movement parameters for Parcel Drop.
type ParcelsPhysics struct {
	FallSpeedMin  float64 `yaml:"fall_speed_min"` // Slowest parcel, cells per second
	FallSpeedMax  float64 `yaml:"fall_speed_max"` // Fastest parcel, cells per second
	SwayAmp       float64 `yaml:"sway_amp"`       // Horizontal sway amplitude in cells
	DroneAccel    float64 `yaml:"drone_accel"`    // Acceleration while a key is held
	DroneDamping  float64 `yaml:"drone_damping"`  // Velocity retained per tick, 0..1
	DroneMaxSpeed float64 `yaml:"drone_max_speed"`
}

// PowercellsConfig contains all configuration for the Power Cells game.
type PowercellsConfig struct {
	Quiz       QuizConfig       `yaml:"quiz"` // ChoiceCount unused; see Tokens
	Tokens     TokensConfig     `yaml:"tokens"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TokensConfig shapes the sum-building puzzles in Power Cells.
type TokensConfig struct {
	Count     int `yaml:"count"`      // Cells on the shelf
	MinParts  int `yaml:"min_parts"`  // Fewest addends in the guaranteed solution
	MaxParts  int `yaml:"max_parts"`  // Most addends in the guaranteed solution
	MaxAddend int `yaml:"max_addend"` // Largest value on any cell
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes. Operand growth
// is driven separately by QuizConfig.OperandStart/OperandEnd.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to entity speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
