package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateHome points the user config lookup at an empty directory so tests
// cannot pick up a developer's real ~/.mathday files.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadBalloonsEmbeddedDefault(t *testing.T) {
	isolateHome(t)
	cfg, err := LoadBalloons("")
	if err != nil {
		t.Fatalf("LoadBalloons failed: %v", err)
	}

	if cfg.Quiz.RoundsToWin != 8 {
		t.Errorf("RoundsToWin = %d, expected 8", cfg.Quiz.RoundsToWin)
	}
	if cfg.Quiz.MaxMistakes != 3 {
		t.Errorf("MaxMistakes = %d, expected 3", cfg.Quiz.MaxMistakes)
	}
	if cfg.Quiz.ChoiceCount != 4 {
		t.Errorf("ChoiceCount = %d, expected 4", cfg.Quiz.ChoiceCount)
	}
	if cfg.Physics.RiseSpeed <= 0 {
		t.Errorf("RiseSpeed = %f, expected positive", cfg.Physics.RiseSpeed)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("difficulty should be enabled by default")
	}
}

func TestLoadParcelsEmbeddedDefault(t *testing.T) {
	isolateHome(t)
	cfg, err := LoadParcels("")
	if err != nil {
		t.Fatalf("LoadParcels failed: %v", err)
	}

	if cfg.Physics.FallSpeedMin <= 0 || cfg.Physics.FallSpeedMax < cfg.Physics.FallSpeedMin {
		t.Errorf("fall speed range [%f, %f] is invalid", cfg.Physics.FallSpeedMin, cfg.Physics.FallSpeedMax)
	}
	if cfg.Physics.DroneDamping <= 0 || cfg.Physics.DroneDamping >= 1 {
		t.Errorf("DroneDamping = %f, expected in (0, 1)", cfg.Physics.DroneDamping)
	}
}

func TestLoadPowercellsEmbeddedDefault(t *testing.T) {
	isolateHome(t)
	cfg, err := LoadPowercells("")
	if err != nil {
		t.Fatalf("LoadPowercells failed: %v", err)
	}

	if cfg.Tokens.Count != 6 {
		t.Errorf("Tokens.Count = %d, expected 6", cfg.Tokens.Count)
	}
	if cfg.Tokens.MinParts > cfg.Tokens.MaxParts {
		t.Errorf("parts range [%d, %d] is invalid", cfg.Tokens.MinParts, cfg.Tokens.MaxParts)
	}
	if cfg.Tokens.MaxAddend < 1 || cfg.Tokens.MaxAddend > 9 {
		t.Errorf("MaxAddend = %d, expected single digit", cfg.Tokens.MaxAddend)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolateHome(t)
	// The YAML files and the hardcoded fallbacks must agree on the values
	// that decide win/lose
	cfg, _ := LoadBalloons("")
	hard := DefaultBalloonsConfig()
	if cfg.Quiz.RoundsToWin != hard.Quiz.RoundsToWin || cfg.Quiz.MaxMistakes != hard.Quiz.MaxMistakes {
		t.Errorf("embedded balloons quiz %+v drifted from hardcoded %+v", cfg.Quiz, hard.Quiz)
	}

	pcfg, _ := LoadPowercells("")
	phard := DefaultPowercellsConfig()
	if pcfg.Tokens != phard.Tokens {
		t.Errorf("embedded powercells tokens %+v drifted from hardcoded %+v", pcfg.Tokens, phard.Tokens)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("quiz:\n  rounds_to_win: 3\n  max_mistakes: 1\nphysics:\n  rise_speed: 9.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadBalloons(path)
	if err != nil {
		t.Fatalf("LoadBalloons(custom) failed: %v", err)
	}
	if cfg.Quiz.RoundsToWin != 3 {
		t.Errorf("RoundsToWin = %d, expected 3 from custom file", cfg.Quiz.RoundsToWin)
	}
	if cfg.Physics.RiseSpeed != 9.5 {
		t.Errorf("RiseSpeed = %f, expected 9.5 from custom file", cfg.Physics.RiseSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadBalloons("/nonexistent/path.yaml"); err == nil {
		t.Error("missing custom config should return an error")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("quiz: [not a map"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := LoadParcels(path); err == nil {
		t.Error("malformed custom config should return an error")
	}
}

func TestApplyPresets(t *testing.T) {
	cfg := DefaultBalloonsConfig()
	ApplyBalloonsPreset(&cfg, DifficultyEasy)
	if cfg.Quiz.MaxMistakes != 5 {
		t.Errorf("easy preset MaxMistakes = %d, expected 5", cfg.Quiz.MaxMistakes)
	}
	if cfg.Difficulty.InitialLevel != 0.0 {
		t.Errorf("easy preset InitialLevel = %f, expected 0", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultBalloonsConfig()
	ApplyBalloonsPreset(&cfg, DifficultyHard)
	if cfg.Quiz.MaxMistakes != 2 {
		t.Errorf("hard preset MaxMistakes = %d, expected 2", cfg.Quiz.MaxMistakes)
	}
	if len(cfg.Quiz.Ops) != 3 {
		t.Errorf("hard preset should enable multiplication, ops = %v", cfg.Quiz.Ops)
	}

	cfg = DefaultBalloonsConfig()
	ApplyBalloonsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	pcfg := DefaultPowercellsConfig()
	ApplyPowercellsPreset(&pcfg, DifficultyHard)
	if pcfg.Tokens.MinParts != 3 {
		t.Errorf("hard powercells MinParts = %d, expected 3", pcfg.Tokens.MinParts)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level at score 0 = %f, expected 0", lvl)
	}
	if lvl := d.Level(5, 0); lvl != 0.5 {
		t.Errorf("Level at score 5 = %f, expected 0.5", lvl)
	}
	if lvl := d.Level(10, 0); lvl != 1.0 {
		t.Errorf("Level at score 10 = %f, expected 1", lvl)
	}
	if lvl := d.Level(99, 0); lvl != 1.0 {
		t.Errorf("Level past max = %f, expected clamp at 1", lvl)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	}
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(100, 100); lvl != 0.4 {
		t.Errorf("disabled difficulty Level = %f, expected initial 0.4", lvl)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled should report false")
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	if sp := d.Speed(2.0, 0, 0); sp != 2.0 {
		t.Errorf("Speed at level 0 = %f, expected base 2.0", sp)
	}
	if sp := d.Speed(2.0, 10, 0); sp != 4.0 {
		t.Errorf("Speed at max level = %f, expected 4.0", sp)
	}
}

func TestDifficultyOperands(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	}
	d := NewDifficultyManager(cfg)

	if op := d.Operands(10, 20, 0, 0); op != 10 {
		t.Errorf("Operands at level 0 = %d, expected 10", op)
	}
	if op := d.Operands(10, 20, 5, 0); op != 15 {
		t.Errorf("Operands at level 0.5 = %d, expected 15", op)
	}
	if op := d.Operands(10, 20, 10, 0); op != 20 {
		t.Errorf("Operands at max level = %d, expected 20", op)
	}

	// Inverted range clamps to start
	if op := d.Operands(10, 5, 10, 0); op != 10 {
		t.Errorf("inverted range Operands = %d, expected 10", op)
	}
}

func TestInitialLevelForPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyFixed, 0.0},
	}

	for _, tc := range tests {
		if got := InitialLevelForPreset(tc.preset); got != tc.expected {
			t.Errorf("InitialLevelForPreset(%s) = %f, expected %f", tc.preset, got, tc.expected)
		}
	}

	if !IsFixedPreset(DifficultyFixed) {
		t.Error("IsFixedPreset(fixed) should be true")
	}
	if IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset(easy) should be false")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"balloons", "parcels", "powercells"} {
		if data := GetDefaultYAML(id); len(data) == 0 {
			t.Errorf("GetDefaultYAML(%q) returned empty", id)
		}
	}
	if data := GetDefaultYAML("unknown"); data != nil {
		t.Error("GetDefaultYAML(unknown) should return nil")
	}
}
