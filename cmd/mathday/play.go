package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kbo4sho/mathday/internal/audio"
	"github.com/kbo4sho/mathday/internal/core"
	"github.com/kbo4sho/mathday/internal/games/balloons"
	"github.com/kbo4sho/mathday/internal/games/parcels"
	"github.com/kbo4sho/mathday/internal/games/powercells"
	"github.com/kbo4sho/mathday/internal/platform/tui"
	"github.com/kbo4sho/mathday/internal/registry"
	"github.com/kbo4sho/mathday/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move / aim
  Enter/Space  - Confirm the selected answer
  1-4          - Pick an answer slot directly
  M            - Toggle sound
  P            - Pause
  R            - Restart (after the end screen)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Smaller numbers, more lives, slower targets
  normal - The default ramp
  hard   - Bigger numbers, fewer lives, faster targets
  fixed  - No progression, stays at the starting level

Examples:
  mathday play balloons
  mathday play parcels --difficulty easy
  mathday play powercells --difficulty hard
  mathday play balloons --config ./my-balloons.yaml
  mathday play parcels --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

// terminalSize probes the real terminal, falling back to 80x24 when the
// size cannot be read (pipes, dumb terminals).
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// newEngine opens the audio device and applies the mute flag. A machine
// with no sound hardware still gets a working (silent) engine.
func newEngine(mute bool) *audio.Engine {
	engine := audio.NewEngine()
	if err := engine.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", err)
	}
	if mute {
		engine.SetMuted(true)
	}
	return engine
}

// applyGameFlags points the selected game at the custom config and
// difficulty preset before it is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "balloons":
		balloons.SetConfigPath(flagConfig)
		balloons.SetDifficultyPreset(flagDifficulty)
	case "parcels":
		parcels.SetConfigPath(flagConfig)
		parcels.SetDifficultyPreset(flagDifficulty)
	case "powercells":
		powercells.SetConfigPath(flagConfig)
		powercells.SetDifficultyPreset(flagDifficulty)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mathday list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	engine := newEngine(flagMute)

	// Run the game
	runErr := tui.Run(game, store, engine, cfg)

	// Release the audio device and store before potential exit
	engine.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
