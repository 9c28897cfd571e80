package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbo4sho/mathday/internal/core"
	"github.com/kbo4sho/mathday/internal/daily"
	"github.com/kbo4sho/mathday/internal/platform/tui"
	"github.com/kbo4sho/mathday/internal/registry"
	"github.com/kbo4sho/mathday/internal/storage"
)

var (
	flagDate         string
	flagDailyMute    bool
	flagDailyHistory bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Play the game of the day",
	Long: `Play today's game. Which game comes up and which questions it asks
are derived from the date, so everyone who plays on the same day gets the
same challenge. Your best score per day is recorded.

Examples:
  mathday daily
  mathday daily --date 2026-03-14    # replay an earlier day's challenge
  mathday daily --history            # show recent daily results
  mathday daily --mute`,
	Run: runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&flagDate, "date", "", "Play a specific day's challenge (YYYY-MM-DD, default today)")
	dailyCmd.Flags().BoolVar(&flagDailyMute, "mute", false, "Start with sound off")
	dailyCmd.Flags().BoolVar(&flagDailyHistory, "history", false, "Show recent daily results instead of playing")
}

func runDaily(cmd *cobra.Command, args []string) {
	if flagDailyHistory {
		showDailyHistory()
		return
	}

	day := daily.Today()
	if flagDate != "" {
		parsed, err := daily.Parse(flagDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		day = parsed
	}

	games := registry.List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}

	gameID := daily.Pick(day, ids)
	if gameID == "" {
		fmt.Fprintln(os.Stderr, "Error: no games registered")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()

	// The seed comes from the date, never from --seed: the daily challenge
	// has to be identical for everyone.
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     daily.Seed(day),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	engine := newEngine(flagDailyMute)

	runErr := tui.RunDaily(game, store, engine, cfg, day)

	engine.Close()

	if runErr == nil && store != nil {
		if best, bestErr := store.DailyBest(day); bestErr == nil && best != nil {
			fmt.Printf("Daily %s (%s) - your best today: %d\n", day, game.Title(), best.Score)
		}
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// showDailyHistory prints the best attempt per played day, newest first.
func showDailyHistory() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.RecentDailyBests(14)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving daily results: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No daily games played yet.")
		fmt.Println()
		fmt.Println("Run 'mathday daily' to play today's challenge.")
		return
	}

	fmt.Println("Recent daily results:")
	fmt.Println()
	fmt.Printf("  %-12s  %-12s  %s\n", "Day", "Game", "Best")
	fmt.Printf("  %-12s  %-12s  %s\n", "---", "----", "----")
	for _, r := range results {
		fmt.Printf("  %-12s  %-12s  %d\n", r.Day, r.GameID, r.Score)
	}
}
