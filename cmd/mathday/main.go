// mathday is a terminal arcade of arithmetic mini-games for kids.
//
// Usage:
//
//	mathday list              - List available games
//	mathday play <game>       - Play a game
//	mathday daily             - Play the game of the day
//	mathday menu              - Start menu to pick games interactively
//	mathday serve             - Start SSH server for remote play
//	mathday scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mathday/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/kbo4sho/mathday/internal/games/balloons"
	_ "github.com/kbo4sho/mathday/internal/games/parcels"
	_ "github.com/kbo4sho/mathday/internal/games/powercells"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathday",
	Short: "Math Day - Arithmetic mini-games in your terminal",
	Long: `Math Day is a terminal arcade of small arithmetic games for kids:
solve the problem, then pop, catch, or assemble the right answer.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  daily    - Play the game of the day (same for everyone)
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  mathday list
  mathday play balloons
  mathday daily
  mathday menu
  mathday serve --ssh :2222
  mathday scores balloons`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mathday/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
