// luckie is a terminal side-scrolling runner with turn-based battles.
//
// Usage:
//
//	luckie play              - Start a run
//	luckie stats             - Show recorded run statistics
//	luckie serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.luckie/stats.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "luckie",
	Short: "Luckie Runner - run, jump and fight in your terminal",
	Long: `Luckie Runner is a terminal side-scrolling runner. Luckie auto-runs
through the level collecting coins, jumping obstacles and fighting
turn-based battles in trigger zones.

Available commands:
  play     - Start a run
  stats    - View recorded run statistics
  serve    - Start SSH server for remote play

Examples:
  luckie play
  luckie play --seed 42
  luckie stats
  luckie serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.luckie/stats.db", "Path to stats database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
