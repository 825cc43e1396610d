package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/platform/tui"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded run statistics",
	Long: `Display the best recorded runs and the battle outcome tally.

Examples:
  luckie stats
  luckie stats --db ./stats.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}
