package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/config"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/platform/tui"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/storage"
)

var (
	flagConfig string
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run in the terminal.

Controls:
  Space/Up   - Jump
  E/Enter    - Interact (attack in battle, confirm)
  Esc        - Pause / flee battle / skip cutscene
  P          - Pause
  Q/Ctrl+C   - Quit

Examples:
  luckie play
  luckie play --seed 42
  luckie play --config ./my-game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.luckie/luckie.log")
}

func runPlay(cmd *cobra.Command, args []string) {
	game, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Best-effort storage; the run works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
		store = nil
	}

	logger := openLogger()

	runErr := tui.Run(rt, game, store, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file-backed debug logger when --debug is set. Logging
// to the terminal would tear the alternate screen, so logs go to a file.
func openLogger() *log.Logger {
	if !flagDebug {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".luckie")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}

	f, err := os.OpenFile(filepath.Join(dir, "luckie.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "luckie",
	})
	logger.SetLevel(log.DebugLevel)
	return logger
}
