package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game on the title menu.

Controls:
  Arrows/WASD  - Move, pick a menu option
  Space        - Fire; continue from the result screen
  Enter        - Select
  Esc/Ctrl+C   - Quit

The terminal is used for drawing, so logs go to --log-file when set.

Examples:
  stg play
  stg play --seed 42 --log-file stg.log --log-level debug
  stg play --config ./my-stg.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// The root command plays too, so it takes the same flag.
	for _, c := range []*cobra.Command{playCmd, rootCmd} {
		c.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "stg")
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil { //#nosec G115 -- fd fits in int
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.TickRate
	rt.Seed = flagSeed

	logger.Info("starting game", "tick_rate", rt.TickRate, "seed", rt.Seed, "cull_offscreen", cfg.CullOffscreen)
	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
