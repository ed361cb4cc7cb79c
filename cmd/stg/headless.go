package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stg/internal/headless"
)

var (
	flagTicks    int
	flagRuns     int
	flagSeedStep int64
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation with a scripted bot",
	Long: `Run the simulation without a terminal UI.

A seeded bot starts sessions, steers and fires; every run prints its
statistics and the final snapshot hash. Equal seeds give equal hashes.

Examples:
  stg headless
  stg headless --ticks 36000 --runs 10 --seed 42
  stg headless --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Ticks per run")
	headlessCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	headlessCmd.Flags().Int64Var(&flagSeedStep, "seed-step", 1, "Seed increment between runs")
}

func runHeadless(_ *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be > 0, got %d", flagTicks)
	}
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be > 0, got %d", flagRuns)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "stg-headless")
	if err != nil {
		return err
	}

	seedBase := flagSeed
	if seedBase == 0 {
		seedBase = 1
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RUN", "SEED", "TICKS", "SESSIONS", "DEATHS", "KILLS", "HITS", "BEST", "PEAK", "HASH")

	for i := range flagRuns {
		seed := seedBase + int64(i)*flagSeedStep
		s := headless.Run(cfg, i+1, seed, flagTicks, logger)
		tbl.Row(
			strconv.Itoa(s.Run),
			strconv.FormatInt(s.Seed, 10),
			strconv.Itoa(s.Ticks),
			strconv.Itoa(s.Sessions),
			strconv.Itoa(s.Deaths),
			strconv.Itoa(s.Kills),
			strconv.Itoa(s.Hits),
			strconv.Itoa(s.BestScore),
			strconv.Itoa(s.PeakEntities),
			fmt.Sprintf("%016x", s.Hash),
		)
	}

	fmt.Println(tbl.Render())
	return nil
}
