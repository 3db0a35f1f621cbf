package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start an endless run.

Controls:
  Space/Up/W - Jump (again in the air for double jump)
  Down/S     - Slide under flying obstacles
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at the lowest difficulty, progresses to max
  normal - Start slightly ramped, progresses to max
  hard   - Start well into the ramp, progresses to max
  fixed  - No progression, stays at the config's initial level

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42 --mute
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyRunnerPreset(&runnerCfg, config.DifficultyPreset(flagDifficulty))
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	deps := runner.Deps{Assets: assets.Load()}
	if store != nil {
		deps.Store = store
	}

	var engine *audio.Engine
	if !flagMute {
		engine = audio.NewEngine()
		if audioErr := engine.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		}
		deps.Audio = engine
	}

	game := runner.New(runnerCfg, deps)
	runErr := tui.Run(game, rt)

	if engine != nil {
		engine.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
