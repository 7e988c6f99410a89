// tetris is a falling-block puzzle for the terminal and the desktop.
//
// Usage:
//
//	tetris                   - Play in the terminal
//	tetris play [game]       - Play in the terminal
//	tetris window            - Play in a desktop window (needs -tags ebiten)
//	tetris list              - List available games
//	tetris config            - Print the default or resolved configuration
//
// Global flags:
//
//	--fps <rate>           - Simulation tick rate (default: 60)
//	--seed <value>         - RNG seed for reproducible piece order
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn, error
//	--log-file <path>      - Write logs to a file (the terminal UI owns stderr)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured in PersistentPreRunE; logFile is closed on exit.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle for your terminal",
	Long: `Stack the falling pieces, complete rows, and keep the top row clear.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  list     - Show all available games
  config   - Print configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris window --seed 42
  tetris config > ~/.arcade/configs/tetris.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags, builds the logger and hands config choices
// to the game package before any game is created.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(string(preset))
	return nil
}

// loadConfig resolves the effective configuration the way the game does,
// but surfaces errors from a custom --config instead of falling back.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	return cfg, nil
}
