// xmas runs the daily grid puzzle solvers from the terminal.
//
// Usage:
//
//	xmas list               - List registered puzzles and their inputs
//	xmas solve <day>        - Solve a puzzle and store the answers
//	xmas answers [day]      - Show answer history
//	xmas grid <file>        - Parse and re-render a grid file
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.xmas and ./configs)
//	--db <path>      - Answer database (default: ~/.xmas/answers.db)
//	--inputs <dir>   - Input directory (default: ./inputs)
//	--verbose        - Debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/xmas/internal/config"

	// Import days to register them
	_ "github.com/vovakirdan/xmas/internal/days/day01"
	_ "github.com/vovakirdan/xmas/internal/days/day02"
	_ "github.com/vovakirdan/xmas/internal/days/day03"
	_ "github.com/vovakirdan/xmas/internal/days/day04"
	_ "github.com/vovakirdan/xmas/internal/days/day05"
	_ "github.com/vovakirdan/xmas/internal/days/day06"
	_ "github.com/vovakirdan/xmas/internal/days/day07"
	_ "github.com/vovakirdan/xmas/internal/days/day08"
	_ "github.com/vovakirdan/xmas/internal/days/day09"
	_ "github.com/vovakirdan/xmas/internal/days/day10"
	_ "github.com/vovakirdan/xmas/internal/days/day11"
	_ "github.com/vovakirdan/xmas/internal/days/day12"
	_ "github.com/vovakirdan/xmas/internal/days/day13"
	_ "github.com/vovakirdan/xmas/internal/days/day14"
	_ "github.com/vovakirdan/xmas/internal/days/day15"
	_ "github.com/vovakirdan/xmas/internal/days/day16"
	_ "github.com/vovakirdan/xmas/internal/days/day17"
	_ "github.com/vovakirdan/xmas/internal/days/day18"
	_ "github.com/vovakirdan/xmas/internal/days/day19"
	_ "github.com/vovakirdan/xmas/internal/days/day20"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagInputs  string
	flagVerbose bool

	// Resolved in the root pre-run hook
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xmas",
	Short: "xmas - grid puzzle solvers in your terminal",
	Long: `xmas runs a collection of daily grid puzzle solvers built on a shared
2D grid toolkit, and keeps a history of the answers it produced.

Available commands:
  list     - Show registered puzzles
  solve    - Solve a puzzle
  answers  - View answer history
  grid     - Check a grid file

Examples:
  xmas list
  xmas solve 6
  xmas solve day16 --sample
  xmas answers 6
  xmas grid inputs/day06.txt`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.xmas/answers.db", "Path to answer database")
	rootCmd.PersistentFlags().StringVar(&flagInputs, "inputs", "./inputs", "Directory holding puzzle inputs")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(answersCmd)
	rootCmd.AddCommand(gridCmd)
}

// setup loads the configuration and builds the logger. Explicit flags win
// over config file values.
func setup(cmd *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "xmas",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("db") || cfg.Storage.Path == "" {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("inputs") || cfg.Inputs.Dir == "" {
		cfg.Inputs.Dir = flagInputs
	}
	if cfg.Inputs.Dir, err = config.ExpandHome(cfg.Inputs.Dir); err != nil {
		return err
	}
	appConfig = cfg

	logger.Debug("config loaded", "inputs", cfg.Inputs.Dir, "db", cfg.Storage.Path)
	return nil
}
