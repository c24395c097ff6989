package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/xmas/internal/config"
	"github.com/vovakirdan/xmas/internal/inputs"
	"github.com/vovakirdan/xmas/internal/registry"
	"github.com/vovakirdan/xmas/internal/storage"
)

var (
	flagPart   int
	flagInput  string
	flagSample bool
	flagNoSave bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <day>",
	Short: "Solve a puzzle",
	Long: `Solve one or both parts of a puzzle and print the answers.

The day may be given as 6, 06 or day06. The input is read from the inputs
directory (dayNN.txt or dayNN/input.txt) unless --input names a file.

With --sample the published sample input (dayNN.sample.txt) is used together
with the sample-sized parameters, and answers are not stored.

Examples:
  xmas solve 6
  xmas solve day16 --part 2
  xmas solve 14 --sample
  xmas solve 18 --input ./my18.txt --no-save`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&flagPart, "part", "p", 0, "Solve only this part (1 or 2)")
	solveCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Read the input from this file")
	solveCmd.Flags().BoolVar(&flagSample, "sample", false, "Use the sample input and parameters")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the answers")
}

// partResult is the outcome of one solved part.
type partResult struct {
	Part     int
	Answer   registry.Answer
	Duration time.Duration
	Previous string // last stored answer for the part, empty when none
}

// Changed reports whether a stored answer exists and differs from this one.
func (r partResult) Changed() bool {
	return r.Previous != "" && r.Previous != r.Answer.String()
}

func runSolve(cmd *cobra.Command, args []string) error {
	puzzle, err := registry.Lookup(args[0])
	if err != nil {
		return err
	}

	parts := []int{1, 2}
	if flagPart != 0 {
		if flagPart != 1 && flagPart != 2 {
			return fmt.Errorf("%w: %d", registry.ErrUnknownPart, flagPart)
		}
		parts = []int{flagPart}
	}

	cfg := appConfig
	kind := inputs.Real
	if flagSample {
		config.ApplySample(&cfg)
		kind = inputs.Sample
	}

	text, err := readInput(puzzle.Day(), kind)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With("puzzle", puzzle.ID(), "run", runID[:8])

	results := make([]partResult, 0, len(parts))
	for _, part := range parts {
		start := time.Now()
		answer, err := puzzle.Solve(cmd.Context(), part, registry.Input{
			Text:   text,
			Config: cfg.Days,
			Log:    log.With("part", part),
		})
		if err != nil {
			return fmt.Errorf("%s part %d: %w", puzzle.ID(), part, err)
		}
		elapsed := time.Since(start)
		log.Debug("solved", "part", part, "elapsed", elapsed)
		results = append(results, partResult{Part: part, Answer: answer, Duration: elapsed})
	}

	if !flagNoSave && !flagSample {
		if err := saveAnswers(runID, puzzle.ID(), results); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderAnswers(puzzle, results, styledOutput()))
	return nil
}

func readInput(day int, kind inputs.Kind) (string, error) {
	if flagInput != "" {
		return inputs.LoadFile(flagInput)
	}
	return inputs.NewLoader(appConfig.Inputs.Dir).Load(day, kind)
}

func saveAnswers(runID, puzzleID string, results []partResult) error {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	return recordAnswers(store, runID, puzzleID, results)
}

// recordAnswers stores one run's answers, filling in each part's previous
// answer first so the caller can show what changed.
func recordAnswers(store *storage.Store, runID, puzzleID string, results []partResult) error {
	for i, r := range results {
		prev, err := store.Latest(puzzleID, r.Part)
		if err != nil {
			return err
		}
		if prev != nil {
			results[i].Previous = prev.Answer
			if prev.Answer != r.Answer.String() {
				logger.Warn("answer changed", "puzzle", puzzleID, "part", r.Part, "previous", prev.Answer, "now", r.Answer)
			}
		}

		if _, err := store.SaveAnswer(storage.AnswerEntry{
			RunID:    runID,
			PuzzleID: puzzleID,
			Part:     r.Part,
			Answer:   r.Answer.String(),
			Duration: r.Duration,
		}); err != nil {
			return err
		}
	}
	logger.Debug("answers stored", "run", runID, "count", len(results))
	return nil
}
