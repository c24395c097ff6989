package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/xmas/internal/registry"
	"github.com/vovakirdan/xmas/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var answersCmd = &cobra.Command{
	Use:   "answers [day]",
	Short: "Show stored answers",
	Long: `Display the answer history for a puzzle, newest first.

Without a day, shows a summary of every puzzle that has stored answers.

Examples:
  xmas answers
  xmas answers 6
  xmas answers day16 --limit 5
  xmas answers 6 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnswers,
}

func init() {
	answersCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of answers to show")
	answersCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored answers for the puzzle")
}

func runAnswers(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a day")
		}
		return showStats(cmd, store)
	}

	puzzle, err := registry.Lookup(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearAnswers(puzzle.ID()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared answers for %s.\n", puzzle.ID())
		return nil
	}

	entries, err := store.History(puzzle.ID(), flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Answers - %s: %s\n\n", puzzle.ID(), puzzle.Title())
	if len(entries) == 0 {
		fmt.Fprintln(out, "No answers recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Run 'xmas solve %d' to store the first one.\n", puzzle.Day())
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			shortRunID(e.RunID),
			strconv.Itoa(e.Part),
			e.Answer,
			roundDuration(e.Duration).String(),
			humanize.Time(e.CreatedAt),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Run", "Part", "Answer", "Took", "Solved"}, rows, styledOutput()))
	return nil
}

func showStats(cmd *cobra.Command, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(stats) == 0 {
		fmt.Fprintln(out, "No answers recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		s := stats[id]
		rows = append(rows, []string{
			id,
			humanize.Comma(int64(s.Runs)),
			humanize.Comma(int64(s.Answers)),
			roundDuration(s.Fastest).String(),
			humanize.Time(s.LastSolvedAt),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Puzzle", "Runs", "Answers", "Fastest", "Last solved"}, rows, styledOutput()))
	return nil
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
