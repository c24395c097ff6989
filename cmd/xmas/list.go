package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/xmas/internal/inputs"
	"github.com/vovakirdan/xmas/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered puzzles",
	Long: `Shows every puzzle registered in xmas and which input files (real input,
published sample) were found for it.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	puzzles := registry.List()
	out := cmd.OutOrStdout()

	if len(puzzles) == 0 {
		fmt.Fprintln(out, "No puzzles available.")
		return nil
	}

	loader := inputs.NewLoader(appConfig.Inputs.Dir)
	entries, err := loader.LoadAll()
	if err != nil {
		return err
	}
	available := inputKinds(entries)

	// Calculate column widths
	maxTitleLen := 5 // "Title" header
	for _, p := range puzzles {
		maxTitleLen = max(maxTitleLen, len(p.Title))
	}

	fmt.Fprintf(out, "  %-5s  %-*s  %s\n", "ID", maxTitleLen, "Title", "Inputs")
	fmt.Fprintf(out, "  %-5s  %-*s  %s\n", "--", maxTitleLen, "-----", "------")

	for _, p := range puzzles {
		fmt.Fprintf(out, "  %-5s  %-*s  %s\n", p.ID, maxTitleLen, p.Title, describeKinds(available[p.ID]))
	}

	if orphans := unsolvedInputs(entries); len(orphans) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Inputs without a solver: %s\n", strings.Join(orphans, ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Inputs are read from %s. Run 'xmas solve <day>' to solve a puzzle.\n", loader.Root)
	return nil
}

// inputKinds groups the input kinds found on disk by puzzle ID.
func inputKinds(entries []inputs.Entry) map[string][]inputs.Kind {
	kinds := make(map[string][]inputs.Kind)
	for _, e := range entries {
		if !slices.Contains(kinds[e.ID], e.Kind) {
			kinds[e.ID] = append(kinds[e.ID], e.Kind)
		}
	}
	return kinds
}

func describeKinds(kinds []inputs.Kind) string {
	if len(kinds) == 0 {
		return "missing"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// unsolvedInputs lists the puzzle IDs that have input files but no registered solver.
func unsolvedInputs(entries []inputs.Entry) []string {
	var ids []string
	for _, e := range entries {
		if !registry.Exists(e.ID) && !slices.Contains(ids, e.ID) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
