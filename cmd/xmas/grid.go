package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/xmas/internal/core"
	"github.com/vovakirdan/xmas/internal/days/parse"
	"github.com/vovakirdan/xmas/internal/inputs"
	"github.com/vovakirdan/xmas/internal/search"
)

var (
	flagQuiet  bool
	flagRegion string
)

var gridCmd = &cobra.Command{
	Use:   "grid <file>",
	Short: "Parse a grid file and re-render it",
	Long: `Parse a file in the grid text format (one row per line, one tile per
character, every row the same width) and report its size and tile counts.
The parsed grid is printed back unless --quiet is given.

With --region x,y the connected area of equal tiles around that point is
measured as well.

Examples:
  xmas grid inputs/day06.txt
  xmas grid inputs/day10.txt --quiet
  xmas grid inputs/day12.txt --region 0,0`,
	Args: cobra.ExactArgs(1),
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the summary")
	gridCmd.Flags().StringVar(&flagRegion, "region", "", "Measure the region of equal tiles at x,y")
}

func runGrid(cmd *cobra.Command, args []string) error {
	text, err := inputs.LoadFile(args[0])
	if err != nil {
		return err
	}

	g, err := core.ParseRunes(text)
	if err != nil {
		var rowErr *core.RowLengthError
		if errors.As(err, &rowErr) {
			logger.Error("ragged grid", "file", args[0], "got", rowErr.Current, "want", rowErr.Expected)
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %dx%d, %d tiles\n\n", args[0], g.Width(), g.Height(), g.Len())

	counts := make(map[rune]int)
	for t := range g.Tiles() {
		counts[t]++
	}
	rows := make([][]string, 0, len(counts))
	for _, t := range slices.Sorted(maps.Keys(counts)) {
		rows = append(rows, []string{strconv.QuoteRune(t), strconv.Itoa(counts[t])})
	}
	fmt.Fprintln(out, renderTable([]string{"Tile", "Count"}, rows, styledOutput()))

	if flagRegion != "" {
		summary, err := describeRegion(g, flagRegion)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", summary)
	}

	if !flagQuiet {
		fmt.Fprintln(out)
		fmt.Fprint(out, g.String())
	}
	return nil
}

// describeRegion measures the connected area of equal tiles around the
// "x,y" point.
func describeRegion(g *core.Grid[rune], at string) (string, error) {
	start, err := parsePoint(at)
	if err != nil {
		return "", err
	}
	tile, ok := g.Get(start)
	if !ok {
		return "", fmt.Errorf("region: %v is outside the %dx%d grid", start, g.Width(), g.Height())
	}
	region := search.Region(g, start)
	return fmt.Sprintf("Region at %v: %d tiles of %s", start, len(region), strconv.QuoteRune(tile)), nil
}

// parsePoint reads an "x,y" pair.
func parsePoint(s string) (core.Coord, error) {
	nums, err := parse.Ints(s)
	if err != nil {
		return core.Coord{}, err
	}
	if len(nums) != 2 {
		return core.Coord{}, fmt.Errorf("expected x,y, got %q", s)
	}
	return core.C(nums[0], nums[1]), nil
}
