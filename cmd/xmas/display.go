package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/vovakirdan/xmas/internal/registry"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	answerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// styledOutput reports whether stdout is a terminal that can take colours.
func styledOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// roundDuration keeps timings readable: microseconds below a millisecond,
// milliseconds otherwise.
func roundDuration(d time.Duration) time.Duration {
	if d < time.Millisecond {
		return d.Round(time.Microsecond)
	}
	return d.Round(time.Millisecond)
}

// renderAnswers formats the answers of one solve run.
func renderAnswers(p registry.Puzzle, results []partResult, styled bool) string {
	title := fmt.Sprintf("%s: %s", p.ID(), p.Title())

	if !styled {
		var b strings.Builder
		b.WriteString(title)
		for _, r := range results {
			fmt.Fprintf(&b, "\nPart %d: %s (%s)", r.Part, r.Answer, roundDuration(r.Duration))
			if r.Changed() {
				fmt.Fprintf(&b, " was %s", r.Previous)
			}
		}
		return b.String()
	}

	lines := []string{titleStyle.Render(title), ""}
	for _, r := range results {
		line := fmt.Sprintf("%s %s  %s",
			labelStyle.Render(fmt.Sprintf("Part %d", r.Part)),
			answerStyle.Render(r.Answer.String()),
			labelStyle.Render(roundDuration(r.Duration).String()),
		)
		if r.Changed() {
			line += "  " + changedStyle.Render("was "+r.Previous)
		}
		lines = append(lines, line)
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// renderTable lays rows out under headers, with borders when styled and as
// aligned plain columns otherwise.
func renderTable(headers []string, rows [][]string, styled bool) string {
	if !styled {
		columns := len(headers)
		for _, row := range rows {
			columns = max(columns, len(row))
		}
		widths := make([]int, columns)
		for i, h := range headers {
			widths[i] = len(h)
		}
		for _, row := range rows {
			for i, cell := range row {
				widths[i] = max(widths[i], len(cell))
			}
		}

		var b strings.Builder
		writeRow := func(cells []string) {
			b.WriteString("  ")
			for i, cell := range cells {
				if i > 0 {
					b.WriteString("  ")
				}
				fmt.Fprintf(&b, "%-*s", widths[i], cell)
			}
			b.WriteString("\n")
		}
		writeRow(headers)
		for _, row := range rows {
			writeRow(row)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
