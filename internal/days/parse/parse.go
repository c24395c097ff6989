// Package parse holds the small text helpers shared by the day solvers.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines returns the non-blank lines of text with "\r" line endings removed.
func Lines(text string) []string {
	var lines []string
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Sections splits text into blocks separated by blank lines.
// Each block keeps its inner newlines and has no trailing newline.
func Sections(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var sections []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Trim(block, "\n")
		if block != "" {
			sections = append(sections, block)
		}
	}
	return sections
}

// Ints extracts every integer in s, in order. A '-' directly before a digit
// makes the number negative; any other character separates numbers.
func Ints(s string) ([]int, error) {
	var nums []int
	for i := 0; i < len(s); {
		j := i
		if s[j] == '-' && j+1 < len(s) && isDigit(s[j+1]) {
			j++
		}
		if !isDigit(s[j]) {
			i++
			continue
		}
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		nums = append(nums, n)
		i = j
	}
	return nums, nil
}

// Int parses a single integer, ignoring surrounding whitespace.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}
	return n, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
