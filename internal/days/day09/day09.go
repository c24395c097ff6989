// Package day09 solves "Disk Fragmenter": compacting an amphipod's disk.
package day09

import (
	"context"
	"fmt"
	"strings"

	"github.com/vovakirdan/xmas/internal/registry"
)

func init() {
	registry.Days(registry.Parts{
		Number: 9,
		Name:   "Disk Fragmenter",
		Part1:  compactBlocks,
		Part2:  compactFiles,
	})
}

const free = -1

// span is a contiguous run of blocks. id is free for empty space.
type span struct {
	id    int
	start int
	size  int
}

// parseDiskMap expands the dense format into alternating file and free spans.
func parseDiskMap(text string) ([]span, []span, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, fmt.Errorf("day09: empty disk map")
	}
	var files, gaps []span
	pos := 0
	for i, r := range text {
		if r < '0' || r > '9' {
			return nil, nil, fmt.Errorf("day09: invalid digit %q at %d", r, i)
		}
		size := int(r - '0')
		if i%2 == 0 {
			files = append(files, span{id: i / 2, start: pos, size: size})
		} else {
			gaps = append(gaps, span{id: free, start: pos, size: size})
		}
		pos += size
	}
	return files, gaps, nil
}

// compactBlocks moves file blocks one at a time from the end of the disk
// into the leftmost free block.
func compactBlocks(_ context.Context, in registry.Input) (registry.Answer, error) {
	files, gaps, err := parseDiskMap(in.Text)
	if err != nil {
		return "", err
	}

	var blocks []int
	for i, f := range files {
		for range f.size {
			blocks = append(blocks, f.id)
		}
		if i < len(gaps) {
			for range gaps[i].size {
				blocks = append(blocks, free)
			}
		}
	}

	left, right := 0, len(blocks)-1
	for {
		for left < right && blocks[left] != free {
			left++
		}
		for left < right && blocks[right] == free {
			right--
		}
		if left >= right {
			break
		}
		blocks[left], blocks[right] = blocks[right], free
	}

	checksum := 0
	for pos, id := range blocks {
		if id != free {
			checksum += pos * id
		}
	}
	return registry.Int(checksum), nil
}

// compactFiles moves whole files, highest ID first, into the leftmost free
// span that fits them. A file that fits nowhere to its left stays put.
func compactFiles(_ context.Context, in registry.Input) (registry.Answer, error) {
	files, gaps, err := parseDiskMap(in.Text)
	if err != nil {
		return "", err
	}

	for fi := len(files) - 1; fi >= 0; fi-- {
		f := &files[fi]
		for gi := range gaps {
			g := &gaps[gi]
			if g.start >= f.start {
				break
			}
			if g.size >= f.size {
				f.start = g.start
				g.start += f.size
				g.size -= f.size
				break
			}
		}
	}

	checksum := 0
	for _, f := range files {
		for pos := f.start; pos < f.start+f.size; pos++ {
			checksum += pos * f.id
		}
	}
	return registry.Int(checksum), nil
}
