package life

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Coord is a (row, col) cell position.
type Coord struct {
	Row int
	Col int
}

// Bounds is the inclusive simulation window [0,Height] x [0,Width].
type Bounds struct {
	Height int
	Width  int
}

// Contains reports whether (row, col) lies inside the window.
func (b Bounds) Contains(row, col int) bool {
	return row >= 0 && col >= 0 && row <= b.Height && col <= b.Width
}

// ParseSeed reads one "row col" or "row, col" pair per line. Runs of spaces
// and commas both separate fields; blank lines are skipped and fields past the
// second are ignored. The first bad line aborts the read.
func ParseSeed(r io.Reader) ([]Coord, error) {
	var seed []Coord
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.FieldsFunc(sc.Text(), func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want row and column, got %q", ErrMalformedSeed, line, sc.Text())
		}
		row, err := parseIndex(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: row: %v", ErrMalformedSeed, line, err)
		}
		col, err := parseIndex(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: column: %v", ErrMalformedSeed, line, err)
		}
		seed = append(seed, Coord{Row: row, Col: col})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("life: read seed: %w", err)
	}
	return seed, nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative index %d", v)
	}
	return v, nil
}

// BoundsFor sizes the window from a seed: each extent is the larger of twice
// the mean coordinate and the maximum coordinate, using integer means. An
// empty seed yields a zero window holding only (0,0).
func BoundsFor(seed []Coord) Bounds {
	if len(seed) == 0 {
		return Bounds{}
	}
	var rowSum, colSum, rowMax, colMax int
	for _, c := range seed {
		rowSum += c.Row
		colSum += c.Col
		rowMax = max(rowMax, c.Row)
		colMax = max(colMax, c.Col)
	}
	n := len(seed)
	return Bounds{
		Height: max(2*(rowSum/n), rowMax),
		Width:  max(2*(colSum/n), colMax),
	}
}
