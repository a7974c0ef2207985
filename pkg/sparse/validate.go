package sparse

import "fmt"

type coord struct{ x, y int }

// Validate walks every chain and reports the first structural problem it
// finds, wrapped around one of the ErrCorrupt family. A nil result means all
// invariants hold: ordered, acyclic chains; every cell reachable through both
// of its headers as one node; no retained anchor without descendants; and no
// leaked arena slot.
func (g *Grid[V]) Validate() error {
	if len(g.nodes) == 0 {
		return fmt.Errorf("%w: head missing", ErrDangling)
	}
	if h := g.nodes[headIndex]; h.x != 0 || h.y != 0 {
		return fmt.Errorf("%w: head at (%d,%d)", ErrDangling, h.y, h.x)
	}
	freed := make(map[int32]bool, len(g.free))
	for _, i := range g.free {
		if i == headIndex || i < 0 || int(i) >= len(g.nodes) || freed[i] {
			return fmt.Errorf("%w: bad free slot %d", ErrDangling, i)
		}
		freed[i] = true
	}

	// byColumn: head -> column headers (row 0) -> their column chains.
	byColumn := make(map[coord]int32)
	headers, err := g.walk(headIndex, true, freed)
	if err != nil {
		return err
	}
	for _, h := range headers {
		if g.nodes[h].y != 0 {
			return fmt.Errorf("%w: column header (%d,%d) off row 0", ErrOrder, g.nodes[h].y, g.nodes[h].x)
		}
		chain, err := g.walk(h, false, freed)
		if err != nil {
			return err
		}
		for _, i := range chain {
			if n := g.nodes[i]; n.x != g.nodes[h].x {
				return fmt.Errorf("%w: (%d,%d) in column %d", ErrOrder, n.y, n.x, g.nodes[h].x)
			}
			byColumn[coord{g.nodes[i].x, g.nodes[i].y}] = i
		}
	}

	// byRow: head -> row headers (column 0) -> their row chains.
	byRow := make(map[coord]int32)
	headers, err = g.walk(headIndex, false, freed)
	if err != nil {
		return err
	}
	for _, h := range headers {
		if g.nodes[h].x != 0 {
			return fmt.Errorf("%w: row header (%d,%d) off column 0", ErrOrder, g.nodes[h].y, g.nodes[h].x)
		}
		chain, err := g.walk(h, true, freed)
		if err != nil {
			return err
		}
		for _, i := range chain {
			if n := g.nodes[i]; n.y != g.nodes[h].y {
				return fmt.Errorf("%w: (%d,%d) in row %d", ErrOrder, n.y, n.x, g.nodes[h].y)
			}
			byRow[coord{g.nodes[i].x, g.nodes[i].y}] = i
		}
	}

	if len(byRow) != len(byColumn) {
		return fmt.Errorf("%w: %d nodes by row, %d by column", ErrUnreachable, len(byRow), len(byColumn))
	}
	populated := 0
	for at, i := range byColumn {
		if j, ok := byRow[at]; !ok || j != i {
			return fmt.Errorf("%w: (%d,%d)", ErrUnreachable, at.y, at.x)
		}
		n := g.nodes[i]
		if n.val != g.def {
			populated++
			continue
		}
		switch {
		case i == headIndex:
		case n.y == 0 && n.nextInCol != nilIndex:
		case n.x == 0 && n.nextInRow != nilIndex:
		default:
			return fmt.Errorf("%w: (%d,%d)", ErrDeadAnchor, n.y, n.x)
		}
	}
	if live := len(g.nodes) - len(g.free); live != len(byColumn) {
		return fmt.Errorf("%w: %d live slots, %d reachable", ErrDangling, live, len(byColumn))
	}
	if populated != g.cells {
		return fmt.Errorf("%w: cell count %d, found %d", ErrCorrupt, g.cells, populated)
	}
	return nil
}

// walk follows one chain from start, checking bounds, liveness, strict
// ordering and termination. It returns the visited slots including start.
func (g *Grid[V]) walk(start int32, inRow bool, freed map[int32]bool) ([]int32, error) {
	var out []int32
	seen := make(map[int32]bool)
	prev := nilIndex
	for cur := start; cur != nilIndex; {
		if cur < 0 || int(cur) >= len(g.nodes) || freed[cur] {
			return nil, fmt.Errorf("%w: link to slot %d", ErrDangling, cur)
		}
		if seen[cur] {
			return nil, fmt.Errorf("%w: slot %d revisited", ErrCycle, cur)
		}
		seen[cur] = true
		n := g.nodes[cur]
		if prev != nilIndex {
			p := g.nodes[prev]
			if inRow && (n.y != p.y || n.x <= p.x) || !inRow && (n.x != p.x || n.y <= p.y) {
				return nil, fmt.Errorf("%w: (%d,%d) after (%d,%d)", ErrOrder, n.y, n.x, p.y, p.x)
			}
		}
		out = append(out, cur)
		prev = cur
		if inRow {
			cur = n.nextInRow
		} else {
			cur = n.nextInCol
		}
	}
	return out, nil
}
