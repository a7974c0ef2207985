package sparse

import (
	"fmt"
	"strings"
)

const (
	nilIndex  int32 = -1
	headIndex int32 = 0
)

// Cell is a snapshot of one node: its coordinates and stored value.
type Cell[V comparable] struct {
	Row   int
	Col   int
	Value V
}

type node[V comparable] struct {
	x, y      int
	val       V
	nextInRow int32
	nextInCol int32
}

// Grid is a cross-linked sparse grid of comparable values.
type Grid[V comparable] struct {
	def   V
	nodes []node[V]
	free  []int32
	cells int
}

// New returns an empty grid whose absent cells read as def.
func New[V comparable](def V) *Grid[V] {
	g := &Grid[V]{def: def}
	g.nodes = append(g.nodes, node[V]{val: def, nextInRow: nilIndex, nextInCol: nilIndex})
	return g
}

// Default returns the value reported for absent cells.
func (g *Grid[V]) Default() V { return g.def }

// Len returns the number of cells holding a non-default value.
func (g *Grid[V]) Len() int { return g.cells }

// Nodes returns the number of materialised nodes, head and anchors included.
func (g *Grid[V]) Nodes() int { return len(g.nodes) - len(g.free) }

// Get returns the value at (row, col), or the default when no node exists.
func (g *Grid[V]) Get(row, col int) V {
	if row < 0 || col < 0 {
		return g.def
	}
	_, header := g.seekInRow(headIndex, col)
	if header == nilIndex || g.nodes[header].x != col {
		return g.def
	}
	_, cur := g.seekInCol(header, row)
	if cur == nilIndex || g.nodes[cur].y != row {
		return g.def
	}
	return g.nodes[cur].val
}

// Set stores v at (row, col). Negative coordinates are ignored and storing
// the default value removes the cell.
func (g *Grid[V]) Set(row, col int, v V) {
	if row < 0 || col < 0 {
		return
	}
	if row == 0 && col == 0 {
		g.store(headIndex, v)
		return
	}
	if v == g.def {
		g.Remove(row, col)
		return
	}

	target := nilIndex
	colHeader, rowHeader := nilIndex, nilIndex
	if col != 0 {
		colHeader = g.ensureColumnHeader(col)
		if row == 0 {
			target = colHeader
		}
	}
	if row != 0 {
		rowHeader = g.ensureRowHeader(row)
		if col == 0 {
			target = rowHeader
		}
	}
	if target == nilIndex {
		target = g.ensureCell(colHeader, rowHeader, row, col)
	}
	g.store(target, v)
}

// Remove deletes the cell at (row, col) and prunes headers it leaves empty.
// Removing an absent cell is a no-op. A header that still anchors other
// cells is kept and only its own value is reset.
func (g *Grid[V]) Remove(row, col int) {
	if row < 0 || col < 0 {
		return
	}
	if row == 0 && col == 0 {
		g.store(headIndex, g.def)
		return
	}

	colPrev, colHeader := g.seekInRow(headIndex, col)
	if col != 0 && (colHeader == nilIndex || g.nodes[colHeader].x != col) {
		return
	}
	rowPrev, rowHeader := g.seekInCol(headIndex, row)
	if row != 0 && (rowHeader == nilIndex || g.nodes[rowHeader].y != row) {
		return
	}

	switch {
	case row == 0:
		g.store(colHeader, g.def)
		g.pruneColumnHeader(colPrev, colHeader)
	case col == 0:
		g.store(rowHeader, g.def)
		g.pruneRowHeader(rowPrev, rowHeader)
	default:
		abovePrev, cur := g.seekInCol(colHeader, row)
		if cur == nilIndex || g.nodes[cur].y != row {
			return
		}
		leftPrev, same := g.seekInRow(rowHeader, col)
		if same != cur {
			panic(fmt.Errorf("%w: (%d,%d) resolves to different nodes", ErrUnreachable, row, col))
		}
		g.nodes[abovePrev].nextInCol = g.nodes[cur].nextInCol
		g.nodes[leftPrev].nextInRow = g.nodes[cur].nextInRow
		g.store(cur, g.def)
		g.release(cur)
		g.pruneColumnHeader(colPrev, colHeader)
		g.pruneRowHeader(rowPrev, rowHeader)
	}
}

// Clear drops every node except the head and resets the head to default.
func (g *Grid[V]) Clear() {
	g.nodes = g.nodes[:1]
	g.nodes[headIndex] = node[V]{val: g.def, nextInRow: nilIndex, nextInCol: nilIndex}
	g.free = g.free[:0]
	g.cells = 0
}

// Cells returns the non-default cells in row-major order.
func (g *Grid[V]) Cells() []Cell[V] {
	out := make([]Cell[V], 0, g.cells)
	rows := g.Rows()
	for rows.Next() {
		elems := rows.Elems()
		for elems.Next() {
			if c := elems.Cell(); c.Value != g.def {
				out = append(out, c)
			}
		}
	}
	return out
}

// CellsByColumn returns the non-default cells in column-major order.
func (g *Grid[V]) CellsByColumn() []Cell[V] {
	out := make([]Cell[V], 0, g.cells)
	cols := g.Columns()
	for cols.Next() {
		elems := cols.Elems()
		for elems.Next() {
			if c := elems.Cell(); c.Value != g.def {
				out = append(out, c)
			}
		}
	}
	return out
}

// String lists the non-default cells, one per line, in row-major order.
func (g *Grid[V]) String() string {
	var b strings.Builder
	for _, c := range g.Cells() {
		fmt.Fprintf(&b, "row: %d col: %d val: %v\n", c.Row, c.Col, c.Value)
	}
	return b.String()
}

// seekInRow walks the row chain starting at start and stops at the first node
// whose column is >= col. prev is the last node with a smaller column.
func (g *Grid[V]) seekInRow(start int32, col int) (prev, cur int32) {
	prev, cur = nilIndex, start
	for cur != nilIndex && g.nodes[cur].x < col {
		prev, cur = cur, g.nodes[cur].nextInRow
	}
	return prev, cur
}

// seekInCol is the column-chain counterpart of seekInRow.
func (g *Grid[V]) seekInCol(start int32, row int) (prev, cur int32) {
	prev, cur = nilIndex, start
	for cur != nilIndex && g.nodes[cur].y < row {
		prev, cur = cur, g.nodes[cur].nextInCol
	}
	return prev, cur
}

func (g *Grid[V]) ensureColumnHeader(col int) int32 {
	prev, cur := g.seekInRow(headIndex, col)
	if cur != nilIndex && g.nodes[cur].x == col {
		return cur
	}
	n := g.alloc(col, 0)
	g.nodes[n].nextInRow = cur
	g.nodes[prev].nextInRow = n
	return n
}

func (g *Grid[V]) ensureRowHeader(row int) int32 {
	prev, cur := g.seekInCol(headIndex, row)
	if cur != nilIndex && g.nodes[cur].y == row {
		return cur
	}
	n := g.alloc(0, row)
	g.nodes[n].nextInCol = cur
	g.nodes[prev].nextInCol = n
	return n
}

// ensureCell finds or creates the interior node (col,row) and splices one
// slot into both the column chain and the row chain.
func (g *Grid[V]) ensureCell(colHeader, rowHeader int32, row, col int) int32 {
	abovePrev, below := g.seekInCol(colHeader, row)
	if below != nilIndex && g.nodes[below].y == row {
		return below
	}
	leftPrev, right := g.seekInRow(rowHeader, col)
	if right != nilIndex && g.nodes[right].x == col {
		panic(fmt.Errorf("%w: (%d,%d) present in row chain only", ErrUnreachable, row, col))
	}
	n := g.alloc(col, row)
	g.nodes[n].nextInCol = below
	g.nodes[abovePrev].nextInCol = n
	g.nodes[n].nextInRow = right
	g.nodes[leftPrev].nextInRow = n
	return n
}

func (g *Grid[V]) pruneColumnHeader(prev, header int32) {
	h := &g.nodes[header]
	if h.nextInCol != nilIndex || h.val != g.def {
		return
	}
	g.nodes[prev].nextInRow = h.nextInRow
	g.release(header)
}

func (g *Grid[V]) pruneRowHeader(prev, header int32) {
	h := &g.nodes[header]
	if h.nextInRow != nilIndex || h.val != g.def {
		return
	}
	g.nodes[prev].nextInCol = h.nextInCol
	g.release(header)
}

// store writes v into slot i and keeps the populated-cell count in step.
func (g *Grid[V]) store(i int32, v V) {
	n := &g.nodes[i]
	was, is := n.val != g.def, v != g.def
	switch {
	case is && !was:
		g.cells++
	case was && !is:
		g.cells--
	}
	n.val = v
}

func (g *Grid[V]) alloc(x, y int) int32 {
	n := node[V]{x: x, y: y, val: g.def, nextInRow: nilIndex, nextInCol: nilIndex}
	if last := len(g.free) - 1; last >= 0 {
		i := g.free[last]
		g.free = g.free[:last]
		g.nodes[i] = n
		return i
	}
	g.nodes = append(g.nodes, n)
	return int32(len(g.nodes) - 1)
}

func (g *Grid[V]) release(i int32) {
	g.nodes[i] = node[V]{x: -1, y: -1, val: g.def, nextInRow: nilIndex, nextInCol: nilIndex}
	g.free = append(g.free, i)
}
