package sparse

// ElemIterator walks the nodes of a single row or column in increasing order.
// It yields anchor nodes too; compare Cell().Value with the grid default to
// tell them apart.
type ElemIterator[V comparable] struct {
	g     *Grid[V]
	inRow bool
	index int
	cur   int32
	cell  Cell[V]
}

func newElemIterator[V comparable](g *Grid[V], inRow bool, start int32) *ElemIterator[V] {
	it := &ElemIterator[V]{g: g, inRow: inRow, cur: start}
	if start != nilIndex {
		if inRow {
			it.index = g.nodes[start].y
		} else {
			it.index = g.nodes[start].x
		}
	}
	return it
}

// Next advances to the next node and reports whether there was one.
func (it *ElemIterator[V]) Next() bool {
	if it.cur == nilIndex {
		return false
	}
	n := &it.g.nodes[it.cur]
	it.cell = Cell[V]{Row: n.y, Col: n.x, Value: n.val}
	if it.inRow {
		it.cur = n.nextInRow
	} else {
		it.cur = n.nextInCol
	}
	return true
}

// Cell returns the node produced by the last call to Next.
func (it *ElemIterator[V]) Cell() Cell[V] { return it.cell }

// IteratingRow reports whether the iterator walks a row.
func (it *ElemIterator[V]) IteratingRow() bool { return it.inRow }

// IteratingColumn reports whether the iterator walks a column.
func (it *ElemIterator[V]) IteratingColumn() bool { return !it.inRow }

// Index returns the fixed coordinate: the row number when walking a row, the
// column number when walking a column.
func (it *ElemIterator[V]) Index() int { return it.index }

// RowIterator yields one ElemIterator per populated row, top to bottom.
type RowIterator[V comparable] struct {
	g     *Grid[V]
	cur   int32
	elems *ElemIterator[V]
}

// Rows returns a row-major iterator over g.
func (g *Grid[V]) Rows() *RowIterator[V] {
	return &RowIterator[V]{g: g, cur: headIndex}
}

// Next moves to the next row and reports whether there was one.
func (it *RowIterator[V]) Next() bool {
	if it.cur == nilIndex {
		return false
	}
	it.elems = newElemIterator(it.g, true, it.cur)
	it.cur = it.g.nodes[it.cur].nextInCol
	return true
}

// Elems returns the stream for the current row.
func (it *RowIterator[V]) Elems() *ElemIterator[V] { return it.elems }

// ColumnIterator yields one ElemIterator per populated column, left to right.
type ColumnIterator[V comparable] struct {
	g     *Grid[V]
	cur   int32
	elems *ElemIterator[V]
}

// Columns returns a column-major iterator over g.
func (g *Grid[V]) Columns() *ColumnIterator[V] {
	return &ColumnIterator[V]{g: g, cur: headIndex}
}

// Next moves to the next column and reports whether there was one.
func (it *ColumnIterator[V]) Next() bool {
	if it.cur == nilIndex {
		return false
	}
	it.elems = newElemIterator(it.g, false, it.cur)
	it.cur = it.g.nodes[it.cur].nextInRow
	return true
}

// Elems returns the stream for the current column.
func (it *ColumnIterator[V]) Elems() *ElemIterator[V] { return it.elems }
