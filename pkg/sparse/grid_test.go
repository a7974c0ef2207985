package sparse_test

import (
	"math/rand/v2"
	"testing"

	"sparse-life/pkg/sparse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rc struct{ row, col int }

func load(t *testing.T, cells map[rc]int) *sparse.Grid[int] {
	t.Helper()
	g := sparse.New(0)
	for at, v := range cells {
		g.Set(at.row, at.col, v)
	}
	require.NoError(t, g.Validate())
	return g
}

func TestGetOnEmptyGrid(t *testing.T) {
	g := sparse.New(-1)
	assert.Equal(t, -1, g.Default())
	assert.Equal(t, -1, g.Get(0, 0))
	assert.Equal(t, -1, g.Get(7, 3))
	assert.Equal(t, -1, g.Get(-1, 2))
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 1, g.Nodes())
	require.NoError(t, g.Validate())
}

func TestSetAndGet(t *testing.T) {
	cases := []struct {
		name string
		row  int
		col  int
	}{
		{"Head", 0, 0},
		{"ColumnHeader", 0, 5},
		{"RowHeader", 4, 0},
		{"Interior", 3, 9},
		{"Far", 1 << 20, 1 << 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := sparse.New("")
			g.Set(tc.row, tc.col, "x")
			require.NoError(t, g.Validate())
			assert.Equal(t, "x", g.Get(tc.row, tc.col))
			assert.Equal(t, 1, g.Len())
			assert.Equal(t, "", g.Get(tc.row+1, tc.col))
			assert.Equal(t, "", g.Get(tc.row, tc.col+1))
		})
	}
}

func TestSetOverwritesInPlace(t *testing.T) {
	g := sparse.New(0)
	g.Set(2, 3, 1)
	nodes := g.Nodes()
	g.Set(2, 3, 7)
	assert.Equal(t, 7, g.Get(2, 3))
	assert.Equal(t, nodes, g.Nodes())
	assert.Equal(t, 1, g.Len())

	// Header coordinates are updated too, not just created.
	g.Set(0, 3, 4)
	g.Set(0, 3, 5)
	assert.Equal(t, 5, g.Get(0, 3))
	require.NoError(t, g.Validate())
}

func TestNegativeCoordinatesIgnored(t *testing.T) {
	g := sparse.New(0)
	g.Set(-1, 2, 9)
	g.Set(2, -1, 9)
	g.Remove(-3, -3)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 1, g.Nodes())
	assert.Equal(t, 0, g.Get(-1, 2))
}

func TestInteriorCellCreatesAnchors(t *testing.T) {
	g := sparse.New(0)
	g.Set(3, 4, 1)
	// head + (4,0) column header + (0,3) row header + the cell.
	assert.Equal(t, 4, g.Nodes())
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.Get(0, 4))
	assert.Equal(t, 0, g.Get(3, 0))

	g.Set(3, 4, 0)
	assert.Equal(t, 1, g.Nodes())
	assert.Equal(t, 0, g.Len())
	require.NoError(t, g.Validate())
}

func TestRoundTrip(t *testing.T) {
	cells := map[rc]int{
		{0, 0}: 1, {0, 3}: 2, {2, 0}: 3, {1, 1}: 4,
		{5, 2}: 5, {5, 9}: 6, {9, 5}: 7, {2, 9}: 8,
	}
	g := load(t, cells)
	assert.Equal(t, len(cells), g.Len())

	got := map[rc]int{}
	for _, c := range g.Cells() {
		got[rc{c.Row, c.Col}] = c.Value
	}
	assert.Equal(t, cells, got)

	got = map[rc]int{}
	for _, c := range g.CellsByColumn() {
		got[rc{c.Row, c.Col}] = c.Value
	}
	assert.Equal(t, cells, got)
}

func TestCellsOrdering(t *testing.T) {
	g := load(t, map[rc]int{{2, 1}: 1, {1, 2}: 1, {1, 1}: 1, {2, 2}: 1})

	var rowMajor, colMajor []rc
	for _, c := range g.Cells() {
		rowMajor = append(rowMajor, rc{c.Row, c.Col})
	}
	for _, c := range g.CellsByColumn() {
		colMajor = append(colMajor, rc{c.Row, c.Col})
	}
	assert.Equal(t, []rc{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, rowMajor)
	assert.Equal(t, []rc{{1, 1}, {2, 1}, {1, 2}, {2, 2}}, colMajor)
}

func TestDefaultElision(t *testing.T) {
	g := load(t, map[rc]int{{1, 1}: 1})
	nodes := g.Nodes()

	g.Set(4, 6, 0)
	g.Set(0, 8, 0)
	g.Set(8, 0, 0)
	assert.Equal(t, 0, g.Get(4, 6))
	assert.Equal(t, nodes, g.Nodes())
	assert.Len(t, g.Cells(), 1)
	require.NoError(t, g.Validate())
}

func TestRemoveIdempotent(t *testing.T) {
	g := load(t, map[rc]int{{1, 1}: 1, {1, 3}: 2, {4, 3}: 3})

	g.Remove(1, 3)
	require.NoError(t, g.Validate())
	after := g.String()
	nodes := g.Nodes()

	g.Remove(1, 3)
	require.NoError(t, g.Validate())
	assert.Equal(t, after, g.String())
	assert.Equal(t, nodes, g.Nodes())
	assert.Equal(t, 0, g.Get(1, 3))
	assert.Equal(t, 3, g.Get(4, 3))
}

func TestRemoveCascadesHeaders(t *testing.T) {
	g := load(t, map[rc]int{{2, 3}: 1, {2, 5}: 1, {6, 3}: 1})
	// head, columns 3 and 5, rows 2 and 6, three cells.
	require.Equal(t, 8, g.Nodes())

	g.Remove(2, 5) // empties column 5, row 2 still holds (2,3).
	assert.Equal(t, 6, g.Nodes())
	require.NoError(t, g.Validate())

	g.Remove(6, 3) // empties row 6, column 3 still holds (2,3).
	assert.Equal(t, 4, g.Nodes())
	require.NoError(t, g.Validate())

	g.Remove(2, 3)
	assert.Equal(t, 1, g.Nodes())
	require.NoError(t, g.Validate())
}

func TestRemoveHeaderKeepsAnchor(t *testing.T) {
	g := load(t, map[rc]int{{0, 4}: 9, {3, 4}: 1})

	g.Remove(0, 4)
	assert.Equal(t, 0, g.Get(0, 4))
	assert.Equal(t, 1, g.Get(3, 4))
	assert.Equal(t, 1, g.Len())
	require.NoError(t, g.Validate())

	// Once the anchored cell goes, the header follows.
	g.Remove(3, 4)
	assert.Equal(t, 1, g.Nodes())
	require.NoError(t, g.Validate())
}

func TestPopulatedHeaderSurvivesCellRemoval(t *testing.T) {
	g := load(t, map[rc]int{{0, 4}: 9, {3, 4}: 1, {3, 0}: 2})

	g.Remove(3, 4)
	assert.Equal(t, 9, g.Get(0, 4))
	assert.Equal(t, 2, g.Get(3, 0))
	assert.Equal(t, 3, g.Nodes())
	require.NoError(t, g.Validate())
}

func TestHeadNeverPruned(t *testing.T) {
	g := sparse.New(0)
	g.Set(0, 0, 5)
	assert.Equal(t, 5, g.Get(0, 0))
	assert.Equal(t, 1, g.Len())

	g.Set(0, 0, 0)
	g.Remove(0, 0)
	assert.Equal(t, 0, g.Get(0, 0))
	assert.Equal(t, 1, g.Nodes())
	assert.Equal(t, 0, g.Len())
	require.NoError(t, g.Validate())
}

func TestDualPathConsistency(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	g := sparse.New(0)
	for i := 0; i < 300; i++ {
		g.Set(r.IntN(40), r.IntN(40), 1+r.IntN(9))
	}
	require.NoError(t, g.Validate())

	byRow := map[rc]int{}
	rows := g.Rows()
	for rows.Next() {
		elems := rows.Elems()
		require.True(t, elems.IteratingRow())
		for elems.Next() {
			c := elems.Cell()
			assert.Equal(t, elems.Index(), c.Row)
			byRow[rc{c.Row, c.Col}] = c.Value
		}
	}
	byCol := map[rc]int{}
	cols := g.Columns()
	for cols.Next() {
		elems := cols.Elems()
		require.True(t, elems.IteratingColumn())
		for elems.Next() {
			c := elems.Cell()
			assert.Equal(t, elems.Index(), c.Col)
			byCol[rc{c.Row, c.Col}] = c.Value
		}
	}
	require.Equal(t, byRow, byCol)
	assert.Len(t, byRow, g.Nodes())
	for at, v := range byRow {
		assert.Equal(t, v, g.Get(at.row, at.col), "cell (%d,%d)", at.row, at.col)
	}
}

func TestIteratorsYieldEachNodeOnce(t *testing.T) {
	g := load(t, map[rc]int{{1, 2}: 1, {3, 2}: 1, {3, 4}: 1})

	seen := map[rc]int{}
	rows := g.Rows()
	for rows.Next() {
		elems := rows.Elems()
		for elems.Next() {
			seen[rc{elems.Cell().Row, elems.Cell().Col}]++
		}
	}
	assert.Len(t, seen, g.Nodes())
	for at, n := range seen {
		assert.Equal(t, 1, n, "node (%d,%d)", at.row, at.col)
	}
	// Exhausted iterators stay exhausted.
	assert.False(t, rows.Next())
}

func TestRandomMutationsMatchModel(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	g := sparse.New(0)
	model := map[rc]int{}
	for i := 0; i < 2000; i++ {
		at := rc{r.IntN(12), r.IntN(12)}
		v := r.IntN(3) // zero about a third of the time
		g.Set(at.row, at.col, v)
		if v == 0 {
			delete(model, at)
		} else {
			model[at] = v
		}
		if i%50 == 0 {
			require.NoError(t, g.Validate(), "after %d mutations", i)
		}
	}
	require.NoError(t, g.Validate())
	assert.Equal(t, len(model), g.Len())
	for row := 0; row < 12; row++ {
		for col := 0; col < 12; col++ {
			assert.Equal(t, model[rc{row, col}], g.Get(row, col))
		}
	}

	for at := range model {
		g.Remove(at.row, at.col)
	}
	require.NoError(t, g.Validate())
	assert.Equal(t, 1, g.Nodes())
}

func TestClear(t *testing.T) {
	g := load(t, map[rc]int{{0, 0}: 3, {4, 4}: 1, {2, 7}: 2})
	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 1, g.Nodes())
	assert.Equal(t, 0, g.Get(4, 4))
	require.NoError(t, g.Validate())

	g.Set(4, 4, 1)
	assert.Equal(t, 1, g.Get(4, 4))
	require.NoError(t, g.Validate())
}

func TestString(t *testing.T) {
	g := load(t, map[rc]int{{2, 1}: 5, {1, 3}: 4})
	assert.Equal(t, "row: 1 col: 3 val: 4\nrow: 2 col: 1 val: 5\n", g.String())
}
