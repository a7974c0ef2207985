// Package sparse stores a two-dimensional grid in which only cells holding a
// non-default value are materialised.
//
// Every node sits on two singly-linked chains: its row (same row, increasing
// column) and its column (same column, increasing row). A permanent head node
// at (0,0) anchors the structure. The head's row chain links one header per
// populated column, placed at (col,0); the head's column chain links one header
// per populated row, placed at (0,row). Any populated cell is therefore
// reachable through its column header and through its row header, and both
// walks end on the same node.
//
// Nodes live in an arena slice and reference each other by index, so one
// logical cell is shared by both chains without pointer aliasing. Removing a
// cell unlinks it from both chains and prunes any header left holding the
// default value with nothing below or beside it.
//
// Costs:
//
//   - Get, Set, Remove: linear in the populated columns before col plus the
//     populated rows before row (no dependence on the numeric extent).
//   - Rows, Columns: linear in the number of nodes.
//
// A Grid is not safe for concurrent use. Iterators are invalidated by any
// mutating call on the grid they came from.
package sparse
