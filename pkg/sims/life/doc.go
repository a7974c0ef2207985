// Package life runs a Game of Life variant on sparse grids.
//
// Live cells are kept in a sparse.Grid, so one generation costs time in
// proportion to the live population rather than the board area. A step makes
// three passes: count neighbours of every live cell into a fresh grid, apply
// the survival/birth rule to every counted cell, then adopt the result as the
// new live grid.
//
// Two points differ from textbook Conway:
//
//   - The default neighbourhood is Orthogonal: only the four cells sharing an
//     edge are counted. Moore (eight neighbours) is available as an option.
//   - The board is a finite window [0,Height] x [0,Width], sized from the seed
//     by BoundsFor. Neighbours falling outside the window are dropped, not
//     wrapped, so patterns that drift off the window vanish.
package life
