package life

import (
	"bufio"
	"fmt"
	"io"
)

// WriteCells writes one "<row>, <col>" line per cell.
func WriteCells(w io.Writer, cells []Coord) error {
	bw := bufio.NewWriter(w)
	for _, c := range cells {
		if _, err := fmt.Fprintf(bw, "%d, %d\n", c.Row, c.Col); err != nil {
			return err
		}
	}
	return bw.Flush()
}
