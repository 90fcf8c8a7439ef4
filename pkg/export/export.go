// Package export serializes binary stitch grids into the text table format
// consumed by crafting tools: one comma-separated row per grid row, "X" for
// filled stitches and "O" for empty ones.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

// Encode writes the grid to w, row-major, cells comma-separated and rows
// newline-separated.
func Encode(w io.Writer, grid pattern.BinaryGrid) error {
	for _, row := range grid {
		cells := make([]string, len(row))
		for x, cell := range row {
			if cell == 1 {
				cells[x] = "X"
			} else {
				cells[x] = "O"
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, ",")); err != nil {
			return fmt.Errorf("writing pattern row: %w", err)
		}
	}
	return nil
}

// String renders the grid to the export text format.
func String(grid pattern.BinaryGrid) string {
	var sb strings.Builder
	_ = Encode(&sb, grid)
	return sb.String()
}

// Filename returns the conventional export name for a grid of the given
// dimensions, pattern_{width}x{height}.csv.
func Filename(dims pattern.GridDimensions) string {
	return fmt.Sprintf("pattern_%dx%d.csv", dims.Width, dims.Height)
}
