// Package tetris implements the falling-block puzzle engine: the playfield
// grid, the tetromino piece model, and the tick-driven update loop. The
// package contains pure game logic with no platform dependencies.
package tetris

import (
	"errors"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Standard playfield dimensions. The board size is a fixed constant of the
// game, not runtime configuration.
const (
	Cols = 10
	Rows = 20
)

// ErrInvalidDimensions is returned by NewGrid for non-positive dimensions.
var ErrInvalidDimensions = errors.New("tetris: grid dimensions must be positive")

// CellPos is a board coordinate (column, row). Row 0 is the top of the board.
type CellPos struct {
	Col, Row int
}

// Grid is the board of locked cells. Grids have value semantics: Merge and
// RemoveFullRows return new grids and never mutate the receiver, so a Grid
// held by a snapshot stays valid across later updates.
type Grid struct {
	cols, rows int
	cells      [][]core.Color // cells[row][col], ColorDefault marks empty
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(cols, rows int) (Grid, error) {
	if cols <= 0 || rows <= 0 {
		return Grid{}, ErrInvalidDimensions
	}
	cells := make([][]core.Color, rows)
	for r := range cells {
		cells[r] = make([]core.Color, cols)
	}
	return Grid{cols: cols, rows: rows, cells: cells}, nil
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// IsOccupied reports whether the cell at (col, row) holds a locked block.
// Coordinates outside the board count as occupied, so collision checks
// against walls and floor need no edge special-casing.
func (g Grid) IsOccupied(col, row int) bool {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return true
	}
	return g.cells[row][col] != core.ColorDefault
}

// ColorAt returns the color of the locked cell at (col, row) and whether the
// cell is occupied. Out-of-bounds coordinates report an unoccupied default.
func (g Grid) ColorAt(col, row int) (core.Color, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return core.ColorDefault, false
	}
	c := g.cells[row][col]
	return c, c != core.ColorDefault
}

// clone returns a deep copy of the grid's cell storage.
func (g Grid) clone() Grid {
	cells := make([][]core.Color, g.rows)
	for r := range cells {
		cells[r] = make([]core.Color, g.cols)
		copy(cells[r], g.cells[r])
	}
	return Grid{cols: g.cols, rows: g.rows, cells: cells}
}

// Merge returns a new grid with the given cells marked occupied in the given
// color. Cells must lie within bounds; callers only merge positions that
// already passed collision checks.
func (g Grid) Merge(cells []CellPos, color core.Color) Grid {
	merged := g.clone()
	for _, c := range cells {
		merged.cells[c.Row][c.Col] = color
	}
	return merged
}

// RemoveFullRows returns the number of completely occupied rows and a new
// grid with those rows removed. Rows above the removed ones shift down and
// the vacated rows at the top are left empty. Removal is logically
// simultaneous, so the result does not depend on scan order.
func (g Grid) RemoveFullRows() (int, Grid) {
	kept := make([][]core.Color, 0, g.rows)
	removed := 0

	for r := 0; r < g.rows; r++ {
		if g.rowFull(r) {
			removed++
			continue
		}
		row := make([]core.Color, g.cols)
		copy(row, g.cells[r])
		kept = append(kept, row)
	}

	if removed == 0 {
		return 0, g
	}

	cells := make([][]core.Color, 0, g.rows)
	for i := 0; i < removed; i++ {
		cells = append(cells, make([]core.Color, g.cols))
	}
	cells = append(cells, kept...)

	return removed, Grid{cols: g.cols, rows: g.rows, cells: cells}
}

// rowFull reports whether every cell in row r is occupied.
func (g Grid) rowFull(r int) bool {
	for c := 0; c < g.cols; c++ {
		if g.cells[r][c] == core.ColorDefault {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of locked cells, used by snapshots.
func (g Grid) OccupiedCount() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != core.ColorDefault {
				n++
			}
		}
	}
	return n
}
