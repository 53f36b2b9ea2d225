package tetris

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrIllegalMove is the expected, recoverable outcome of every move or
// rotate attempt that would overlap a wall, the floor, or a locked cell.
// Callers treat it as "leave state unchanged".
var ErrIllegalMove = errors.New("tetris: illegal move")

// Shape identifies one of the seven standard tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	NumShapes
)

// String returns the conventional one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color for the shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorBrightCyan
	case ShapeO:
		return core.ColorBrightYellow
	case ShapeT:
		return core.ColorBrightMagenta
	case ShapeS:
		return core.ColorBrightGreen
	case ShapeZ:
		return core.ColorBrightRed
	case ShapeJ:
		return core.ColorBrightBlue
	case ShapeL:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// RotationStates is the number of 90-degree orientations. Symmetric shapes
// repeat states; the cycle length is always 4.
const RotationStates = 4

// baseShapes holds each tetromino in its spawn orientation as a square
// occupancy matrix.
var baseShapes = [NumShapes][][]bool{
	ShapeI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	ShapeO: {
		{true, true},
		{true, true},
	},
	ShapeT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	ShapeS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	ShapeZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	ShapeJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	ShapeL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
}

// shapeOffsets caches, for every shape and rotation state, the cell offsets
// relative to the piece anchor. Built once at package init by repeated
// matrix rotation, so all four states are total for every shape.
var shapeOffsets [NumShapes][RotationStates][]CellPos

func init() {
	for s := Shape(0); s < NumShapes; s++ {
		m := baseShapes[s]
		for r := 0; r < RotationStates; r++ {
			shapeOffsets[s][r] = matrixOffsets(m)
			m = rotateMatrix(m)
		}
	}
}

// matrixOffsets collects the occupied positions of a shape matrix.
func matrixOffsets(m [][]bool) []CellPos {
	var cells []CellPos
	for y, row := range m {
		for x, filled := range row {
			if filled {
				cells = append(cells, CellPos{Col: x, Row: y})
			}
		}
	}
	return cells
}

// rotateMatrix returns the matrix rotated 90 degrees clockwise.
func rotateMatrix(m [][]bool) [][]bool {
	n := len(m)
	rotated := make([][]bool, n)
	for i := range rotated {
		rotated[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rotated[j][n-1-i] = m[i][j]
		}
	}
	return rotated
}

// Piece is the active falling tetromino: shape, orientation, and anchor
// position in grid coordinates. Pieces have value semantics; movement
// operations return a translated copy and never mutate in place.
type Piece struct {
	Shape    Shape
	Rotation int // 0..RotationStates-1
	Col, Row int // anchor = top-left of the shape matrix
}

// NewPiece creates a piece of the given shape at its canonical spawn
// position: horizontally centered at the top of the board, default rotation.
func NewPiece(s Shape) Piece {
	width := len(baseShapes[s][0])
	return Piece{
		Shape: s,
		Col:   Cols/2 - width/2,
		Row:   0,
	}
}

// RandomPiece selects a shape uniformly from the standard set using the
// given generator. The generator is owned by the game state and advanced by
// exactly one draw per call, keeping piece sequences reproducible per seed.
func RandomPiece(rng *rand.Rand) Piece {
	return NewPiece(Shape(rng.Intn(int(NumShapes))))
}

// Cells returns the absolute board coordinates the piece occupies, computed
// from shape, rotation, and anchor.
func (p Piece) Cells() []CellPos {
	offsets := shapeOffsets[p.Shape][p.Rotation]
	cells := make([]CellPos, len(offsets))
	for i, o := range offsets {
		cells[i] = CellPos{Col: p.Col + o.Col, Row: p.Row + o.Row}
	}
	return cells
}

// CollidesWith reports whether any cell of the piece overlaps a locked cell
// or lies outside the board. Used for movement legality and for game-over
// detection at spawn time.
func (p Piece) CollidesWith(g Grid) bool {
	for _, c := range p.Cells() {
		if g.IsOccupied(c.Col, c.Row) {
			return true
		}
	}
	return false
}

// MoveX returns the piece shifted dCol columns if the new position is free,
// or ErrIllegalMove with the original piece unchanged.
func (p Piece) MoveX(dCol int, g Grid) (Piece, error) {
	moved := p
	moved.Col += dCol
	if moved.CollidesWith(g) {
		return p, ErrIllegalMove
	}
	return moved, nil
}

// MoveY returns the piece shifted dRow rows if the new position is free,
// or ErrIllegalMove with the original piece unchanged. Gravity and manual
// drops both go through here.
func (p Piece) MoveY(dRow int, g Grid) (Piece, error) {
	moved := p
	moved.Row += dRow
	if moved.CollidesWith(g) {
		return p, ErrIllegalMove
	}
	return moved, nil
}

// Rotate returns the piece advanced one rotation state (wrapping) if the
// rotated cells are free, or ErrIllegalMove with the original unchanged.
// There is no wall-kick nudging: a rotation that would collide fails.
func (p Piece) Rotate(g Grid) (Piece, error) {
	rotated := p
	rotated.Rotation = (p.Rotation + 1) % RotationStates
	if rotated.CollidesWith(g) {
		return p, ErrIllegalMove
	}
	return rotated, nil
}

// MergeInto returns a new grid with the piece's cells locked in. Called
// exactly once per piece, at lock time, after collision checks passed.
func (p Piece) MergeInto(g Grid) Grid {
	return g.Merge(p.Cells(), p.Shape.Color())
}
