package game

import "math/rand"

// Grid is the playing field. Width and Height are in logical units and are
// multiples of CellSize.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g Grid) IsAligned(p Position) bool {
	return p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Center is the cell holding the middle of the screen.
func (g Grid) Center() Position {
	return Position{
		X: (g.Width / 2) / g.CellSize * g.CellSize,
		Y: (g.Height / 2) / g.CellSize * g.CellSize,
	}
}

// Cell converts a position to column and row indexes.
func (g Grid) Cell(p Position) (col int, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

func (g Grid) PositionOf(col, row int) Position {
	return Position{X: col * g.CellSize, Y: row * g.CellSize}
}

func (g Grid) RandomCell(rng *rand.Rand) Position {
	return g.PositionOf(rng.Intn(g.Columns()), rng.Intn(g.Rows()))
}
