package game

// Position is the top-left corner of a cell in logical screen units.
type Position struct {
	X, Y int
}

func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.Dx, Y: p.Y + d.Dy}
}

// Direction is a per-tick velocity. Unit directions are scaled by the cell size
// before they are applied to a Position.
type Direction struct {
	Dx, Dy int
}

var (
	DirectionLeft  = Direction{Dx: -1, Dy: 0}
	DirectionRight = Direction{Dx: 1, Dy: 0}
	DirectionUp    = Direction{Dx: 0, Dy: -1}
	DirectionDown  = Direction{Dx: 0, Dy: 1}
)

var Directions = []Direction{
	DirectionRight,
	DirectionDown,
	DirectionLeft,
	DirectionUp,
}

func (d Direction) Scale(n int) Direction {
	return Direction{Dx: d.Dx * n, Dy: d.Dy * n}
}

func (d Direction) IsZero() bool {
	return d.Dx == 0 && d.Dy == 0
}

// Unit reduces a scaled direction back to its sign.
func (d Direction) Unit() Direction {
	return Direction{Dx: sign(d.Dx), Dy: sign(d.Dy)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func GetManhattanDistance(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
