package model

import "fmt"

// Position is a cell coordinate on a map grid.
// Value type, passed by value.
type Position struct {
	X int
	Y int
}

// Pos creates a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
