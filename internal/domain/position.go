package domain

import "fmt"

// Row counts from the bottom of the board, starting at 0.
type Row int

// Column counts from the left of the board, starting at 0.
type Column int

type Position struct {
	Row    Row
	Column Column
}

func NewPosition(row Row, column Column) Position {
	return Position{Row: row, Column: column}
}

// step moves the position by a direction vector
func (p Position) step(d direction) Position {
	return Position{Row: p.Row + d.dRow, Column: p.Column + d.dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(row %d, column %d)", p.Row, p.Column)
}
