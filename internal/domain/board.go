package domain

import "github.com/pkg/errors"

// GameBoard is a grid of discs where row 0 is the bottom row. Discs fall to
// the lowest empty cell of the column they are dropped in.
//
// A GameBoard is not safe for concurrent use.
type GameBoard struct {
	nbRows    int
	nbColumns int
	cells     [][]Disc // cells[row][column]
}

func NewGameBoard(nbRows, nbColumns int) (*GameBoard, error) {
	if nbRows < 1 || nbColumns < 1 {
		return nil, errors.Wrapf(ErrInvalidBoardSize, "%d rows x %d columns", nbRows, nbColumns)
	}

	cells := make([][]Disc, nbRows)
	for i := range cells {
		cells[i] = make([]Disc, nbColumns)
		for j := range cells[i] {
			cells[i][j] = NoDisc
		}
	}

	b := &GameBoard{
		nbRows:    nbRows,
		nbColumns: nbColumns,
		cells:     cells,
	}
	b.checkInvariant()
	return b, nil
}

func (b *GameBoard) NbRows() int {
	return b.nbRows
}

func (b *GameBoard) NbColumns() int {
	return b.nbColumns
}

// NbPositions is the total number of cells on the board.
func (b *GameBoard) NbPositions() int {
	return b.nbRows * b.nbColumns
}

func (b *GameBoard) validColumn(column Column) bool {
	return column >= 0 && int(column) < b.nbColumns
}

func (b *GameBoard) validRow(row Row) bool {
	return row >= 0 && int(row) < b.nbRows
}

func (b *GameBoard) contains(p Position) bool {
	return b.validRow(p.Row) && b.validColumn(p.Column)
}

func (b *GameBoard) IsColumnFull(column Column) bool {
	precondition(b.validColumn(column), "column %d outside [0, %d)", column, b.nbColumns)

	return !b.cells[b.nbRows-1][column].IsEmpty()
}

// IsFull reports whether every column is full.
func (b *GameBoard) IsFull() bool {
	for c := 0; c < b.nbColumns; c++ {
		if !b.IsColumnFull(Column(c)) {
			return false
		}
	}
	return true
}

// ColumnHeight returns the number of discs stacked in column.
func (b *GameBoard) ColumnHeight(column Column) int {
	precondition(b.validColumn(column), "column %d outside [0, %d)", column, b.nbColumns)

	for row := 0; row < b.nbRows; row++ {
		if b.cells[row][column].IsEmpty() {
			return row
		}
	}
	return b.nbRows
}

// PlaceDisc drops disc in column and returns where it landed. A full column
// is left untouched and ErrColumnFull is returned.
func (b *GameBoard) PlaceDisc(column Column, disc Disc) (Position, error) {
	precondition(b.validColumn(column), "column %d outside [0, %d)", column, b.nbColumns)
	precondition(!disc.IsEmpty(), "cannot place an empty disc")

	row := b.ColumnHeight(column)
	if row == b.nbRows {
		return Position{}, errors.Wrapf(ErrColumnFull, "column %d", column)
	}

	b.cells[row][column] = disc
	landed := NewPosition(Row(row), column)

	postcondition(b.cells[row][column] == disc, "disc not written at %s", landed)
	b.checkInvariant()
	return landed, nil
}

func (b *GameBoard) DiscAt(p Position) Disc {
	precondition(b.contains(p), "position %s outside %dx%d board", p, b.nbRows, b.nbColumns)

	return b.cells[p.Row][p.Column]
}

// Snapshot returns a deep copy of the grid, indexed [row][column] with row 0
// at the bottom.
func (b *GameBoard) Snapshot() [][]Disc {
	grid := make([][]Disc, len(b.cells))
	for i := range b.cells {
		grid[i] = make([]Disc, len(b.cells[i]))
		copy(grid[i], b.cells[i])
	}
	return grid
}

// checkInvariant verifies the grid shape and that no column has a gap below
// an occupied cell.
func (b *GameBoard) checkInvariant() {
	if !ContractChecksEnabled() {
		return
	}

	invariant(len(b.cells) == b.nbRows, "grid has %d rows, want %d", len(b.cells), b.nbRows)
	for row := range b.cells {
		invariant(len(b.cells[row]) == b.nbColumns, "row %d has %d columns, want %d", row, len(b.cells[row]), b.nbColumns)
	}

	for column := 0; column < b.nbColumns; column++ {
		for row := 1; row < b.nbRows; row++ {
			if !b.cells[row][column].IsEmpty() {
				invariant(!b.cells[row-1][column].IsEmpty(), "gap below row %d in column %d", row, column)
			}
		}
	}
}
