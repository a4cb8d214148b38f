package domain

// direction is a unit step on the grid
type direction struct {
	dRow Row
	dCol Column
}

func (d direction) opposite() direction {
	return direction{dRow: -d.dRow, dCol: -d.dCol}
}

// axes are the four lines a run can lie on; each one is walked both ways
var axes = [...]direction{
	{dRow: 0, dCol: 1},  // horizontal
	{dRow: 1, dCol: 0},  // vertical
	{dRow: 1, dCol: 1},  // diagonal /
	{dRow: -1, dCol: 1}, // diagonal \
}

// countInDirection counts the discs equal to disc starting next to from and
// walking along d, stopping at the edge or the first different cell.
// limit caps the walk since nothing past inARow changes the answer.
func (b *GameBoard) countInDirection(from Position, d direction, disc Disc, limit int) int {
	count := 0
	p := from.step(d)
	for count < limit && b.contains(p) && b.cells[p.Row][p.Column] == disc {
		count++
		p = p.step(d)
	}
	return count
}

// IsWinner checks, for position only, whether a run of at least inARow
// identical discs passes through it. Only the lines through the last placed
// disc can have changed, so the rest of the board is not scanned.
func (b *GameBoard) IsWinner(position Position, inARow int) bool {
	precondition(b.contains(position), "position %s outside %dx%d board", position, b.nbRows, b.nbColumns)
	precondition(inARow >= 1, "in-a-row must be positive, got %d", inARow)

	disc := b.cells[position.Row][position.Column]
	if disc.IsEmpty() {
		return false
	}

	for _, d := range axes {
		count := 1 +
			b.countInDirection(position, d, disc, inARow) +
			b.countInDirection(position, d.opposite(), disc, inARow)
		if count >= inARow {
			return true
		}
	}
	return false
}

// WinningLine returns the full run through position on the first axis that
// reaches inARow, ordered from one end to the other. It returns nil when
// position is not a winner.
func (b *GameBoard) WinningLine(position Position, inARow int) []Position {
	precondition(b.contains(position), "position %s outside %dx%d board", position, b.nbRows, b.nbColumns)

	disc := b.cells[position.Row][position.Column]
	if disc.IsEmpty() {
		return nil
	}

	for _, d := range axes {
		back := b.countInDirection(position, d.opposite(), disc, b.NbPositions())
		forward := b.countInDirection(position, d, disc, b.NbPositions())
		if 1+back+forward < inARow {
			continue
		}

		start := position
		for i := 0; i < back; i++ {
			start = start.step(d.opposite())
		}
		line := make([]Position, 0, 1+back+forward)
		for p, i := start, 0; i <= back+forward; i++ {
			line = append(line, p)
			p = p.step(d)
		}
		return line
	}
	return nil
}
