package domain

import "github.com/pkg/errors"

// Game runs the turn order of a match over one board.
//
// PlayTurn only places a disc; NextTurn moves on to the next player. Callers
// check IsWon and IsDraw in between:
//
//	if g.PlayTurn(col) {
//		if g.IsWon() { ... }
//		g.NextTurn()
//		if g.IsDraw() { ... }
//	}
//
// A Game is not safe for concurrent use.
type Game struct {
	players []Player
	board   *GameBoard
	inARow  int

	turn    int // index into players
	nbTurns int

	current   Position
	hasPlayed bool
}

type gameOptions struct {
	inclusiveBound bool
}

type Option func(*gameOptions)

// WithInclusiveInARowBound allows inARow to equal the smallest board
// dimension. By default it must be strictly smaller.
func WithInclusiveInARowBound() Option {
	return func(o *gameOptions) {
		o.inclusiveBound = true
	}
}

// MaxInARow returns the largest inARow a board accepts under the given bound.
func MaxInARow(board *GameBoard, inclusive bool) int {
	limit := min(board.NbRows(), board.NbColumns())
	if inclusive {
		return limit
	}
	return limit - 1
}

func NewGame(players []Player, board *GameBoard, inARow int, opts ...Option) (*Game, error) {
	var o gameOptions
	for _, opt := range opts {
		opt(&o)
	}

	if board == nil {
		return nil, ErrNilBoard
	}
	if len(players) < MinPlayers {
		return nil, errors.Wrapf(ErrNotEnoughPlayers, "got %d, need at least %d", len(players), MinPlayers)
	}

	seen := make(map[Disc]string, len(players))
	for _, p := range players {
		if p.Disc().IsEmpty() {
			return nil, errors.Wrapf(ErrNoDisc, "player %q", p.Name())
		}
		if other, ok := seen[p.Disc()]; ok {
			return nil, errors.Wrapf(ErrDuplicateDisc, "%q and %q both use %s", other, p.Name(), p.Disc())
		}
		seen[p.Disc()] = p.Name()
	}

	if limit := MaxInARow(board, o.inclusiveBound); inARow < MinInARow || inARow > limit {
		return nil, errors.Wrapf(ErrInvalidInARow, "%d not in [%d, %d] for a %dx%d board",
			inARow, MinInARow, limit, board.NbRows(), board.NbColumns())
	}

	g := &Game{
		players: append([]Player(nil), players...),
		board:   board,
		inARow:  inARow,
	}
	g.checkInvariant()
	return g, nil
}

// PlayTurn drops the active player's disc in column. It returns false, and
// changes nothing, when the column is full.
func (g *Game) PlayTurn(column Column) bool {
	precondition(g.board.validColumn(column), "column %d outside [0, %d)", column, g.board.NbColumns())

	if g.board.IsColumnFull(column) {
		return false
	}

	pos, err := g.board.PlaceDisc(column, g.ActivePlayer().Disc())
	if err != nil {
		// IsColumnFull said otherwise, so the board was changed behind our back
		invariant(false, "placing in column %d: %v", column, err)
		return false
	}

	g.current = pos
	g.hasPlayed = true
	g.checkInvariant()
	return true
}

// NextTurn hands the move to the next player. The turn counter stops at the
// board capacity.
func (g *Game) NextTurn() {
	if g.nbTurns < g.board.NbPositions() {
		g.nbTurns++
	}
	g.turn = (g.turn + 1) % len(g.players)
	g.checkInvariant()
}

// IsWon only looks at the last placed disc; call it after a successful
// PlayTurn and before the next one.
func (g *Game) IsWon() bool {
	if !g.hasPlayed {
		return false
	}
	return g.board.IsWinner(g.current, g.inARow)
}

// IsDraw reports whether the board capacity has been reached. It does not
// look for a winning line, so check IsWon first.
func (g *Game) IsDraw() bool {
	return g.nbTurns == g.board.NbPositions()
}

// WinningLine returns the cells of the winning run through the last placed
// disc, or nil.
func (g *Game) WinningLine() []Position {
	if !g.hasPlayed {
		return nil
	}
	return g.board.WinningLine(g.current, g.inARow)
}

func (g *Game) ActivePlayer() Player {
	return g.players[g.turn]
}

// NextPlayer is the player whose disc comes after the active one.
func (g *Game) NextPlayer() Player {
	return g.players[(g.turn+1)%len(g.players)]
}

func (g *Game) InARow() int {
	return g.inARow
}

func (g *Game) CurrentTurn() int {
	return g.turn
}

func (g *Game) NbOfTurnsPlayed() int {
	return g.nbTurns
}

// CurrentPosition is where the last disc landed; ok is false before the
// first successful PlayTurn.
func (g *Game) CurrentPosition() (pos Position, ok bool) {
	return g.current, g.hasPlayed
}

func (g *Game) Players() []Player {
	return append([]Player(nil), g.players...)
}

// Board gives read access to the board. Mutating it directly desynchronizes
// the turn bookkeeping; go through PlayTurn.
func (g *Game) Board() *GameBoard {
	return g.board
}

func (g *Game) checkInvariant() {
	if !ContractChecksEnabled() {
		return
	}

	invariant(len(g.players) >= MinPlayers, "%d players", len(g.players))
	invariant(g.inARow >= MinInARow && g.inARow <= MaxInARow(g.board, true), "in-a-row %d", g.inARow)
	invariant(g.nbTurns >= 0 && g.nbTurns <= g.board.NbPositions(), "%d turns played on %d positions", g.nbTurns, g.board.NbPositions())
	invariant(g.turn >= 0 && g.turn < len(g.players), "turn %d with %d players", g.turn, len(g.players))
}
