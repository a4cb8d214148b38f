package domain

const (
	DefaultRows    = 6
	DefaultColumns = 7
	DefaultInARow  = 4

	// smallest run that still makes a game out of it
	MinInARow = 2
	// players needed to take turns
	MinPlayers = 2
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull       Error = "column is full"
	ErrInvalidBoardSize Error = "invalid board size"
	ErrInvalidInARow    Error = "invalid in-a-row value"
	ErrNotEnoughPlayers Error = "not enough players"
	ErrDuplicateDisc    Error = "two players share the same disc"
	ErrNoDisc           Error = "player needs a colored disc"
	ErrEmptyPlayerName  Error = "player name is empty"
	ErrNilBoard         Error = "game needs a board"
)
