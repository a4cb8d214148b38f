package game

import "github.com/iamasit07/connectx/internal/domain"

// View is a consistent, read-only copy of a session, safe to hand to a
// renderer running elsewhere.
type View struct {
	GameID       string
	Rows         int
	Columns      int
	InARow       int
	Grid         [][]domain.Disc // [row][column], row 0 at the bottom
	Players      []domain.Player
	ActivePlayer domain.Player
	NextPlayer   domain.Player
	TurnsPlayed  int
	Status       domain.GameStatus
	Winner       *domain.Player
	LastMove     *domain.Position
	WinningLine  []domain.Position
}

func (gs *GameSession) View() View {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	board := gs.game.Board()
	v := View{
		GameID:       gs.GameID,
		Rows:         board.NbRows(),
		Columns:      board.NbColumns(),
		InARow:       gs.game.InARow(),
		Grid:         board.Snapshot(),
		Players:      gs.game.Players(),
		ActivePlayer: gs.game.ActivePlayer(),
		NextPlayer:   gs.game.NextPlayer(),
		TurnsPlayed:  gs.game.NbOfTurnsPlayed(),
		Status:       gs.status,
	}

	if pos, ok := gs.game.CurrentPosition(); ok {
		v.LastMove = &pos
	}
	if gs.winner != nil {
		w := *gs.winner
		v.Winner = &w
		v.WinningLine = gs.game.WinningLine()
	}
	return v
}

// IsWinningCell reports whether p is part of the winning run.
func (v View) IsWinningCell(p domain.Position) bool {
	for _, w := range v.WinningLine {
		if w == p {
			return true
		}
	}
	return false
}
