package game

import (
	"sync"
	"time"

	"github.com/iamasit07/connectx/internal/domain"
	"github.com/iamasit07/connectx/pkg/uid"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	ErrGameFinished  domain.Error = "game is already finished"
	ErrInvalidColumn domain.Error = "invalid column"
)

type Outcome string

const (
	OutcomeContinue Outcome = "continue"
	OutcomeWon      Outcome = "won"
	OutcomeDraw     Outcome = "draw"
)

type SessionConfig struct {
	Rows    int
	Columns int
	InARow  int
	Players []domain.Player
	Options []domain.Option
}

type MoveResult struct {
	Position domain.Position
	Player   domain.Player
	Outcome  Outcome
}

// GameSession wraps a domain.Game with the locking and bookkeeping a front
// end needs. All board changes go through Game.PlayTurn.
type GameSession struct {
	GameID     string
	CreatedAt  time.Time
	FinishedAt time.Time

	game   *domain.Game
	status domain.GameStatus
	winner *domain.Player
	mu     sync.Mutex
}

func NewGameSession(cfg SessionConfig) (*GameSession, error) {
	board, err := domain.NewGameBoard(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}

	g, err := domain.NewGame(cfg.Players, board, cfg.InARow, cfg.Options...)
	if err != nil {
		return nil, err
	}

	gs := &GameSession{
		GameID:    uid.GenerateGameID(),
		CreatedAt: time.Now(),
		game:      g,
		status:    domain.StatusActive,
	}

	logx.Infof("[SESSION] Created session %s: %dx%d board, %d in a row, %d players",
		uid.ShortID(gs.GameID), cfg.Rows, cfg.Columns, cfg.InARow, len(cfg.Players))
	return gs, nil
}

// Play drops the active player's disc in column (0-based) and runs the
// win/draw checks before handing the turn over.
func (gs *GameSession) Play(column int) (MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.status != domain.StatusActive {
		return MoveResult{}, ErrGameFinished
	}

	board := gs.game.Board()
	if column < 0 || column >= board.NbColumns() {
		return MoveResult{}, errors.Wrapf(ErrInvalidColumn, "%d not in [0, %d)", column, board.NbColumns())
	}

	player := gs.game.ActivePlayer()
	if !gs.game.PlayTurn(domain.Column(column)) {
		return MoveResult{}, errors.Wrapf(domain.ErrColumnFull, "column %d", column)
	}

	pos, _ := gs.game.CurrentPosition()
	result := MoveResult{Position: pos, Player: player, Outcome: OutcomeContinue}

	if gs.game.IsWon() {
		gs.finish(domain.StatusWon, &player)
		result.Outcome = OutcomeWon
		logx.Infof("[GAME] %s won session %s at %s after %d turns",
			player.Name(), uid.ShortID(gs.GameID), pos, gs.game.NbOfTurnsPlayed()+1)
		return result, nil
	}

	gs.game.NextTurn()

	if gs.game.IsDraw() {
		gs.finish(domain.StatusDraw, nil)
		result.Outcome = OutcomeDraw
		logx.Infof("[GAME] Session %s ended in a draw", uid.ShortID(gs.GameID))
		return result, nil
	}

	logx.Debugf("[GAME] %s played %s in session %s", player.Name(), pos, uid.ShortID(gs.GameID))
	return result, nil
}

// caller must hold gs.mu
func (gs *GameSession) finish(status domain.GameStatus, winner *domain.Player) {
	gs.status = status
	gs.winner = winner
	gs.FinishedAt = time.Now()
}

func (gs *GameSession) Status() domain.GameStatus {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.status
}

func (gs *GameSession) IsFinished() bool {
	status := gs.Status()
	return status == domain.StatusWon || status == domain.StatusDraw
}

func (gs *GameSession) finishedAt() time.Time {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.FinishedAt
}
