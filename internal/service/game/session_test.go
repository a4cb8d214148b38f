package game

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/iamasit07/connectx/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

func classicConfig(t *testing.T) SessionConfig {
	t.Helper()
	red, err := domain.NewPlayer("Red", domain.NewDisc(domain.Red))
	require.NoError(t, err)
	yellow, err := domain.NewPlayer("Yellow", domain.NewDisc(domain.Yellow))
	require.NoError(t, err)

	return SessionConfig{
		Rows:    domain.DefaultRows,
		Columns: domain.DefaultColumns,
		InARow:  domain.DefaultInARow,
		Players: []domain.Player{red, yellow},
	}
}

func newSession(t *testing.T) *GameSession {
	t.Helper()
	gs, err := NewGameSession(classicConfig(t))
	require.NoError(t, err)
	return gs
}

func TestNewGameSessionValidates(t *testing.T) {
	cfg := classicConfig(t)
	cfg.InARow = 9
	_, err := NewGameSession(cfg)
	assert.True(t, errors.Is(err, domain.ErrInvalidInARow))

	cfg = classicConfig(t)
	cfg.Rows = 0
	_, err = NewGameSession(cfg)
	assert.True(t, errors.Is(err, domain.ErrInvalidBoardSize))

	cfg = classicConfig(t)
	cfg.Players = cfg.Players[:1]
	_, err = NewGameSession(cfg)
	assert.True(t, errors.Is(err, domain.ErrNotEnoughPlayers))
}

func TestPlayToAWin(t *testing.T) {
	gs := newSession(t)

	for _, c := range []int{0, 0, 1, 1, 2, 2} {
		res, err := gs.Play(c)
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, res.Outcome)
	}

	res, err := gs.Play(3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, res.Outcome)
	assert.Equal(t, "Red", res.Player.Name())
	assert.Equal(t, domain.NewPosition(0, 3), res.Position)
	assert.Equal(t, domain.StatusWon, gs.Status())
	assert.True(t, gs.IsFinished())
	assert.False(t, gs.FinishedAt.IsZero())

	_, err = gs.Play(4)
	assert.Equal(t, ErrGameFinished, err)

	v := gs.View()
	require.NotNil(t, v.Winner)
	assert.Equal(t, "Red", v.Winner.Name())
	assert.Len(t, v.WinningLine, 4)
	assert.True(t, v.IsWinningCell(domain.NewPosition(0, 0)))
	assert.False(t, v.IsWinningCell(domain.NewPosition(1, 0)))
}

func TestPlayErrors(t *testing.T) {
	gs := newSession(t)

	_, err := gs.Play(-1)
	assert.True(t, errors.Is(err, ErrInvalidColumn))
	_, err = gs.Play(7)
	assert.True(t, errors.Is(err, ErrInvalidColumn))

	for i := 0; i < 6; i++ {
		_, err := gs.Play(6)
		require.NoError(t, err)
	}

	before := gs.View()
	_, err = gs.Play(6)
	assert.True(t, errors.Is(err, domain.ErrColumnFull))
	assert.Equal(t, before, gs.View())
}

func TestPlayToADraw(t *testing.T) {
	gs := newSession(t)
	moves := []int{
		5, 4, 5, 0, 6, 2, 4, 5, 5, 0, 4, 1, 1, 0, 4, 5, 6, 5, 3, 1, 1,
		2, 2, 6, 2, 6, 6, 3, 6, 2, 0, 3, 0, 3, 3, 4, 3, 1, 4, 2, 1, 0,
	}

	var res MoveResult
	for _, c := range moves {
		var err error
		res, err = gs.Play(c)
		require.NoError(t, err)
	}

	assert.Equal(t, OutcomeDraw, res.Outcome)
	assert.Equal(t, domain.StatusDraw, gs.Status())

	v := gs.View()
	assert.Nil(t, v.Winner)
	assert.Empty(t, v.WinningLine)
	assert.Equal(t, 42, v.TurnsPlayed)
}

func TestViewIsACopy(t *testing.T) {
	gs := newSession(t)
	_, err := gs.Play(3)
	require.NoError(t, err)

	v := gs.View()
	assert.Equal(t, 6, v.Rows)
	assert.Equal(t, 7, v.Columns)
	assert.Equal(t, 4, v.InARow)
	assert.Equal(t, "Yellow", v.ActivePlayer.Name())
	assert.Equal(t, "Red", v.NextPlayer.Name())
	require.NotNil(t, v.LastMove)
	assert.Equal(t, domain.NewPosition(0, 3), *v.LastMove)

	v.Grid[0][3] = domain.NoDisc
	assert.Equal(t, domain.NewDisc(domain.Red), gs.View().Grid[0][3])
}

func TestConcurrentPlay(t *testing.T) {
	gs := newSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(c int) {
			defer wg.Done()
			gs.Play(c % 7)
		}(i)
		go func() {
			defer wg.Done()
			gs.View()
		}()
	}
	wg.Wait()

	v := gs.View()
	discs := 0
	for _, row := range v.Grid {
		for _, d := range row {
			if !d.IsEmpty() {
				discs++
			}
		}
	}
	// a win stops the match early, so only the count relation is fixed
	if v.Status == domain.StatusWon {
		assert.Equal(t, v.TurnsPlayed+1, discs)
	} else {
		assert.Equal(t, v.TurnsPlayed, discs)
	}
}

func TestSessionManager(t *testing.T) {
	sm := NewSessionManager()

	gs, err := sm.CreateSession(classicConfig(t))
	require.NoError(t, err)

	got, ok := sm.GetSessionByGameID(gs.GameID)
	assert.True(t, ok)
	assert.Same(t, gs, got)
	assert.Len(t, sm.ActiveSessions(), 1)

	for _, c := range []int{0, 1, 0, 1, 0, 1, 0} {
		_, err := gs.Play(c)
		require.NoError(t, err)
	}
	assert.True(t, gs.IsFinished())
	assert.Empty(t, sm.ActiveSessions())

	assert.Equal(t, 0, sm.CleanupFinishedSessions(time.Hour))
	assert.Equal(t, 1, sm.CleanupFinishedSessions(0))
	_, ok = sm.GetSessionByGameID(gs.GameID)
	assert.False(t, ok)

	assert.Error(t, sm.RemoveSession(gs.GameID))

	cfg := classicConfig(t)
	cfg.Columns = 0
	_, err = sm.CreateSession(cfg)
	assert.Error(t, err)
	assert.Empty(t, sm.Session)
}

func TestRemoveSession(t *testing.T) {
	sm := NewSessionManager()
	gs, err := sm.CreateSession(classicConfig(t))
	require.NoError(t, err)

	assert.NoError(t, sm.RemoveSession(gs.GameID))
	assert.Empty(t, sm.Session)
}
