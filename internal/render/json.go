package render

import (
	"github.com/bytedance/sonic"
	"github.com/iamasit07/connectx/internal/domain"
	"github.com/iamasit07/connectx/internal/service/game"
)

type playerJSON struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type positionJSON struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type snapshotJSON struct {
	GameID      string         `json:"gameId"`
	Rows        int            `json:"rows"`
	Columns     int            `json:"columns"`
	InARow      int            `json:"inARow"`
	Board       [][]string     `json:"board"` // row 0 first, "" for empty
	Players     []playerJSON   `json:"players"`
	Active      playerJSON     `json:"activePlayer"`
	Next        playerJSON     `json:"nextPlayer"`
	TurnsPlayed int            `json:"turnsPlayed"`
	Status      string         `json:"status"`
	Winner      *playerJSON    `json:"winner,omitempty"`
	LastMove    *positionJSON  `json:"lastMove,omitempty"`
	WinningLine []positionJSON `json:"winningLine,omitempty"`
}

func toPlayerJSON(p domain.Player) playerJSON {
	return playerJSON{Name: p.Name(), Color: p.Disc().Color().String()}
}

func toPositionJSON(p domain.Position) positionJSON {
	return positionJSON{Row: int(p.Row), Column: int(p.Column)}
}

// JSON encodes a view as a snapshot document.
func JSON(v game.View) ([]byte, error) {
	snap := snapshotJSON{
		GameID:      v.GameID,
		Rows:        v.Rows,
		Columns:     v.Columns,
		InARow:      v.InARow,
		Board:       make([][]string, len(v.Grid)),
		Players:     make([]playerJSON, 0, len(v.Players)),
		Active:      toPlayerJSON(v.ActivePlayer),
		Next:        toPlayerJSON(v.NextPlayer),
		TurnsPlayed: v.TurnsPlayed,
		Status:      string(v.Status),
	}

	for i, row := range v.Grid {
		snap.Board[i] = make([]string, len(row))
		for j, d := range row {
			if !d.IsEmpty() {
				snap.Board[i][j] = d.Color().String()
			}
		}
	}
	for _, p := range v.Players {
		snap.Players = append(snap.Players, toPlayerJSON(p))
	}
	if v.Winner != nil {
		w := toPlayerJSON(*v.Winner)
		snap.Winner = &w
	}
	if v.LastMove != nil {
		m := toPositionJSON(*v.LastMove)
		snap.LastMove = &m
	}
	for _, p := range v.WinningLine {
		snap.WinningLine = append(snap.WinningLine, toPositionJSON(p))
	}

	return sonic.Marshal(&snap)
}
