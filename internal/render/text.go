package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connectx/internal/domain"
	"github.com/iamasit07/connectx/internal/service/game"
	"github.com/logrusorgru/aurora"
)

const (
	emptyCell   = "."
	discGlyph   = "●"
	winGlyphRaw = "#"
)

// TextRenderer draws a session view for a terminal. Without colors every disc
// is shown by the first letter of its color and winning cells by '#'.
type TextRenderer struct {
	au     aurora.Aurora
	colors bool
}

func NewText(colors bool) *TextRenderer {
	return &TextRenderer{au: aurora.NewAurora(colors), colors: colors}
}

func (r *TextRenderer) Render(w io.Writer, v game.View) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Connect %d on %dx%d\n", v.InARow, v.Rows, v.Columns)

	sb.WriteString(" ")
	for c := 1; c <= v.Columns; c++ {
		fmt.Fprintf(&sb, "%*d", cellWidth(v.Columns), c)
	}
	sb.WriteString("\n")

	// row 0 is the bottom, so print from the top down
	for row := v.Rows - 1; row >= 0; row-- {
		sb.WriteString("|")
		for col := 0; col < v.Columns; col++ {
			pos := domain.NewPosition(domain.Row(row), domain.Column(col))
			fmt.Fprintf(&sb, "%*s", cellWidth(v.Columns)-1, "")
			sb.WriteString(r.cell(v.Grid[row][col], v.IsWinningCell(pos)))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("+" + strings.Repeat("-", v.Columns*cellWidth(v.Columns)+1) + "+\n")

	sb.WriteString(r.status(v))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *TextRenderer) cell(d domain.Disc, winning bool) string {
	if d.IsEmpty() {
		return emptyCell
	}
	if !r.colors {
		if winning {
			return winGlyphRaw
		}
		return strings.ToUpper(d.Color().String()[:1])
	}

	v := r.paint(d, discGlyph)
	if winning {
		v = r.au.Bold(r.au.Reverse(v))
	}
	return v.String()
}

func (r *TextRenderer) paint(d domain.Disc, s string) aurora.Value {
	return r.au.Index(colorIndex(d.Color()), s)
}

func (r *TextRenderer) playerLabel(p domain.Player) string {
	if !r.colors {
		return p.String()
	}
	return fmt.Sprintf("%s %s", r.paint(p.Disc(), discGlyph), p.Name())
}

func (r *TextRenderer) status(v game.View) string {
	switch v.Status {
	case domain.StatusWon:
		if v.Winner != nil {
			return fmt.Sprintf("%s wins after %d turns", r.playerLabel(*v.Winner), v.TurnsPlayed+1)
		}
	case domain.StatusDraw:
		return fmt.Sprintf("Draw after %d turns", v.TurnsPlayed)
	}
	return fmt.Sprintf("Turn %d: %s to play, next disc %s",
		v.TurnsPlayed+1, r.playerLabel(v.ActivePlayer), r.playerLabel(v.NextPlayer))
}

// cellWidth leaves room for two digit column numbers
func cellWidth(columns int) int {
	if columns >= 10 {
		return 3
	}
	return 2
}

// colorIndex maps an RGB color onto the xterm 256 color cube
func colorIndex(c domain.Color) uint8 {
	scale := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*scale(c.R) + 6*scale(c.G) + scale(c.B)
}
