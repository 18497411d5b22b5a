package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// Renderer draws game snapshots on a terminal.
type Renderer struct {
	out *termenv.Output
}

// New returns a renderer writing to w. Without color only plain ASCII is written.
func New(w io.Writer, color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}

	return &Renderer{
		out: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

func (that *Renderer) style(cell string, last bool) string {
	styled := that.out.String(cell)

	switch cell {
	case gomoku.Black.String():
		styled = styled.Foreground(that.out.Color("1"))
	case gomoku.White.String():
		styled = styled.Foreground(that.out.Color("4"))
	default:
		styled = styled.Faint()
	}

	if last {
		styled = styled.Bold().Underline()
	}

	return styled.String()
}

// Board draws the grid with row and column indexes.
func (that *Renderer) Board(game *entity.Game) error {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := range game.Board {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteString("\n")

	for row, line := range game.Board {
		fmt.Fprintf(&sb, "%3d", row)
		for col, cell := range line {
			last := game.LastMove != nil && game.LastMove.Row == row && game.LastMove.Col == col
			sb.WriteString("  ")
			sb.WriteString(that.style(string(cell), last))
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Status writes either whose turn it is or how the game ended.
func (that *Renderer) Status(game *entity.Game) error {
	var line string

	switch {
	case game.IsTie():
		line = fmt.Sprintf("Draw after %d moves.", game.MoveCount)
	case game.IsFinished():
		line = that.out.String(fmt.Sprintf("%s wins after %d moves!", game.Winner, game.MoveCount)).Bold().String()
	case game.Turn != nil:
		line = fmt.Sprintf("%s (%s) to move, enter row and column:", game.Turn.Name, game.Turn.Piece)
	}

	return that.Message(line)
}

func (that *Renderer) Message(line string) error {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
