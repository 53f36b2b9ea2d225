package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// sidePanelWidth reserves room to the right of the board for the next-piece
// preview and score.
const sidePanelWidth = 12

const blockRune = '█'

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderPiece(dst)
	g.renderPanel(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d, press R to restart", g.score))
	case !g.playing:
		g.renderOverlay(dst, "Paused", "Press P to play")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris  Score: %d  Rows: %d", g.score, g.rowsCleared)
	if g.boost {
		hud += "  [boost]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the border and the locked cells.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, Cols+2, Rows+2))

	for row := 0; row < g.grid.Rows(); row++ {
		for col := 0; col < g.grid.Cols(); col++ {
			if color, ok := g.grid.ColorAt(col, row); ok {
				dst.SetCell(g.boardX+1+col, g.boardY+1+row, blockRune, color)
			}
		}
	}
}

// renderPiece draws the active falling piece.
func (g *Game) renderPiece(dst *core.Screen) {
	color := g.piece.Shape.Color()
	for _, c := range g.piece.Cells() {
		dst.SetCell(g.boardX+1+c.Col, g.boardY+1+c.Row, blockRune, color)
	}
}

// renderPanel draws the next-piece preview and key help beside the board.
func (g *Game) renderPanel(dst *core.Screen) {
	px := g.boardX + Cols + 4
	py := g.boardY + 1

	dst.DrawText(px, py, "Next:")
	color := g.next.Shape.Color()
	for _, o := range shapeOffsets[g.next.Shape][0] {
		dst.SetCell(px+o.Col, py+2+o.Row, blockRune, color)
	}

	help := []string{"←/→ move", "↑ rotate", "↓ boost", "P pause", "Q quit"}
	for i, line := range help {
		dst.DrawTextColored(px, py+8+i, line, core.ColorGray)
	}
}

// renderOverlay draws a centered boxed message over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
