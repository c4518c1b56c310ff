package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	minCellInner = 4 // Narrowest tile text area
	cellHeight   = 2 // Height of each cell (including top border)
	hudHeight    = 3 // Title, stats and board size lines
)

// tileColors maps tile values to display colors; larger tiles use ColorMagenta.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightGreen,
	512:  core.ColorGreen,
	1024: core.ColorBrightCyan,
	2048: core.ColorBrightMagenta,
}

// tileColor returns the color used to draw a tile value.
func tileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorMagenta
}

// cellWidth returns the width of one cell (including its left border),
// wide enough for the largest tile on the board plus one space each side.
func (g *Game) cellWidth() int {
	digits := len(strconv.Itoa(g.board.MaxTile()))
	return max(minCellInner, digits) + 2 + 1
}

// boardDims returns the rendered board width and height in characters.
func (g *Game) boardDims() (w, h int) {
	n := g.board.Size()
	return n*g.cellWidth() + 1, n*cellHeight + 1
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardDims()
	minW := boardW + 2
	minH := boardH + hudHeight + 2 // +1 gap, +1 controls line
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen dimensions without restarting the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
	if g.eng != nil {
		g.checkScreenSize()
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderError(dst)
		return
	}

	// Cells widen when a tile gains a digit
	g.checkScreenSize()
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardDims()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	dst.DrawTextCentered(boardY+boardH+1, g.Controls())

	if g.paused {
		board := core.NewRect(boardX, boardY, boardW, boardH)
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// renderError explains why no board is shown.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Cannot start game")
	dst.DrawTextCentered(y+1, g.err.Error())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and board statistics.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.Moves()))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(max(boardX+boardW-len(maxStr), boardX), 1, maxStr)

	n := g.board.Size()
	sizeStr := fmt.Sprintf("%dx%d", n, n)
	dst.DrawTextColor(boardX+(boardW-len(sizeStr))/2, 2, sizeStr, core.ColorGray)
}

// renderBoard draws the NxN grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.board.Size()
	cellWidth := g.cellWidth()

	// Draw grid borders
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColor(px, py, gridCorner(x, y, n), core.ColorGray)

			// Draw horizontal line to the right
			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}

			// Draw vertical line down
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	// Draw tiles
	for y := range n {
		for x := range n {
			val := g.board.At(y, x)
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			color := tileColor(val)
			if g.freshTicks > 0 && g.fresh.Row == y && g.fresh.Col == x {
				color = core.ColorBrightBlue
			}
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// gridCorner picks the box-drawing rune for intersection (x, y) of an n x n grid.
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// drawOverlay draws a text box centered over area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenterIn(maxLen+4, len(lines)+2)
	centerX, _ := box.Center()

	// Clear area behind overlay
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
