// Package terminal renders the game in a terminal with tcell. Each grid cell
// is two columns wide so cells look roughly square.
package terminal

import (
	"fmt"

	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const cellColumns = 2

// Renderer implements game.Renderer, game.StatusDrawer and game.Flusher on a
// tcell screen. Only the game loop draws; the input goroutine just polls.
type Renderer struct {
	screen tcell.Screen
	grid   types.Grid
	border tcell.Style
}

func NewRenderer(screen tcell.Screen, grid types.Grid) *Renderer {
	return &Renderer{
		screen: screen,
		grid:   grid,
		border: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

func toTcell(c types.Color) tcell.Color {
	switch c {
	case types.Blue:
		return tcell.ColorBlue
	case types.Green:
		return tcell.ColorGreen
	case types.Red:
		return tcell.ColorRed
	}
	return tcell.ColorDefault
}

// Origin returns the screen position of grid cell (col, row).
func (r *Renderer) Origin(col, row int) (int, int) {
	return 1 + col*cellColumns, 1 + row
}

// Clear wipes the screen and draws the grid border.
func (r *Renderer) Clear() {
	r.screen.Clear()

	right := 1 + r.grid.Cols*cellColumns
	bottom := 1 + r.grid.Rows
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, r.border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, r.border)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, r.border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, r.border)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, r.border)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, r.border)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, r.border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, r.border)
}

// DrawCell fills the grid cell whose top-left pixel is (x, y).
func (r *Renderer) DrawCell(x, y int, color types.Color) {
	if r.grid.CellWidth <= 0 || r.grid.CellHeight <= 0 {
		return
	}
	sx, sy := r.Origin(x/r.grid.CellWidth, y/r.grid.CellHeight)
	style := tcell.StyleDefault.Background(toTcell(color))
	for i := 0; i < cellColumns; i++ {
		r.screen.SetContent(sx+i, sy, ' ', nil, style)
	}
}

// DrawStatus writes the score line under the grid. It is shown on the next Flush.
func (r *Renderer) DrawStatus(snap types.Snapshot) {
	y := r.grid.Rows + 2
	line := fmt.Sprintf("Score: %d", snap.Score)
	style := tcell.StyleDefault
	if snap.Status == types.Terminated {
		line += "  Game Over! (q to quit)"
		style = style.Foreground(tcell.ColorRed)
	}

	width, _ := r.screen.Size()
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	for i, ch := range line {
		r.screen.SetContent(i, y, ch, nil, style)
	}
}

func (r *Renderer) Flush() {
	r.screen.Show()
}
