package ui

import (
	"fmt"

	"grid-snake/game/types"
	"grid-snake/ui/canvas"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 30 // Strip below the grid for score and messages
)

// Renderer draws the game in a raylib window. The game loop draws into the
// embedded canvas from its own goroutine; Draw must run on the main thread
// that owns the window.
type Renderer struct {
	*canvas.Canvas

	grid         types.Grid
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(grid types.Grid) *Renderer {
	r := &Renderer{
		Canvas:  canvas.New(),
		grid:    grid,
		offsetX: borderPadding,
		offsetY: borderPadding,
	}
	r.screenWidth, r.screenHeight = WindowSize(grid)
	return r
}

// WindowSize returns the window dimensions needed to show grid.
func WindowSize(grid types.Grid) (int32, int32) {
	return int32(grid.Width + borderPadding*2), int32(grid.Height + borderPadding*3 + statusHeight)
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Keep the grid centred when the window is larger than needed
	r.offsetX = max32(borderPadding, (r.screenWidth-int32(r.grid.Width))/2)
	r.offsetY = borderPadding
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func toRaylib(c types.Color) rl.Color {
	red, green, blue := c.RGB()
	return rl.Color{R: red, G: green, B: blue, A: 255}
}

// Draw renders the last published frame plus the status strip for snap.
func (r *Renderer) Draw(snap types.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	// Grid border, as the surface is stroked on every clear
	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, int32(r.grid.Width)+2, int32(r.grid.Height)+2, rl.Black)

	for _, cell := range r.Frame() {
		rl.DrawRectangle(
			r.offsetX+int32(cell.X),
			r.offsetY+int32(cell.Y),
			int32(r.grid.CellWidth), int32(r.grid.CellHeight),
			toRaylib(cell.Color))
	}

	fontSize := int32(statusHeight / 2)
	yOffset := r.offsetY + int32(r.grid.Height) + borderPadding
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), r.offsetX, yOffset, fontSize, rl.Black)

	if snap.Status == types.Terminated {
		gameOverText := "Game Over! (Q to quit)"
		textWidth := rl.MeasureText(gameOverText, fontSize)
		rl.DrawText(gameOverText,
			r.offsetX+int32(r.grid.Width)-textWidth,
			yOffset,
			fontSize, rl.Red)
	}

	rl.EndDrawing()
}
