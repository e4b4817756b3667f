package types

import "time"

// Point is a cell coordinate in surface pixels, aligned to the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid describes the drawing surface and how it is divided into cells
type Grid struct {
	Width      int
	Height     int
	Cols       int
	Rows       int
	CellWidth  int
	CellHeight int
}

// NewGrid divides a width x height surface into amount x amount cells.
// Divisibility is not checked; the cell size is truncated.
func NewGrid(width, height, amount int) Grid {
	return Grid{
		Width:      width,
		Height:     height,
		Cols:       amount,
		Rows:       amount,
		CellWidth:  width / amount,
		CellHeight: height / amount,
	}
}

// Cell returns the pixel coordinate of the cell at column col and row row.
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellWidth, Y: row * g.CellHeight}
}

// Game constants
const (
	MaxFood = 1 // Food items allowed on the grid at once

	DefaultWidth  = 300
	DefaultHeight = 300
	DefaultCells  = 15

	DefaultTickInterval  = 100 * time.Millisecond
	DefaultSpawnInterval = 1000 * time.Millisecond
)
