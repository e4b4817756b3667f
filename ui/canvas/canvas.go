// Package canvas records draw calls into frames that a UI thread can read
// while the game loop keeps drawing on another goroutine.
package canvas

import (
	"sync"

	"grid-snake/game/types"
)

// Cell is one recorded DrawCell call.
type Cell struct {
	X, Y  int
	Color types.Color
}

// Canvas implements game.Renderer and game.Flusher. Clear and DrawCell build
// a pending frame; Flush publishes it.
type Canvas struct {
	pending []Cell

	mutex sync.RWMutex
	frame []Cell
}

func New() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Clear() {
	c.pending = c.pending[:0]
}

func (c *Canvas) DrawCell(x, y int, color types.Color) {
	c.pending = append(c.pending, Cell{X: x, Y: y, Color: color})
}

func (c *Canvas) Flush() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.frame = append(c.frame[:0], c.pending...)
}

// Frame returns a copy of the last published frame.
func (c *Canvas) Frame() []Cell {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	frame := make([]Cell, len(c.frame))
	copy(frame, c.frame)
	return frame
}
