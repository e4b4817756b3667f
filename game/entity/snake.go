package entity

import "grid-snake/game/types"

// Snake is a single-cell snake: no body list, only a head position.
type Snake struct {
	Position  types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Position:  startPos,
		Direction: types.Right, // Start moving right
	}
}

// Move commits newPos as the snake position.
func (s *Snake) Move(newPos types.Point) {
	s.Position = newPos
}

// SetDirection changes direction immediately. Reversing is allowed since
// there is no body to run into.
func (s *Snake) SetDirection(dir types.Direction) {
	s.Direction = dir
}

// NextPosition returns the cell one step ahead in the current direction.
func (s *Snake) NextPosition(grid types.Grid) types.Point {
	return s.Position.Add(s.Direction.Step(grid))
}

// Occupies reports whether the snake sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	return s.Position == p
}
