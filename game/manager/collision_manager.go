package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsOutOfBounds reports whether (x, y) lies outside [0, width) x [0, height).
// Walls are the only terminal collision: a one-cell snake cannot hit itself.
func (cm *CollisionManager) IsOutOfBounds(x, y int) bool {
	return x < 0 || x >= cm.grid.Width || y < 0 || y >= cm.grid.Height
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// CheckFoodCollisions returns the index of the first food item at pos, or -1.
func (cm *CollisionManager) CheckFoodCollisions(pos types.Point, foodList []types.Point) int {
	for i, food := range foodList {
		if cm.IsFoodCollision(pos, food) {
			return i
		}
	}
	return -1
}

// ValidateSpawnPosition checks if pos is free for new food: inside the grid,
// off the snake and not already holding food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, foodList []types.Point) bool {
	if cm.IsOutOfBounds(pos.X, pos.Y) {
		return false
	}
	if snake.Occupies(pos) {
		return false
	}
	return cm.CheckFoodCollisions(pos, foodList) < 0
}
