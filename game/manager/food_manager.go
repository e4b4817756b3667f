package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// RandomSource is the subset of a random generator used for food placement.
type RandomSource interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	foodList     []types.Point
	maxFood      int
	rng          RandomSource
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng RandomSource) *FoodManager {
	return &FoodManager{
		grid:         grid,
		foodList:     make([]types.Point, 0, types.MaxFood),
		maxFood:      types.MaxFood,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn makes a single placement attempt. A random cell is committed only when
// it is free; otherwise this call is skipped. There is no retry loop, so a
// spawn cycle may pass without new food.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, bool) {
	if len(fm.foodList) >= fm.maxFood {
		return types.Point{}, false
	}

	food := fm.grid.Cell(fm.rng.Intn(fm.grid.Cols), fm.rng.Intn(fm.grid.Rows))
	if !fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.foodList) {
		return types.Point{}, false
	}

	fm.foodList = append(fm.foodList, food)
	return food, true
}

// Eat removes the food at pos, keeping the order of the remaining items.
func (fm *FoodManager) Eat(pos types.Point) bool {
	i := fm.collisionMgr.CheckFoodCollisions(pos, fm.foodList)
	if i < 0 {
		return false
	}
	fm.foodList = append(fm.foodList[:i], fm.foodList[i+1:]...)
	return true
}

func (fm *FoodManager) GetFoodList() []types.Point {
	return fm.foodList
}

// AddFood places food at pos without any checks.
func (fm *FoodManager) AddFood(food types.Point) {
	fm.foodList = append(fm.foodList, food)
}

func (fm *FoodManager) Clear() {
	fm.foodList = fm.foodList[:0]
}

func (fm *FoodManager) Count() int {
	return len(fm.foodList)
}
