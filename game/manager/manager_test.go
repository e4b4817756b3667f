package manager

import (
	"testing"

	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource returns queued values in order.
type scriptedSource struct {
	values []int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func newGrid() types.Grid {
	return types.NewGrid(300, 300, 15)
}

func TestIsOutOfBounds(t *testing.T) {
	cm := NewCollisionManager(newGrid())

	t.Run("edge cells are inside", func(t *testing.T) {
		for _, p := range []types.Point{{0, 0}, {280, 0}, {0, 280}, {280, 280}} {
			assert.False(t, cm.IsOutOfBounds(p.X, p.Y), "%v", p)
		}
	})

	t.Run("outside", func(t *testing.T) {
		for _, p := range []types.Point{{-20, 0}, {0, -20}, {300, 0}, {0, 300}, {-1, 299}} {
			assert.True(t, cm.IsOutOfBounds(p.X, p.Y), "%v", p)
		}
	})
}

func TestCheckFoodCollisions(t *testing.T) {
	cm := NewCollisionManager(newGrid())
	food := []types.Point{{20, 20}, {40, 20}}
	assert.Equal(t, 1, cm.CheckFoodCollisions(types.Point{X: 40, Y: 20}, food))
	assert.Equal(t, -1, cm.CheckFoodCollisions(types.Point{X: 60, Y: 20}, food))
	assert.Equal(t, -1, cm.CheckFoodCollisions(types.Point{}, nil))
}

func TestFoodSpawn(t *testing.T) {
	grid := newGrid()
	cm := NewCollisionManager(grid)

	t.Run("places food on a free cell", func(t *testing.T) {
		fm := NewFoodManager(grid, cm, &scriptedSource{values: []int{3, 4}})
		food, ok := fm.Spawn(entity.NewSnake(types.Point{}))
		require.True(t, ok)
		assert.Equal(t, types.Point{X: 60, Y: 80}, food)
		assert.Equal(t, []types.Point{{60, 80}}, fm.GetFoodList())
	})

	t.Run("skips when the draw hits the snake", func(t *testing.T) {
		fm := NewFoodManager(grid, cm, &scriptedSource{values: []int{1, 1}})
		_, ok := fm.Spawn(entity.NewSnake(types.Point{X: 20, Y: 20}))
		assert.False(t, ok)
		assert.Equal(t, 0, fm.Count())
	})

	t.Run("no-op when full", func(t *testing.T) {
		src := &scriptedSource{values: []int{5, 5}}
		fm := NewFoodManager(grid, cm, src)
		fm.AddFood(types.Point{X: 100, Y: 100})
		_, ok := fm.Spawn(entity.NewSnake(types.Point{}))
		assert.False(t, ok)
		assert.Equal(t, []types.Point{{100, 100}}, fm.GetFoodList())
		assert.Len(t, src.values, 2, "no random draw when full")
	})
}

func TestValidateSpawnPositionRejectsExistingFood(t *testing.T) {
	cm := NewCollisionManager(newGrid())
	snake := entity.NewSnake(types.Point{})
	food := []types.Point{{40, 40}}
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 40, Y: 40}, snake, food))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{}, snake, food))
	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 60, Y: 40}, snake, food))
}

func TestFoodEat(t *testing.T) {
	grid := newGrid()
	fm := NewFoodManager(grid, NewCollisionManager(grid), &scriptedSource{})
	fm.AddFood(types.Point{X: 40, Y: 20})

	assert.False(t, fm.Eat(types.Point{X: 20, Y: 20}))
	assert.True(t, fm.Eat(types.Point{X: 40, Y: 20}))
	assert.Empty(t, fm.GetFoodList())

	fm.AddFood(types.Point{X: 40, Y: 20})
	fm.Clear()
	assert.Equal(t, 0, fm.Count())
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	sm.AddPoint()
	sm.Terminate()
	assert.True(t, sm.IsTerminated())

	sm.Reset()
	assert.Equal(t, 0, sm.GetScore())
	assert.Equal(t, types.Running, sm.GetStatus())

	sm.AddPoint()
	sm.AddPoint()
	assert.Equal(t, 2, sm.GetScore())
}
