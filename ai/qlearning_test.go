package ai

import (
	"testing"

	"grid-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom never explores unless explore is set.
type fixedRandom struct {
	explore bool
	pick    int
}

func (r fixedRandom) Float64() float64 {
	if r.explore {
		return 0
	}
	return 1
}

func (r fixedRandom) Intn(n int) int {
	return r.pick % n
}

func snapshot(pos types.Point, food ...types.Point) types.Snapshot {
	return types.Snapshot{
		Grid:      types.NewGrid(300, 300, 15),
		Position:  pos,
		Direction: types.Right,
		Food:      food,
		Status:    types.Running,
	}
}

func TestNewState(t *testing.T) {
	t.Run("corner dangers", func(t *testing.T) {
		s := NewState(snapshot(types.Point{}))
		assert.Equal(t, [4]bool{true, false, false, true}, s.DangerDirs)
		assert.Equal(t, -1, s.FoodDistance)
		assert.Equal(t, [2]int{0, 0}, s.RelativeFoodDir)
	})

	t.Run("food direction", func(t *testing.T) {
		s := NewState(snapshot(types.Point{X: 100, Y: 100}, types.Point{X: 40, Y: 140}))
		assert.Equal(t, [2]int{-1, 1}, s.RelativeFoodDir)
		assert.Equal(t, 5, s.FoodDistance)
		assert.Equal(t, [4]bool{}, s.DangerDirs)
	})

	t.Run("bottom right corner", func(t *testing.T) {
		s := NewState(snapshot(types.Point{X: 280, Y: 280}))
		assert.Equal(t, [4]bool{false, true, true, false}, s.DangerDirs)
	})
}

func TestStateKey(t *testing.T) {
	a := NewState(snapshot(types.Point{}, types.Point{X: 100, Y: 0}))
	b := NewState(snapshot(types.Point{}, types.Point{X: 200, Y: 0}))
	c := NewState(snapshot(types.Point{X: 20, Y: 20}, types.Point{X: 200, Y: 20}))
	assert.Equal(t, a.Key(), b.Key(), "distance is not part of the key")
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestReward(t *testing.T) {
	base := State{FoodDistance: 3}

	assert.Equal(t, -1.0, Reward(base, types.Right, State{Terminated: true}))
	assert.Equal(t, 1.0, Reward(base, types.Right, State{Score: 1, FoodDistance: -1}))
	assert.Equal(t, 0.5, Reward(base, types.Right, State{FoodDistance: 2}))
	assert.Equal(t, -0.3, Reward(base, types.Right, State{FoodDistance: 4}))
	assert.Equal(t, 0.0, Reward(State{FoodDistance: -1}, types.Right, State{FoodDistance: -1}))

	walled := State{FoodDistance: 3, DangerDirs: [4]bool{true}}
	assert.Equal(t, -1.0, Reward(walled, types.Up, State{FoodDistance: 2}))
}

func TestBestActionAvoidsWallsOnTies(t *testing.T) {
	q := NewQLearning(fixedRandom{})
	assert.Equal(t, types.Right, q.BestAction(NewState(snapshot(types.Point{}))))
	assert.Equal(t, types.Up, q.BestAction(NewState(snapshot(types.Point{X: 280, Y: 280}))))
}

func TestExploration(t *testing.T) {
	q := NewQLearning(fixedRandom{explore: true, pick: 2})
	assert.Equal(t, types.Down, q.Decide(snapshot(types.Point{X: 100, Y: 100})))
}

func TestLearnsFromTerminalMove(t *testing.T) {
	q := NewQLearning(fixedRandom{})

	// one cell from the right wall, facing it
	before := snapshot(types.Point{X: 280, Y: 100})
	q.Decide(before)
	// force the losing action to have been Right
	q.lastAction = types.Right

	after := before
	after.Status = types.Terminated
	q.Observe(after)

	key := NewState(before).Key()
	require.Contains(t, q.QTable, key)
	assert.Less(t, q.QTable[key][types.Right], 0.0)
	assert.Equal(t, 1, q.GamesPlayed)
	assert.Equal(t, -1.0, q.TotalReward)
	assert.NotEqual(t, types.Right, q.BestAction(NewState(before)))
}

func TestLearnsTowardFood(t *testing.T) {
	q := NewQLearning(fixedRandom{})
	before := snapshot(types.Point{X: 100, Y: 100}, types.Point{X: 200, Y: 100})

	for i := 0; i < 5; i++ {
		q.Decide(before)
		q.lastAction = types.Right
		after := snapshot(types.Point{X: 120, Y: 100}, types.Point{X: 200, Y: 100})
		q.Observe(after)
	}

	assert.Equal(t, types.Right, q.BestAction(NewState(before)))
	assert.Greater(t, q.TotalReward, 0.0)
}

func TestObserveWithoutDecide(t *testing.T) {
	q := NewQLearning(nil)
	q.Observe(snapshot(types.Point{}))
	assert.Empty(t, q.QTable)
}
