package ai

import (
	"fmt"
	"math"
	"sync"
	"time"

	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// Random is the subset of a generator used for exploration.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// State is the compact view of the grid the agent learns on
type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y), 0 when no food
	FoodDistance    int     // Manhattan distance to food in cells, -1 when no food
	DangerDirs      [4]bool // Wall one cell ahead in each direction (up, right, down, left)
	Terminated      bool
	Score           int
}

// NewState builds the agent state from a game snapshot.
func NewState(s types.Snapshot) State {
	state := State{
		FoodDistance: -1,
		Terminated:   s.Status == types.Terminated,
		Score:        s.Score,
	}

	if len(s.Food) > 0 && s.Grid.CellWidth > 0 && s.Grid.CellHeight > 0 {
		food := s.Food[0]
		dx := (food.X - s.Position.X) / s.Grid.CellWidth
		dy := (food.Y - s.Position.Y) / s.Grid.CellHeight
		state.RelativeFoodDir = [2]int{sign(dx), sign(dy)}
		state.FoodDistance = abs(dx) + abs(dy)
	}

	for _, dir := range types.Directions {
		next := s.Position.Add(dir.Step(s.Grid))
		state.DangerDirs[dir] = next.X < 0 || next.X >= s.Grid.Width || next.Y < 0 || next.Y >= s.Grid.Height
	}

	return state
}

// Key identifies the state in the Q-table. Score and terminal flag are
// reward inputs, not part of the key.
func (s State) Key() string {
	return fmt.Sprintf("%d,%d|%d%d%d%d",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		boolToInt(s.DangerDirs[types.Up]), boolToInt(s.DangerDirs[types.Right]),
		boolToInt(s.DangerDirs[types.Down]), boolToInt(s.DangerDirs[types.Left]))
}

type QTable map[string]map[types.Direction]float64

// QLearning is a tabular Q-learning autopilot. It plugs into a game session
// as a Pilot: Decide picks the direction for the coming tick and Observe
// learns from the outcome.
type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng        Random
	mutex      sync.Mutex
	lastState  State
	lastAction types.Direction
	hasLast    bool
}

// NewQLearning returns an agent with an empty table. A nil rng uses a
// clock-seeded generator.
func NewQLearning(rng Random) *QLearning {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

// Decide implements game.Pilot.
func (q *QLearning) Decide(s types.Snapshot) types.Direction {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	state := NewState(s)
	action := q.getAction(state)

	q.lastState = state
	q.lastAction = action
	q.hasLast = true
	return action
}

// Observe implements game.Pilot.
func (q *QLearning) Observe(s types.Snapshot) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if !q.hasLast {
		return
	}
	next := NewState(s)
	q.update(q.lastState, q.lastAction, next)

	if next.Terminated {
		q.GamesPlayed++
		q.hasLast = false
	}
}

// BestAction returns the highest valued action for state, without exploration.
func (q *QLearning) BestAction(state State) types.Direction {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return q.getBestAction(state)
}

func (q *QLearning) getAction(state State) types.Direction {
	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return types.Directions[q.rng.Intn(len(types.Directions))]
	}

	// Exploitation: best known action
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) types.Direction {
	values := q.values(state.Key())

	// Ties go to the first direction that is not into a wall
	best := types.Up
	bestValue := math.Inf(-1)
	for _, action := range types.Directions {
		value := values[action]
		if state.DangerDirs[action] {
			value -= 1e-9
		}
		if value > bestValue {
			bestValue = value
			best = action
		}
	}
	return best
}

func (q *QLearning) values(key string) map[types.Direction]float64 {
	if _, exists := q.QTable[key]; !exists {
		q.QTable[key] = make(map[types.Direction]float64, len(types.Directions))
		for _, action := range types.Directions {
			q.QTable[key][action] = 0
		}
	}
	return q.QTable[key]
}

// Reward scores the transition from state to next.
func Reward(state State, action types.Direction, next State) float64 {
	switch {
	case next.Terminated:
		return -1.0
	case next.Score > state.Score:
		return 1.0
	case state.DangerDirs[action]:
		return -1.0
	}

	if state.FoodDistance < 0 || next.FoodDistance < 0 {
		return 0
	}
	if distanceChange := next.FoodDistance - state.FoodDistance; distanceChange < 0 {
		return 0.5 // Got closer to food
	} else if distanceChange > 0 {
		return -0.3 // Got further from food
	}
	return 0
}

func (q *QLearning) update(state State, action types.Direction, next State) float64 {
	reward := Reward(state, action, next)

	current := q.values(state.Key())

	// Terminal transitions have no future value
	maxNextQ := 0.0
	if !next.Terminated {
		maxNextQ = math.Inf(-1)
		for _, value := range q.values(next.Key()) {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	// Q-learning update formula
	currentQ := current[action]
	current[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)

	q.TotalReward += reward
	return reward
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
