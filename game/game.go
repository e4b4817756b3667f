package game

import (
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// Renderer draws grid-aligned cells on a 2D surface.
type Renderer interface {
	// Clear wipes the surface and redraws the grid border.
	Clear()
	// DrawCell fills the cell whose top-left corner is (x, y).
	DrawCell(x, y int, color types.Color)
}

// Flusher is implemented by renderers that buffer a frame. Flush is called
// once after every complete redraw.
type Flusher interface {
	Flush()
}

// StatusDrawer is implemented by renderers that show the score and status
// next to the grid. DrawStatus is called right before each Flush.
type StatusDrawer interface {
	DrawStatus(s types.Snapshot)
}

type nopRenderer struct{}

func (nopRenderer) Clear()                           {}
func (nopRenderer) DrawCell(x, y int, c types.Color) {}

// Game holds the authoritative game state and computes the next state each tick.
// It is not safe for concurrent use; Session serialises all calls.
type Game struct {
	Grid types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	renderer     Renderer
	Steps        int
}

// Option configures a Game.
type Option func(*Game)

// WithRenderer sets the collaborator that receives redraws.
func WithRenderer(r Renderer) Option {
	return func(g *Game) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithRandomSource replaces the default clock-seeded generator used for food.
func WithRandomSource(rng manager.RandomSource) Option {
	return func(g *Game) {
		g.foodMgr = manager.NewFoodManager(g.Grid, g.collisionMgr, rng)
	}
}

// NewGame creates a game on a width x height surface split into amount x amount
// cells and resets it to the initial Running state.
func NewGame(width, height, amount int, opts ...Option) *Game {
	grid := types.NewGrid(width, height, amount)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Grid:         grid,
		snake:        entity.NewSnake(grid.Cell(0, 0)),
		collisionMgr: collisionMgr,
		stateMgr:     manager.NewStateManager(),
		renderer:     nopRenderer{},
	}
	g.foodMgr = manager.NewFoodManager(grid, collisionMgr, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))

	for _, opt := range opts {
		opt(g)
	}

	g.Reset()
	return g
}

// Reset puts the snake in the top-left cell facing right, empties the food
// list, sets the score to zero and draws the snake.
func (g *Game) Reset() {
	g.stateMgr.Reset()
	g.snake = entity.NewSnake(g.Grid.Cell(0, 0))
	g.foodMgr.Clear()
	g.Steps = 0

	g.drawSnake(types.Blue)
	g.flush()
}

// ComputeNextPosition returns the cell one step ahead of the snake.
func (g *Game) ComputeNextPosition() types.Point {
	return g.snake.NextPosition(g.Grid)
}

// IsOutOfBounds reports whether (x, y) falls outside the surface.
func (g *Game) IsOutOfBounds(x, y int) bool {
	return g.collisionMgr.IsOutOfBounds(x, y)
}

// Tick advances the game one step and redraws. Moving out of bounds terminates
// the game and leaves the position and score unchanged. Calls after
// termination do nothing.
func (g *Game) Tick() types.Status {
	if g.stateMgr.IsTerminated() {
		return types.Terminated
	}

	g.Steps++
	g.renderer.Clear()

	newPos := g.ComputeNextPosition()
	if g.IsOutOfBounds(newPos.X, newPos.Y) {
		g.stateMgr.Terminate()
		g.drawSnake(types.Red)
		g.flush()
		return types.Terminated
	}

	g.snake.Move(newPos)
	g.drawSnake(types.Blue)

	if g.foodMgr.Eat(newPos) {
		g.stateMgr.AddPoint()
	}

	g.drawFood()
	g.flush()
	return types.Running
}

// SpawnFood makes one attempt to place food on a random free cell. It does
// nothing once the game is terminated or the food list is full.
func (g *Game) SpawnFood() bool {
	if g.stateMgr.IsTerminated() {
		return false
	}
	_, ok := g.foodMgr.Spawn(g.snake)
	return ok
}

// SetDirection maps a key identifier to a direction and applies it at once.
// Unrecognised keys are ignored.
func (g *Game) SetDirection(key string) bool {
	dir, ok := DirectionForKey(key)
	if !ok {
		return false
	}
	return g.Turn(dir)
}

// Turn sets the snake direction. Values outside types.Directions are ignored.
func (g *Game) Turn(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	g.snake.SetDirection(dir)
	return true
}

// PlaceFood puts food at p, bypassing the spawn checks and capacity.
func (g *Game) PlaceFood(p types.Point) {
	g.foodMgr.AddFood(p)
}

// MoveSnake puts the snake at p without a tick.
func (g *Game) MoveSnake(p types.Point) {
	g.snake.Move(p)
}

func (g *Game) Position() types.Point {
	return g.snake.Position
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

// Food returns a copy of the food list.
func (g *Game) Food() []types.Point {
	food := make([]types.Point, g.foodMgr.Count())
	copy(food, g.foodMgr.GetFoodList())
	return food
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) Status() types.Status {
	return g.stateMgr.GetStatus()
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() types.Snapshot {
	return types.Snapshot{
		Grid:      g.Grid,
		Position:  g.snake.Position,
		Direction: g.snake.Direction,
		Food:      g.Food(),
		Score:     g.stateMgr.GetScore(),
		Status:    g.stateMgr.GetStatus(),
	}
}

func (g *Game) drawSnake(color types.Color) {
	g.renderer.DrawCell(g.snake.Position.X, g.snake.Position.Y, color)
}

func (g *Game) drawFood() {
	for _, f := range g.foodMgr.GetFoodList() {
		g.renderer.DrawCell(f.X, f.Y, types.Green)
	}
}

func (g *Game) flush() {
	if sd, ok := g.renderer.(StatusDrawer); ok {
		sd.DrawStatus(g.Snapshot())
	}
	if f, ok := g.renderer.(Flusher); ok {
		f.Flush()
	}
}
