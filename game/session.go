package game

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"grid-snake/game/types"

	"github.com/google/uuid"
)

// ErrSessionStarted is returned when Start is called more than once.
var ErrSessionStarted = errors.New("session already started")

// Pilot steers the snake instead of, or alongside, key input.
type Pilot interface {
	// Decide is called right before each tick.
	Decide(s types.Snapshot) types.Direction
	// Observe is called right after each tick with the resulting state.
	Observe(s types.Snapshot)
}

// SessionConfig holds the scheduling parameters of a Session.
type SessionConfig struct {
	TickInterval  time.Duration
	SpawnInterval time.Duration
	InputBuffer   int
	Pilot         Pilot
}

// Session owns a Game and the two scheduled tasks driving it. A single
// goroutine runs every tick, spawn and input callback to completion before
// the next one starts, so the Game needs no locking of its own.
type Session struct {
	ID string

	game          *Game
	tickInterval  time.Duration
	spawnInterval time.Duration
	pilot         Pilot

	inputChan   chan string
	controlChan chan struct{}
	done        chan struct{}
	wg          sync.WaitGroup
	stopOnce    sync.Once

	mutex     sync.RWMutex
	started   bool
	snapshot  types.Snapshot
	startTime time.Time
	endTime   time.Time
}

// NewSession wraps g. Zero intervals fall back to the defaults.
func NewSession(g *Game, cfg SessionConfig) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = types.DefaultTickInterval
	}
	if cfg.SpawnInterval <= 0 {
		cfg.SpawnInterval = types.DefaultSpawnInterval
	}
	if cfg.InputBuffer <= 0 {
		cfg.InputBuffer = 8
	}

	return &Session{
		ID:            uuid.New().String(),
		game:          g,
		tickInterval:  cfg.TickInterval,
		spawnInterval: cfg.SpawnInterval,
		pilot:         cfg.Pilot,
		inputChan:     make(chan string, cfg.InputBuffer),
		controlChan:   make(chan struct{}),
		done:          make(chan struct{}),
		snapshot:      g.Snapshot(),
	}
}

// Start launches the scheduling loop. The loop ends when the game reaches
// Terminated, when ctx is cancelled or when Stop is called.
func (s *Session) Start(ctx context.Context) error {
	s.mutex.Lock()
	if s.started {
		s.mutex.Unlock()
		return ErrSessionStarted
	}
	s.started = true
	s.startTime = time.Now()
	s.mutex.Unlock()

	log.Printf("[SESSION] [INFO] %s started: surface %dx%d, %dx%d cells, tick %v, spawn %v",
		s.ID, s.game.Grid.Width, s.game.Grid.Height, s.game.Grid.Cols, s.game.Grid.Rows,
		s.tickInterval, s.spawnInterval)

	s.wg.Add(1)
	go s.loop(ctx)
	return nil
}

// Stop cancels both scheduled tasks and waits for the loop to exit. It is
// safe to call more than once, and before Start.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.controlChan)
	})
	s.wg.Wait()
}

// Input forwards a key identifier to the game. It never blocks: keys are
// dropped while the buffer is full or after the loop has exited.
func (s *Session) Input(key string) {
	select {
	case <-s.done:
	case s.inputChan <- key:
	default:
	}
}

// Done is closed when the loop exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Snapshot returns the state published after the last callback.
func (s *Session) Snapshot() types.Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot
}

// Elapsed returns how long the session ran, or has been running so far.
func (s *Session) Elapsed() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.startTime.IsZero() {
		return 0
	}
	if s.endTime.IsZero() {
		return time.Since(s.startTime)
	}
	return s.endTime.Sub(s.startTime)
}

func (s *Session) loop(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.done)

	tickTicker := time.NewTicker(s.tickInterval)
	defer tickTicker.Stop()
	spawnTicker := time.NewTicker(s.spawnInterval)
	defer spawnTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.finish("cancelled")
			return
		case <-s.controlChan:
			s.finish("stopped")
			return
		case key := <-s.inputChan:
			s.game.SetDirection(key)
			s.publish()
		case <-tickTicker.C:
			if s.step() == types.Terminated {
				s.finish("game over")
				return
			}
		case <-spawnTicker.C:
			if s.game.SpawnFood() {
				s.publish()
			}
		}
	}
}

func (s *Session) step() types.Status {
	if s.pilot != nil {
		s.game.Turn(s.pilot.Decide(s.game.Snapshot()))
	}

	status := s.game.Tick()
	s.publish()

	if s.pilot != nil {
		s.pilot.Observe(s.Snapshot())
	}
	return status
}

func (s *Session) publish() {
	snap := s.game.Snapshot()

	s.mutex.Lock()
	s.snapshot = snap
	s.mutex.Unlock()
}

func (s *Session) finish(reason string) {
	s.mutex.Lock()
	s.endTime = time.Now()
	snap := s.snapshot
	s.mutex.Unlock()

	log.Printf("[SESSION] [INFO] %s %s: score %d after %d steps (%v)",
		s.ID, reason, snap.Score, s.game.Steps, s.Elapsed().Round(time.Millisecond))
}
