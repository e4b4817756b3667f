package manager

import "grid-snake/game/types"

// StateManager tracks the score and the Running/Terminated state machine.
type StateManager struct {
	score  int
	status types.Status
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) Reset() {
	sm.score = 0
	sm.status = types.Running
}

func (sm *StateManager) AddPoint() {
	sm.score++
}

// Terminate moves to the absorbing Terminated state.
func (sm *StateManager) Terminate() {
	sm.status = types.Terminated
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetStatus() types.Status {
	return sm.status
}

func (sm *StateManager) IsTerminated() bool {
	return sm.status == types.Terminated
}
