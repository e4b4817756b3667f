package game

import "grid-snake/game/types"

// Key identifiers accepted by SetDirection. Backends translate their native
// key codes to these names.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// DirectionForKey maps a key identifier to a direction.
func DirectionForKey(key string) (types.Direction, bool) {
	switch key {
	case KeyArrowDown:
		return types.Down, true
	case KeyArrowUp:
		return types.Up, true
	case KeyArrowLeft:
		return types.Left, true
	case KeyArrowRight:
		return types.Right, true
	}
	return 0, false
}

// KeyForDirection is the inverse of DirectionForKey.
func KeyForDirection(dir types.Direction) string {
	switch dir {
	case types.Up:
		return KeyArrowUp
	case types.Down:
		return KeyArrowDown
	case types.Left:
		return KeyArrowLeft
	case types.Right:
		return KeyArrowRight
	}
	return ""
}
