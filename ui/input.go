package ui

import (
	"grid-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var arrowKeys = []struct {
	code int32
	name string
}{
	{rl.KeyUp, game.KeyArrowUp},
	{rl.KeyDown, game.KeyArrowDown},
	{rl.KeyLeft, game.KeyArrowLeft},
	{rl.KeyRight, game.KeyArrowRight},
}

// PressedKeys returns the key identifiers pressed since the last frame.
// Call it from the main thread, once per frame.
func PressedKeys() []string {
	var keys []string
	for _, k := range arrowKeys {
		if rl.IsKeyPressed(k.code) {
			keys = append(keys, k.name)
		}
	}
	return keys
}

// QuitPressed reports whether the quit key was pressed this frame.
func QuitPressed() bool {
	return rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape)
}
