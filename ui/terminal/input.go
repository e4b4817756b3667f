package terminal

import (
	"grid-snake/game"

	"github.com/gdamore/tcell/v2"
)

// KeyName translates a tcell key event to a game key identifier. quit is set
// for Escape, Ctrl-C and q.
func KeyName(ev *tcell.EventKey) (name string, quit bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyArrowUp, false
	case tcell.KeyDown:
		return game.KeyArrowDown, false
	case tcell.KeyLeft:
		return game.KeyArrowLeft, false
	case tcell.KeyRight:
		return game.KeyArrowRight, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return "", true
		}
		return string(ev.Rune()), false
	}
	return "", false
}

// Forward reads screen events until the screen is finalised, sending key
// names to input and calling quit on a quit key.
func Forward(screen tcell.Screen, input func(key string), quit func()) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			name, q := KeyName(ev)
			if q {
				quit()
				continue
			}
			if name != "" {
				input(name)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
