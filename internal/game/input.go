package game

import "github.com/gdamore/tcell/v2"

// Action is one thing the viewer asked for.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionStairs // whichever stairs are underfoot
	ActionDescend
	ActionAscend
	ActionQuit
)

var keyActions = map[tcell.Key]Action{
	tcell.KeyUp:     ActionMoveN,
	tcell.KeyDown:   ActionMoveS,
	tcell.KeyRight:  ActionMoveE,
	tcell.KeyLeft:   ActionMoveW,
	tcell.KeyEnter:  ActionStairs,
	tcell.KeyEscape: ActionQuit,
}

// Vi keys, plus the roguelike stair and wait keys. Letters match either case.
var runeActions = map[rune]Action{
	'k': ActionMoveN, 'j': ActionMoveS, 'l': ActionMoveE, 'h': ActionMoveW,
	'y': ActionMoveNW, 'u': ActionMoveNE, 'b': ActionMoveSW, 'n': ActionMoveSE,
	'.': ActionWait,
	'>': ActionDescend,
	'<': ActionAscend,
	'q': ActionQuit,
}

var moveDeltas = map[Action][2]int{
	ActionMoveN:  {0, -1},
	ActionMoveS:  {0, 1},
	ActionMoveE:  {1, 0},
	ActionMoveW:  {-1, 0},
	ActionMoveNE: {1, -1},
	ActionMoveNW: {-1, -1},
	ActionMoveSE: {1, 1},
	ActionMoveSW: {-1, 1},
}

func keyToAction(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return keyActions[ev.Key()]
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return runeActions[r]
}

// actionToDelta returns the step of a movement action, (0, 0) otherwise.
func actionToDelta(a Action) (int, int) {
	d := moveDeltas[a]
	return d[0], d[1]
}
