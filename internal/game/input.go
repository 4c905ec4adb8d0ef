package game

import (
	"time"

	"arcade-survivors/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionStop
	ActionPause
	ActionMute
	ActionRestart
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return ActionMoveUp
	case 'j', 'J', 's', 'S':
		return ActionMoveDown
	case 'l', 'L', 'd', 'D':
		return ActionMoveRight
	case 'h', 'H', 'a', 'A':
		return ActionMoveLeft
	case ' ', '.':
		return ActionStop
	case 'p', 'P':
		return ActionPause
	case 'm', 'M':
		return ActionMute
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Terminals report key presses but not releases, so a direction counts as
// held for a while after its last press. The first press waits out the
// terminal's auto-repeat delay; repeats only need to bridge the repeat rate.
const (
	firstHold  = 500 * time.Millisecond
	repeatHold = 150 * time.Millisecond
)

type axis uint8

const (
	axisLeft axis = iota
	axisRight
	axisUp
	axisDown
	numAxes
)

// keyState turns discrete key presses into held movement keys.
type keyState struct {
	until [numAxes]time.Time
}

// press records a movement action at now. Pressing a direction releases its
// opposite.
func (k *keyState) press(a Action, now time.Time) {
	var dir, opposite axis
	switch a {
	case ActionMoveLeft:
		dir, opposite = axisLeft, axisRight
	case ActionMoveRight:
		dir, opposite = axisRight, axisLeft
	case ActionMoveUp:
		dir, opposite = axisUp, axisDown
	case ActionMoveDown:
		dir, opposite = axisDown, axisUp
	case ActionStop:
		k.release()
		return
	default:
		return
	}

	hold := firstHold
	if now.Before(k.until[dir]) {
		hold = repeatHold
	}
	if next := now.Add(hold); next.After(k.until[dir]) {
		k.until[dir] = next
	}
	k.until[opposite] = time.Time{}
}

func (k *keyState) release() {
	k.until = [numAxes]time.Time{}
}

// input returns the keys held at now.
func (k *keyState) input(now time.Time) system.Input {
	return system.Input{
		Left:  now.Before(k.until[axisLeft]),
		Right: now.Before(k.until[axisRight]),
		Up:    now.Before(k.until[axisUp]),
		Down:  now.Before(k.until[axisDown]),
	}
}
