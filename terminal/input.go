package terminal

import "github.com/gdamore/tcell/v2"

// Action is what a key asks the host to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionSteer
	ActionPause
	ActionRestart
	ActionQuit
)

// Command is a translated key press. DX and DY are set for ActionSteer;
// both zero means stop.
type Command struct {
	Action Action
	DX, DY float64
}

// Translate maps a key event to a command. Terminals report no key
// releases, so a steering key sets a heading that holds until the next one.
func Translate(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return Command{Action: ActionSteer, DY: -1}
	case tcell.KeyDown:
		return Command{Action: ActionSteer, DY: 1}
	case tcell.KeyLeft:
		return Command{Action: ActionSteer, DX: -1}
	case tcell.KeyRight:
		return Command{Action: ActionSteer, DX: 1}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	switch ev.Rune() {
	case 'w', 'k':
		return Command{Action: ActionSteer, DY: -1}
	case 's', 'j':
		return Command{Action: ActionSteer, DY: 1}
	case 'a', 'h':
		return Command{Action: ActionSteer, DX: -1}
	case 'd', 'l':
		return Command{Action: ActionSteer, DX: 1}
	case ' ':
		return Command{Action: ActionSteer}
	case 'p':
		return Command{Action: ActionPause}
	case 'r':
		return Command{Action: ActionRestart}
	case 'q':
		return Command{Action: ActionQuit}
	}
	return Command{}
}
