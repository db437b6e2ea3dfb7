package core

import "strings"

// Intent represents a normalized piece command, abstracted from physical key presses.
type Intent int

const (
	IntentNone      Intent = iota
	IntentMoveLeft         // A, Left arrow
	IntentMoveRight        // D, Right arrow
	IntentMoveUp           // W - debug only
	IntentMoveDown         // S, Down arrow
	IntentRotate           // Up arrow
	IntentPrevPiece        // P
	IntentNextPiece        // N
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentMoveUp:
		return "MoveUp"
	case IntentMoveDown:
		return "MoveDown"
	case IntentRotate:
		return "Rotate"
	case IntentPrevPiece:
		return "PrevPiece"
	case IntentNextPiece:
		return "NextPiece"
	default:
		return "Unknown"
	}
}

// keyIntents maps lowercase key identifiers to intents.
// Arrow keys are accepted in the Bubble Tea ("left"), DOM ("arrowleft")
// and hyphenated ("left-arrow") spellings.
var keyIntents = map[string]Intent{
	"a":           IntentMoveLeft,
	"left":        IntentMoveLeft,
	"arrowleft":   IntentMoveLeft,
	"left-arrow":  IntentMoveLeft,
	"d":           IntentMoveRight,
	"right":       IntentMoveRight,
	"arrowright":  IntentMoveRight,
	"right-arrow": IntentMoveRight,
	"w":           IntentMoveUp,
	"s":           IntentMoveDown,
	"down":        IntentMoveDown,
	"arrowdown":   IntentMoveDown,
	"down-arrow":  IntentMoveDown,
	"up":          IntentRotate,
	"arrowup":     IntentRotate,
	"up-arrow":    IntentRotate,
	"p":           IntentPrevPiece,
	"n":           IntentNextPiece,
}

// ParseKey translates a key identifier into an intent, ignoring case.
// Unrecognized keys yield IntentNone.
func ParseKey(key string) Intent {
	if intent, ok := keyIntents[strings.ToLower(key)]; ok {
		return intent
	}
	return IntentNone
}

// Control represents a game-level command issued by the player or a driver.
type Control int

const (
	ControlNone Control = iota
	ControlStart
	ControlStop
	ControlPause
	ControlResume
	ControlTogglePause
	ControlSpeedUp
	ControlSpeedDown
	ControlRefresh // Recompute the frame at the current position
)

var controlNames = map[Control]string{
	ControlNone:        "none",
	ControlStart:       "start",
	ControlStop:        "stop",
	ControlPause:       "pause",
	ControlResume:      "resume",
	ControlTogglePause: "toggle-pause",
	ControlSpeedUp:     "speed-up",
	ControlSpeedDown:   "speed-down",
	ControlRefresh:     "refresh",
}

// String returns the control's script name.
func (c Control) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseControl resolves a script name such as "start" or "speed-up".
func ParseControl(name string) (Control, bool) {
	name = strings.ToLower(name)
	for c, n := range controlNames {
		if c != ControlNone && n == name {
			return c, true
		}
	}
	return ControlNone, false
}
