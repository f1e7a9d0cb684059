package action

import "strings"

// MouseAction is a pointer action a button can emit instead of a key.
type MouseAction uint8

const (
	// MouseClick is a left click.
	MouseClick MouseAction = iota
	// MouseRClick is a right click.
	MouseRClick
	// MouseMClick is a middle click.
	MouseMClick
	// MouseWheelUp scrolls the wheel up.
	MouseWheelUp
	// MouseWheelDown scrolls the wheel down.
	MouseWheelDown
)

// mouseNames maps lower-case spellings to MouseAction values. Mouse tokens
// are the one category matched case-insensitively.
var mouseNames = map[string]MouseAction{
	"click":     MouseClick,
	"rclick":    MouseRClick,
	"mclick":    MouseMClick,
	"wheelup":   MouseWheelUp,
	"wheeldown": MouseWheelDown,
}

// String returns the spelling of the mouse action.
func (m MouseAction) String() string {
	switch m {
	case MouseClick:
		return "click"
	case MouseRClick:
		return "rclick"
	case MouseMClick:
		return "mclick"
	case MouseWheelUp:
		return "wheelup"
	case MouseWheelDown:
		return "wheeldown"
	default:
		return "unknown"
	}
}

// MouseFromName returns the MouseAction for a name, ignoring case.
func MouseFromName(name string) (MouseAction, bool) {
	m, ok := mouseNames[strings.ToLower(name)]
	return m, ok
}
