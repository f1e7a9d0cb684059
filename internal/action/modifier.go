package action

// Modifier is a modifier key held together with the action token that
// follows it in a compound action.
type Modifier uint8

const (
	// ModCtrl is the left Control key.
	ModCtrl Modifier = iota
	// ModShift is the left Shift key.
	ModShift
	// ModAlt is the left Alt key.
	ModAlt
	// ModWin is the left OS key.
	ModWin
	// ModRCtrl is the right Control key.
	ModRCtrl
	// ModRShift is the right Shift key.
	ModRShift
	// ModRAlt is the right Alt key.
	ModRAlt
	// ModRWin is the right OS key.
	ModRWin
)

// modifierNames maps canonical spellings to Modifier values.
var modifierNames = map[string]Modifier{
	"Ctrl":   ModCtrl,
	"Shift":  ModShift,
	"Alt":    ModAlt,
	"Win":    ModWin,
	"Rctrl":  ModRCtrl,
	"Rshift": ModRShift,
	"Ralt":   ModRAlt,
	"Rwin":   ModRWin,
}

// String returns the canonical spelling of the modifier.
func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "Ctrl"
	case ModShift:
		return "Shift"
	case ModAlt:
		return "Alt"
	case ModWin:
		return "Win"
	case ModRCtrl:
		return "Rctrl"
	case ModRShift:
		return "Rshift"
	case ModRAlt:
		return "Ralt"
	case ModRWin:
		return "Rwin"
	default:
		return "unknown"
	}
}

// ModifierFromName returns the Modifier for a canonical spelling.
func ModifierFromName(name string) (Modifier, bool) {
	m, ok := modifierNames[name]
	return m, ok
}
