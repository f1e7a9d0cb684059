package action

import "fmt"

// Key is a well-known keyboard key: a letter, a digit, a function key, or
// one of the named keys.
type Key uint8

const (
	// KeyA through KeyZ are the letter keys. The block is contiguous.
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Key0 through Key9 are the digit keys. The block is contiguous.
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// KeyF1 through KeyF24 are the function keys. The block is contiguous.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Named keys.
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeyComma
	KeyDot
	KeySlash
	KeyBackslash
	KeyMinus
	KeyEqual
	KeySemicolon
	KeyQuote
	KeyLBracket
	KeyRBracket
	KeyGrave
	KeyCapslock
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPrintScreen
)

// namedKeys maps canonical spellings of the non-letter, non-digit,
// non-function keys to Key values.
var namedKeys = map[string]Key{
	"Space":       KeySpace,
	"Enter":       KeyEnter,
	"Backspace":   KeyBackspace,
	"Tab":         KeyTab,
	"Esc":         KeyEsc,
	"Escape":      KeyEsc,
	"Comma":       KeyComma,
	"Dot":         KeyDot,
	"Slash":       KeySlash,
	"Backslash":   KeyBackslash,
	"Minus":       KeyMinus,
	"Equal":       KeyEqual,
	"Semicolon":   KeySemicolon,
	"Quote":       KeyQuote,
	"Lbracket":    KeyLBracket,
	"Rbracket":    KeyRBracket,
	"Grave":       KeyGrave,
	"Capslock":    KeyCapslock,
	"Insert":      KeyInsert,
	"Ins":         KeyInsert,
	"Delete":      KeyDelete,
	"Del":         KeyDelete,
	"Home":        KeyHome,
	"End":         KeyEnd,
	"Pgup":        KeyPgUp,
	"Pgdown":      KeyPgDown,
	"Up":          KeyUp,
	"Down":        KeyDown,
	"Left":        KeyLeft,
	"Right":       KeyRight,
	"Printscreen": KeyPrintScreen,
}

// keyNames maps every canonical spelling to its Key. Letter, digit, and
// function-key entries are generated from their contiguous blocks.
var keyNames = buildKeyNames()

func buildKeyNames() map[string]Key {
	names := make(map[string]Key, 26+10+24+len(namedKeys))
	for i := 0; i < 26; i++ {
		names[string(rune('A'+i))] = KeyA + Key(i)
	}
	for i := 0; i < 10; i++ {
		names[string(rune('0'+i))] = Key0 + Key(i)
	}
	for i := 0; i < 24; i++ {
		names[fmt.Sprintf("F%d", i+1)] = KeyF1 + Key(i)
	}
	for name, k := range namedKeys {
		names[name] = k
	}
	return names
}

// String returns the canonical spelling of the key.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	switch k {
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyEsc:
		return "Esc"
	case KeyComma:
		return "Comma"
	case KeyDot:
		return "Dot"
	case KeySlash:
		return "Slash"
	case KeyBackslash:
		return "Backslash"
	case KeyMinus:
		return "Minus"
	case KeyEqual:
		return "Equal"
	case KeySemicolon:
		return "Semicolon"
	case KeyQuote:
		return "Quote"
	case KeyLBracket:
		return "Lbracket"
	case KeyRBracket:
		return "Rbracket"
	case KeyGrave:
		return "Grave"
	case KeyCapslock:
		return "Capslock"
	case KeyInsert:
		return "Insert"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPgUp:
		return "Pgup"
	case KeyPgDown:
		return "Pgdown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPrintScreen:
		return "Printscreen"
	default:
		return "unknown"
	}
}

// KeyFromName returns the Key for a canonical spelling.
func KeyFromName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
