package validate

import (
	"fmt"

	"github.com/dshills/padstorm/internal/action"
)

// Per-family limits. The unrestricted cap is what an unknown product id
// gets: structural checks only.
const (
	maxChordsMulti        = 18
	maxChordsSingle       = 5
	maxChordsUnrestricted = 0xff

	// MaxDelayMillis is the highest per-button delay a delay-capable
	// device accepts.
	MaxDelayMillis = 6000
)

// LedMode is one LED mode a device family supports.
type LedMode struct {
	Mode uint8
	Name string
}

// Family describes the capability limits of one class of devices.
type Family struct {
	// Name identifies the family in error and warning messages.
	Name string

	// Products are the USB product ids belonging to the family.
	Products []uint16

	// MaxChords caps the number of compound actions per mapping.
	MaxChords int

	// DelayIgnored means the hardware silently drops button delays.
	// A configured delay is then a warning, never an error.
	DelayIgnored bool

	// FirstChordModifiersOnly restricts modifier chains to the first
	// compound action of a mapping.
	FirstChordModifiersOnly bool

	// MediaWhitelist lists the media keys the family supports.
	// Nil means the full media set.
	MediaWhitelist []action.MediaCode

	// LedModes lists the LED modes the family supports.
	// Nil means LED modes are not checked.
	LedModes []LedMode
}

// AllowsMedia reports whether the family supports the media key.
func (f *Family) AllowsMedia(code action.MediaCode) bool {
	if f.MediaWhitelist == nil {
		return true
	}
	for _, m := range f.MediaWhitelist {
		if m == code {
			return true
		}
	}
	return false
}

// LedModeByID returns the family's LED mode with the given number.
func (f *Family) LedModeByID(mode uint8) (LedMode, bool) {
	for _, m := range f.LedModes {
		if m.Mode == mode {
			return m, true
		}
	}
	return LedMode{}, false
}

// multiLayer covers the 0x8840 and 0x8842 products: three layers, delays
// honored, modifiers allowed on any chained action.
var multiLayer = &Family{
	Name:      "multi-layer",
	Products:  []uint16{0x8840, 0x8842},
	MaxChords: maxChordsMulti,
	LedModes: []LedMode{
		{0, "off"},
		{1, "always on"},
		{2, "shock"},
		{3, "shock2"},
		{4, "light key"},
		{5, "white always on"},
	},
}

// singleLayer covers the 0x8890 product: a tighter chain cap, no delay
// support, modifiers only on the first chained action, and a reduced
// media-key set.
var singleLayer = &Family{
	Name:                    "single-layer",
	Products:                []uint16{0x8890},
	MaxChords:               maxChordsSingle,
	DelayIgnored:            true,
	FirstChordModifiersOnly: true,
	MediaWhitelist: []action.MediaCode{
		action.MediaPlay,
		action.MediaPrev,
		action.MediaNext,
		action.MediaMute,
		action.MediaVolumeUp,
		action.MediaVolumeDown,
	},
	LedModes: []LedMode{
		{0, "off"},
		{1, "last pushed"},
		{2, "cycle colors"},
	},
}

// unrestricted is used when no product id is given: structure is checked
// but family-specific limits are not enforced.
var unrestricted = &Family{
	Name:      "unrestricted",
	MaxChords: maxChordsUnrestricted,
}

// families lists every recognized family.
var families = []*Family{multiLayer, singleLayer}

// Default returns the family used when no product id is known.
func Default() *Family {
	return unrestricted
}

// UnknownProductError reports a product id that belongs to no recognized
// family.
type UnknownProductError struct {
	ID uint16
}

// Error implements the error interface.
func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product id 0x%04x", e.ID)
}

// FamilyForProduct returns the family owning a product id.
func FamilyForProduct(id uint16) (*Family, error) {
	for _, f := range families {
		for _, p := range f.Products {
			if p == id {
				return f, nil
			}
		}
	}
	return nil, &UnknownProductError{ID: id}
}
