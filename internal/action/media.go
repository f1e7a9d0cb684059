package action

// MediaCode is a named media, volume, or brightness control.
type MediaCode uint8

const (
	// MediaPlay toggles playback.
	MediaPlay MediaCode = iota
	// MediaStop stops playback.
	MediaStop
	// MediaNext skips to the next track.
	MediaNext
	// MediaPrev skips to the previous track.
	MediaPrev
	// MediaMute toggles audio mute.
	MediaMute
	// MediaVolumeUp raises the volume.
	MediaVolumeUp
	// MediaVolumeDown lowers the volume.
	MediaVolumeDown
	// MediaBrightnessUp raises screen brightness.
	MediaBrightnessUp
	// MediaBrightnessDown lowers screen brightness.
	MediaBrightnessDown
)

// mediaNames maps canonical spellings, including the long-form aliases, to
// MediaCode values.
var mediaNames = map[string]MediaCode{
	"Play":           MediaPlay,
	"Stop":           MediaStop,
	"Next":           MediaNext,
	"Prev":           MediaPrev,
	"Previous":       MediaPrev,
	"Mute":           MediaMute,
	"Volup":          MediaVolumeUp,
	"Volumeup":       MediaVolumeUp,
	"Voldown":        MediaVolumeDown,
	"Volumedown":     MediaVolumeDown,
	"Brightnessup":   MediaBrightnessUp,
	"Brightnessdown": MediaBrightnessDown,
}

// String returns the canonical spelling of the media code.
func (m MediaCode) String() string {
	switch m {
	case MediaPlay:
		return "Play"
	case MediaStop:
		return "Stop"
	case MediaNext:
		return "Next"
	case MediaPrev:
		return "Prev"
	case MediaMute:
		return "Mute"
	case MediaVolumeUp:
		return "Volup"
	case MediaVolumeDown:
		return "Voldown"
	case MediaBrightnessUp:
		return "Brightnessup"
	case MediaBrightnessDown:
		return "Brightnessdown"
	default:
		return "unknown"
	}
}

// MediaFromName returns the MediaCode for a canonical spelling.
func MediaFromName(name string) (MediaCode, bool) {
	m, ok := mediaNames[name]
	return m, ok
}
