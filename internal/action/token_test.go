package action

import (
	"errors"
	"testing"
)

func TestClassifyModifiers(t *testing.T) {
	tests := []struct {
		token string
		want  Modifier
	}{
		{"ctrl", ModCtrl},
		{"Ctrl", ModCtrl},
		{"shift", ModShift},
		{"alt", ModAlt},
		{"win", ModWin},
		{"rctrl", ModRCtrl},
		{"rshift", ModRShift},
		{"ralt", ModRAlt},
		{"rwin", ModRWin},
	}

	for _, tt := range tests {
		got, err := Classify(tt.token)
		if err != nil {
			t.Errorf("Classify(%q) error = %v", tt.token, err)
			continue
		}
		if got.Kind != KindModifier || got.Modifier != tt.want {
			t.Errorf("Classify(%q) = %v/%v, want modifier %v", tt.token, got.Kind, got.Modifier, tt.want)
		}
	}
}

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		token string
		want  MediaCode
	}{
		{"play", MediaPlay},
		{"stop", MediaStop},
		{"next", MediaNext},
		{"prev", MediaPrev},
		{"previous", MediaPrev},
		{"mute", MediaMute},
		{"volup", MediaVolumeUp},
		{"volumeup", MediaVolumeUp},
		{"voldown", MediaVolumeDown},
		{"volumedown", MediaVolumeDown},
		{"brightnessup", MediaBrightnessUp},
		{"brightnessdown", MediaBrightnessDown},
	}

	for _, tt := range tests {
		got, err := Classify(tt.token)
		if err != nil {
			t.Errorf("Classify(%q) error = %v", tt.token, err)
			continue
		}
		if got.Kind != KindMedia || got.Media != tt.want {
			t.Errorf("Classify(%q) = %v/%v, want media %v", tt.token, got.Kind, got.Media, tt.want)
		}
	}
}

func TestClassifyWellKnownKeys(t *testing.T) {
	tests := []struct {
		token string
		want  Key
	}{
		{"a", KeyA},
		{"z", KeyZ},
		{"A", KeyA},
		{"0", Key0},
		{"9", Key9},
		{"f1", KeyF1},
		{"f24", KeyF24},
		{"space", KeySpace},
		{"enter", KeyEnter},
		{"backspace", KeyBackspace},
		{"tab", KeyTab},
		{"esc", KeyEsc},
		{"escape", KeyEsc},
		{"comma", KeyComma},
		{"dot", KeyDot},
		{"slash", KeySlash},
		{"home", KeyHome},
		{"pgdown", KeyPgDown},
	}

	for _, tt := range tests {
		got, err := Classify(tt.token)
		if err != nil {
			t.Errorf("Classify(%q) error = %v", tt.token, err)
			continue
		}
		if got.Kind != KindKey || got.Key != tt.want {
			t.Errorf("Classify(%q) = %v/%v, want key %v", tt.token, got.Kind, got.Key, tt.want)
		}
	}
}

func TestClassifyMouse(t *testing.T) {
	tests := []struct {
		token string
		want  MouseAction
	}{
		{"click", MouseClick},
		{"rclick", MouseRClick},
		{"mclick", MouseMClick},
		{"wheelup", MouseWheelUp},
		{"wheeldown", MouseWheelDown},
		// Mouse actions alone are fully case-insensitive.
		{"WheelUp", MouseWheelUp},
		{"RCLICK", MouseRClick},
	}

	for _, tt := range tests {
		got, err := Classify(tt.token)
		if err != nil {
			t.Errorf("Classify(%q) error = %v", tt.token, err)
			continue
		}
		if got.Kind != KindMouse || got.Mouse != tt.want {
			t.Errorf("Classify(%q) = %v/%v, want mouse %v", tt.token, got.Kind, got.Mouse, tt.want)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, token := range []string{"foobar", "", "ctrlx", "CTRL", "f25", "Playx"} {
		_, err := Classify(token)
		if err == nil {
			t.Errorf("Classify(%q) = nil error", token)
			continue
		}
		var unknown *UnknownTokenError
		if !errors.As(err, &unknown) {
			t.Errorf("Classify(%q) error type = %T", token, err)
			continue
		}
		if unknown.Token != token {
			t.Errorf("Classify(%q) named %q", token, unknown.Token)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ctrl", "Ctrl"},
		{"Ctrl", "Ctrl"},
		{"CTRL", "CTRL"},
		{"a", "A"},
		{"f12", "F12"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
