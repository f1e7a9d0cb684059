package device

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/padstorm/internal/mapping"
)

// LEDCommand is one recorded SetLED call.
type LEDCommand struct {
	Mode  uint8
	Layer uint8
	Color mapping.LedColor
	R     uint8
	G     uint8
	B     uint8
}

// Recorder is an in-memory Keyboard. It backs dry runs and tests: every
// call is recorded instead of being sent over USB. Each Recorder carries a
// session id so output from concurrent dry runs can be told apart.
type Recorder struct {
	mu sync.Mutex

	session    string
	programmed []*mapping.Macropad
	leds       []LEDCommand
	closed     bool

	// Err, when set, is returned by Program and SetLED to simulate a
	// transport failure.
	Err error
}

// NewRecorder returns a Recorder with a fresh session id.
func NewRecorder() *Recorder {
	return &Recorder{session: uuid.NewString()}
}

// Session returns the recorder's session id.
func (r *Recorder) Session() string {
	return r.session
}

// Program records the configuration.
func (r *Recorder) Program(pad *mapping.Macropad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.programmed = append(r.programmed, pad)
	return nil
}

// SetLED records the LED command, including the RGB bytes a real
// transport would send.
func (r *Recorder) SetLED(mode, layer uint8, color mapping.LedColor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	red, green, blue := ColorRGB(color)
	r.leds = append(r.leds, LEDCommand{Mode: mode, Layer: layer, Color: color, R: red, G: green, B: blue})
	return nil
}

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Programmed returns the recorded configurations.
func (r *Recorder) Programmed() []*mapping.Macropad {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*mapping.Macropad(nil), r.programmed...)
}

// LEDs returns the recorded LED commands.
func (r *Recorder) LEDs() []LEDCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LEDCommand(nil), r.leds...)
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Ensure Recorder implements Keyboard.
var _ Keyboard = (*Recorder)(nil)
