package mapping

import "gopkg.in/yaml.v3"

// Macropad is the complete configuration unit: device geometry, one Layer
// per switchable layer, and optional LED settings.
type Macropad struct {
	Device      Device       `yaml:"device"`
	Layers      []Layer      `yaml:"layers"`
	LedSettings *LedSettings `yaml:"led_settings"`
}

// New returns the factory-default configuration for the given geometry:
// three layers of unassigned buttons and the LED on mode 1, layer 1, cyan.
func New(rows, cols, knobs uint8) *Macropad {
	layers := make([]Layer, DefaultLayerCount)
	for i := range layers {
		layers[i] = NewLayer(rows, cols, knobs)
	}
	return &Macropad{
		Device: Device{
			Orientation: OrientationNormal,
			Rows:        rows,
			Cols:        cols,
			Knobs:       knobs,
			Layers:      DefaultLayerCount,
		},
		Layers:      layers,
		LedSettings: &LedSettings{Mode: 1, Layer: 1, Color: LedCyan},
	}
}

// Resize changes the device geometry and regenerates every layer to match.
// Button and knob assignments in cells that exist under both the old and the
// new geometry are preserved; everything else starts unassigned.
func (m *Macropad) Resize(rows, cols, knobs, layers uint8, orientation Orientation) {
	old := m.Layers

	m.Device.Orientation = orientation
	m.Device.Rows = rows
	m.Device.Cols = cols
	m.Device.Knobs = knobs
	m.Device.Layers = layers

	m.Layers = make([]Layer, layers)
	for i := range m.Layers {
		next := NewLayer(rows, cols, knobs)
		if i < len(old) {
			for r := 0; r < int(rows) && r < len(old[i].Buttons); r++ {
				for c := 0; c < int(cols) && c < len(old[i].Buttons[r]); c++ {
					next.Buttons[r][c] = old[i].Buttons[r][c]
				}
			}
			for k := 0; k < int(knobs) && k < len(old[i].Knobs); k++ {
				next.Knobs[k] = old[i].Knobs[k]
			}
		}
		m.Layers[i] = next
	}
}

// UnmarshalYAML decodes a macropad, rejecting missing fields.
// LedSettings is the one optional field.
func (m *Macropad) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Device      *Device      `yaml:"device"`
		Layers      *[]Layer     `yaml:"layers"`
		LedSettings *LedSettings `yaml:"led_settings"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Device == nil {
		return missingField("macropad", "device")
	}
	if raw.Layers == nil {
		return missingField("macropad", "layers")
	}
	m.Device = *raw.Device
	m.Layers = *raw.Layers
	m.LedSettings = raw.LedSettings
	return nil
}
