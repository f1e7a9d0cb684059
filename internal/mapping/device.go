package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Orientation is the physical rotation of the device on the desk. It only
// affects how an editor presents the grid; the on-device layout is fixed.
type Orientation uint8

const (
	// OrientationNormal is the upright orientation.
	OrientationNormal Orientation = iota
	// OrientationClockwise is rotated 90 degrees clockwise.
	OrientationClockwise
	// OrientationCounterClockwise is rotated 90 degrees counter-clockwise.
	OrientationCounterClockwise
	// OrientationUpsideDown is rotated 180 degrees.
	OrientationUpsideDown
)

// orientationNames maps persisted names to Orientation values.
var orientationNames = map[string]Orientation{
	"normal":           OrientationNormal,
	"clockwise":        OrientationClockwise,
	"counterclockwise": OrientationCounterClockwise,
	"upsidedown":       OrientationUpsideDown,
}

// String returns the persisted name of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationClockwise:
		return "clockwise"
	case OrientationCounterClockwise:
		return "counterclockwise"
	case OrientationUpsideDown:
		return "upsidedown"
	default:
		return "normal"
	}
}

// OrientationFromName returns the Orientation for a persisted name.
func OrientationFromName(name string) (Orientation, bool) {
	o, ok := orientationNames[name]
	return o, ok
}

// MarshalYAML encodes the orientation as its name.
func (o Orientation) MarshalYAML() (any, error) {
	return o.String(), nil
}

// UnmarshalYAML decodes an orientation name.
func (o *Orientation) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := OrientationFromName(name)
	if !ok {
		return fmt.Errorf("unknown orientation %q", name)
	}
	*o = parsed
	return nil
}

// Device describes the fixed physical geometry of a macropad. Changing the
// geometry of an existing Macropad requires regenerating its layers; use
// Macropad.Resize for that.
type Device struct {
	Orientation Orientation `yaml:"orientation"`
	Rows        uint8       `yaml:"rows"`
	Cols        uint8       `yaml:"cols"`
	Knobs       uint8       `yaml:"knobs"`
	Layers      uint8       `yaml:"layers"`
}

// DefaultLayerCount is the layer count assumed for configurations persisted
// before the layers field existed. This is the only schema-evolution
// allowance: every other field is required.
const DefaultLayerCount = 3

// UnmarshalYAML decodes a device, rejecting missing fields except layers,
// which defaults to DefaultLayerCount.
func (d *Device) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Orientation *Orientation `yaml:"orientation"`
		Rows        *uint8       `yaml:"rows"`
		Cols        *uint8       `yaml:"cols"`
		Knobs       *uint8       `yaml:"knobs"`
		Layers      *uint8       `yaml:"layers"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Orientation == nil {
		return missingField("device", "orientation")
	}
	if raw.Rows == nil {
		return missingField("device", "rows")
	}
	if raw.Cols == nil {
		return missingField("device", "cols")
	}
	if raw.Knobs == nil {
		return missingField("device", "knobs")
	}
	d.Orientation = *raw.Orientation
	d.Rows = *raw.Rows
	d.Cols = *raw.Cols
	d.Knobs = *raw.Knobs
	if raw.Layers != nil {
		d.Layers = *raw.Layers
	} else {
		d.Layers = DefaultLayerCount
	}
	return nil
}
