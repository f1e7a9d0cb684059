package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Button is the configuration of a single key, or of a single knob motion.
//
// Mapping is a comma-separated sequence of compound actions, each a
// dash-separated chain of tokens ("ctrl-c,ctrl-v"). An empty mapping means
// the button is unassigned. Delay is the pause in milliseconds inserted
// between the encoded actions; not every device honors it.
type Button struct {
	Delay   uint16 `yaml:"delay"`
	Mapping string `yaml:"mapping"`
}

// NewButton returns an unassigned button with no delay.
func NewButton() Button {
	return Button{}
}

// UnmarshalYAML decodes a button, rejecting missing fields.
func (b *Button) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Delay   *uint16 `yaml:"delay"`
		Mapping *string `yaml:"mapping"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Delay == nil {
		return missingField("button", "delay")
	}
	if raw.Mapping == nil {
		return missingField("button", "mapping")
	}
	b.Delay = *raw.Delay
	b.Mapping = *raw.Mapping
	return nil
}

// KnobPart selects one of the three motions of a knob.
type KnobPart uint8

const (
	// KnobCCW is counter-clockwise rotation.
	KnobCCW KnobPart = iota
	// KnobPress is pressing the knob down.
	KnobPress
	// KnobCW is clockwise rotation.
	KnobCW
)

// String returns the part name as it appears in validation messages.
func (p KnobPart) String() string {
	switch p {
	case KnobCCW:
		return "ccw"
	case KnobPress:
		return "press"
	case KnobCW:
		return "cw"
	default:
		return "unknown"
	}
}

// Knob is a rotary encoder: three independently configured buttons for
// counter-clockwise rotation, press, and clockwise rotation.
type Knob struct {
	CCW   Button `yaml:"ccw"`
	Press Button `yaml:"press"`
	CW    Button `yaml:"cw"`
}

// NewKnob returns a knob with all three motions unassigned.
func NewKnob() Knob {
	return Knob{CCW: NewButton(), Press: NewButton(), CW: NewButton()}
}

// Part returns the button for the given motion.
func (k *Knob) Part(p KnobPart) Button {
	switch p {
	case KnobPress:
		return k.Press
	case KnobCW:
		return k.CW
	default:
		return k.CCW
	}
}

// SetPart replaces the button for the given motion.
func (k *Knob) SetPart(p KnobPart, b Button) {
	switch p {
	case KnobPress:
		k.Press = b
	case KnobCW:
		k.CW = b
	default:
		k.CCW = b
	}
}

// UnmarshalYAML decodes a knob, rejecting missing motions.
func (k *Knob) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		CCW   *Button `yaml:"ccw"`
		Press *Button `yaml:"press"`
		CW    *Button `yaml:"cw"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.CCW == nil {
		return missingField("knob", "ccw")
	}
	if raw.Press == nil {
		return missingField("knob", "press")
	}
	if raw.CW == nil {
		return missingField("knob", "cw")
	}
	k.CCW = *raw.CCW
	k.Press = *raw.Press
	k.CW = *raw.CW
	return nil
}

// missingField reports a required field absent from the persisted form.
func missingField(entity, field string) error {
	return fmt.Errorf("%s: missing required field %q", entity, field)
}
