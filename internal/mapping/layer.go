package mapping

import "gopkg.in/yaml.v3"

// Layer is one complete, independently switchable keymap: a rows x cols grid
// of buttons plus one entry per knob.
type Layer struct {
	Buttons [][]Button `yaml:"buttons"`
	Knobs   []Knob     `yaml:"knobs"`
}

// NewLayer returns a layer of unassigned buttons and knobs for the given
// geometry.
func NewLayer(rows, cols, knobs uint8) Layer {
	grid := make([][]Button, rows)
	for r := range grid {
		row := make([]Button, cols)
		for c := range row {
			row[c] = NewButton()
		}
		grid[r] = row
	}

	ks := make([]Knob, knobs)
	for i := range ks {
		ks[i] = NewKnob()
	}

	return Layer{Buttons: grid, Knobs: ks}
}

// ButtonAt returns the button at the given grid cell.
// The second result is false if the cell is out of range.
func (l *Layer) ButtonAt(row, col int) (Button, bool) {
	if row < 0 || row >= len(l.Buttons) {
		return Button{}, false
	}
	if col < 0 || col >= len(l.Buttons[row]) {
		return Button{}, false
	}
	return l.Buttons[row][col], true
}

// SetButton replaces the button at the given grid cell.
// Returns false if the cell is out of range.
func (l *Layer) SetButton(row, col int, b Button) bool {
	if row < 0 || row >= len(l.Buttons) {
		return false
	}
	if col < 0 || col >= len(l.Buttons[row]) {
		return false
	}
	l.Buttons[row][col] = b
	return true
}

// UnmarshalYAML decodes a layer, rejecting missing fields.
func (l *Layer) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Buttons *[][]Button `yaml:"buttons"`
		Knobs   *[]Knob     `yaml:"knobs"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Buttons == nil {
		return missingField("layer", "buttons")
	}
	if raw.Knobs == nil {
		return missingField("layer", "knobs")
	}
	l.Buttons = *raw.Buttons
	l.Knobs = *raw.Knobs
	return nil
}
