package validate

import (
	"fmt"
	"strings"

	"github.com/dshills/padstorm/internal/action"
	"github.com/dshills/padstorm/internal/mapping"
)

// Macropad validates a configuration against a device family. A nil family
// means no target device is known; structure is still checked but
// family-specific limits are not enforced.
//
// The walk is fail-fast: the first violation is returned, annotated with
// its position. Non-fatal findings (a delay configured for a family that
// ignores delays) come back as warnings alongside a nil error.
func Macropad(pad *mapping.Macropad, fam *Family) ([]Warning, error) {
	if fam == nil {
		fam = Default()
	}

	layers := len(pad.Layers)
	if layers == 0 || layers > mapping.DefaultLayerCount {
		return nil, fmt.Errorf("number of layers must be between 1 and %d, got %d", mapping.DefaultLayerCount, layers)
	}
	if layers != int(pad.Device.Layers) {
		return nil, fmt.Errorf("device declares %d layers but %d are present", pad.Device.Layers, layers)
	}

	var warnings []Warning
	for i, layer := range pad.Layers {
		if len(layer.Buttons) != int(pad.Device.Rows) {
			return nil, &Error{
				Path: fmt.Sprintf("layer %d", i+1),
				Err:  fmt.Errorf("button grid has %d rows, device declares %d", len(layer.Buttons), pad.Device.Rows),
			}
		}
		for r, row := range layer.Buttons {
			if len(row) != int(pad.Device.Cols) {
				return nil, &Error{
					Path: fmt.Sprintf("layer %d, row %d", i+1, r+1),
					Err:  fmt.Errorf("row has %d buttons, device declares %d columns", len(row), pad.Device.Cols),
				}
			}
			for c, btn := range row {
				path := fmt.Sprintf("layer %d, row %d, button %d", i+1, r+1, c+1)
				if err := checkButton(btn, fam, path, &warnings); err != nil {
					return nil, err
				}
			}
		}

		if len(layer.Knobs) != int(pad.Device.Knobs) {
			return nil, &Error{
				Path: fmt.Sprintf("layer %d", i+1),
				Err:  fmt.Errorf("layer has %d knobs, device declares %d", len(layer.Knobs), pad.Device.Knobs),
			}
		}
		for k := range layer.Knobs {
			knob := &layer.Knobs[k]
			for _, part := range []mapping.KnobPart{mapping.KnobCCW, mapping.KnobPress, mapping.KnobCW} {
				path := fmt.Sprintf("layer %d, knob %d, %s", i+1, k+1, part)
				if err := checkButton(knob.Part(part), fam, path, &warnings); err != nil {
					return nil, err
				}
			}
		}
	}

	if pad.LedSettings != nil {
		if err := checkLed(*pad.LedSettings, fam); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}

// checkButton applies the family's delay rule, chained-action cap, modifier
// position rule, and media whitelist to one button. Unassigned buttons only
// get the delay checks.
func checkButton(b mapping.Button, fam *Family, path string, warnings *[]Warning) error {
	if fam.DelayIgnored {
		if b.Delay > 0 {
			*warnings = append(*warnings, Warning{
				Path:    path,
				Message: fmt.Sprintf("delay of %dms is ignored by %s devices", b.Delay, fam.Name),
			})
		}
	} else if b.Delay > MaxDelayMillis {
		return &Error{Path: path, Err: &DelayError{Delay: b.Delay, Max: MaxDelayMillis}}
	}

	if b.Mapping == "" {
		return nil
	}

	chords := strings.Split(b.Mapping, ",")
	if len(chords) > fam.MaxChords {
		return &Error{Path: path, Err: &CapacityError{Actions: len(chords), Max: fam.MaxChords}}
	}

	for i, chord := range chords {
		tokens := strings.Split(chord, "-")
		if fam.FirstChordModifiersOnly && i > 0 && len(tokens) > 1 {
			return &Error{Path: path, Err: &ModifierPositionError{Chord: i + 1, Family: fam.Name}}
		}
		for _, raw := range tokens {
			token, err := action.Classify(raw)
			if err != nil {
				return &Error{Path: path, Err: err}
			}
			if token.Kind == action.KindMedia && !fam.AllowsMedia(token.Media) {
				return &Error{Path: path, Err: &MediaKeyError{Name: raw, Family: fam.Name}}
			}
		}
	}

	return nil
}

// checkLed validates LED settings against the family's mode table.
func checkLed(led mapping.LedSettings, fam *Family) error {
	if !led.Color.Valid() {
		return &Error{Path: "led_settings", Err: fmt.Errorf("color %d is not in the palette", led.Color)}
	}
	if led.Layer == 0 || led.Layer > mapping.DefaultLayerCount {
		return &Error{Path: "led_settings", Err: fmt.Errorf("layer must be between 1 and %d, got %d", mapping.DefaultLayerCount, led.Layer)}
	}
	if fam.LedModes != nil {
		if _, ok := fam.LedModeByID(led.Mode); !ok {
			return &Error{Path: "led_settings", Err: fmt.Errorf("mode %d is not supported by %s devices", led.Mode, fam.Name)}
		}
	}
	return nil
}
