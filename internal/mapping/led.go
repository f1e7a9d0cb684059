package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LedColor is one of the fixed LED palette entries a device can display.
type LedColor uint8

const (
	// LedRed is solid red.
	LedRed LedColor = iota
	// LedOrange is solid orange.
	LedOrange
	// LedYellow is solid yellow.
	LedYellow
	// LedGreen is solid green.
	LedGreen
	// LedCyan is solid cyan.
	LedCyan
	// LedBlue is solid blue.
	LedBlue
	// LedPurple is solid purple.
	LedPurple
)

// ledColorNames maps persisted names to LedColor values.
var ledColorNames = map[string]LedColor{
	"red":    LedRed,
	"orange": LedOrange,
	"yellow": LedYellow,
	"green":  LedGreen,
	"cyan":   LedCyan,
	"blue":   LedBlue,
	"purple": LedPurple,
}

// Palette returns every color in display order.
func Palette() []LedColor {
	return []LedColor{LedRed, LedOrange, LedYellow, LedGreen, LedCyan, LedBlue, LedPurple}
}

// String returns the persisted name of the color.
func (c LedColor) String() string {
	switch c {
	case LedRed:
		return "red"
	case LedOrange:
		return "orange"
	case LedYellow:
		return "yellow"
	case LedGreen:
		return "green"
	case LedCyan:
		return "cyan"
	case LedBlue:
		return "blue"
	case LedPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Valid reports whether the color is a palette entry.
func (c LedColor) Valid() bool {
	return c <= LedPurple
}

// LedColorFromName returns the LedColor for a persisted name.
func LedColorFromName(name string) (LedColor, bool) {
	c, ok := ledColorNames[name]
	return c, ok
}

// MarshalYAML encodes the color as its name.
func (c LedColor) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a color name.
func (c *LedColor) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := LedColorFromName(name)
	if !ok {
		return fmt.Errorf("unknown led color %q", name)
	}
	*c = parsed
	return nil
}

// LedSettings selects a device LED mode. Mode numbering is device-family
// specific; Layer is the layer the mode applies to.
type LedSettings struct {
	Mode  uint8    `yaml:"mode"`
	Layer uint8    `yaml:"layer"`
	Color LedColor `yaml:"color"`
}

// UnmarshalYAML decodes led settings, rejecting missing fields.
func (s *LedSettings) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Mode  *uint8    `yaml:"mode"`
		Layer *uint8    `yaml:"layer"`
		Color *LedColor `yaml:"color"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Mode == nil {
		return missingField("led_settings", "mode")
	}
	if raw.Layer == nil {
		return missingField("led_settings", "layer")
	}
	if raw.Color == nil {
		return missingField("led_settings", "color")
	}
	s.Mode = *raw.Mode
	s.Layer = *raw.Layer
	s.Color = *raw.Color
	return nil
}
