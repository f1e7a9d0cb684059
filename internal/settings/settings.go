package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/padstorm/internal/store"
)

// Environment variables recognized by Load.
const (
	envMapping = "PADSTORM_MAPPING"
	envProduct = "PADSTORM_PRODUCT"
)

// Settings are the tool preferences.
type Settings struct {
	// Mapping is the path of the mapping file.
	Mapping string `toml:"mapping"`

	// Product is the default product id to validate against, written as
	// a hex literal like "0x8890". Empty means no target device.
	Product string `toml:"product"`
}

// Default returns the built-in preferences.
func Default() Settings {
	return Settings{Mapping: store.DefaultFile}
}

// DefaultPath returns the settings file location in the user config
// directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "padstorm.toml"
	}
	return filepath.Join(dir, "padstorm", "padstorm.toml")
}

// Load reads preferences from path, then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No settings file, defaults apply.
	case err != nil:
		return s, fmt.Errorf("reading settings file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parsing settings file %s: %w", path, err)
		}
		if s.Mapping == "" {
			s.Mapping = store.DefaultFile
		}
	}

	s.applyEnv()
	return s, nil
}

// applyEnv overrides fields from the environment.
func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv(envMapping); ok && v != "" {
		s.Mapping = v
	}
	if v, ok := os.LookupEnv(envProduct); ok && v != "" {
		s.Product = v
	}
}

// ProductID parses the configured product id. The second result is false
// when no product is configured.
func (s Settings) ProductID() (uint16, bool, error) {
	if s.Product == "" {
		return 0, false, nil
	}
	id, err := ParseProductID(s.Product)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// ParseProductID parses a product id written as decimal or 0x-prefixed hex.
func ParseProductID(s string) (uint16, error) {
	id, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return uint16(id), nil
}
