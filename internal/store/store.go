package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dshills/padstorm/internal/mapping"
)

// DefaultFile is the bare config file name. Passed to Read or Save it
// resolves to the directory of the running executable.
const DefaultFile = "mapping.yaml"

// Factory-default geometry written when no config file exists yet.
const (
	defaultRows  = 2
	defaultCols  = 3
	defaultKnobs = 1
)

// DefaultPath returns the default config location, next to the executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultFile)
}

// resolve maps the bare default name to its full path.
func resolve(path string) string {
	if path == DefaultFile {
		return DefaultPath()
	}
	return path
}

// Read loads a macropad configuration from path. If the file does not
// exist, a factory default is written there first, so Read on a fresh
// install succeeds and leaves a working file behind.
func Read(path string) (*mapping.Macropad, error) {
	path = resolve(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(mapping.New(defaultRows, defaultCols, defaultKnobs), path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var pad mapping.Macropad
	if err := dec.Decode(&pad); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &pad, nil
}

// Save writes the whole configuration to path. The output is deterministic
// for a given value, so saving an unchanged configuration is a no-op diff.
func Save(pad *mapping.Macropad, path string) error {
	path = resolve(path)

	data, err := encode(pad)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Fprint writes the serialized configuration to w, for diagnostics.
func Fprint(w io.Writer, pad *mapping.Macropad) error {
	data, err := encode(pad)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Print dumps the serialized configuration to standard output.
func Print(pad *mapping.Macropad) error {
	return Fprint(os.Stdout, pad)
}

// encode serializes a configuration. Field order follows the struct
// definitions and arrays are emitted element by element.
func encode(pad *mapping.Macropad) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(pad); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
