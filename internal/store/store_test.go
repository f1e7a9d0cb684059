package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/padstorm/internal/mapping"
)

func TestSaveReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")

	pad := mapping.New(3, 4, 2)
	pad.Device.Orientation = mapping.OrientationClockwise
	pad.Layers[0].Buttons[1][2] = mapping.Button{Delay: 100, Mapping: "ctrl-c,ctrl-v"}
	pad.Layers[1].Knobs[1].Press = mapping.Button{Mapping: "mute"}
	pad.LedSettings = &mapping.LedSettings{Mode: 2, Layer: 3, Color: mapping.LedPurple}

	if err := Save(pad, path); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if !reflect.DeepEqual(got, pad) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, pad)
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	pad := mapping.New(2, 3, 1)

	first, err := encode(pad)
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	second, err := encode(pad)
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("encoding the same value twice produced different output")
	}

	// Stable top-level field order.
	text := string(first)
	if !strings.HasPrefix(text, "device:") {
		t.Errorf("output does not start with device:\n%s", text)
	}
	if strings.Index(text, "layers:") > strings.Index(text, "led_settings:") {
		t.Errorf("led_settings written before layers:\n%s", text)
	}
}

func TestReadCreatesFactoryDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")

	pad, err := Read(path)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if !reflect.DeepEqual(pad, mapping.New(2, 3, 1)) {
		t.Errorf("default config = %+v", pad)
	}

	// The default was persisted, not just synthesized.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestReadMissingRequiredField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	content := `device:
  orientation: normal
  cols: 1
  knobs: 0
layers:
  - buttons:
      - - delay: 0
          mapping: ""
    knobs: []
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(path)
	if err == nil {
		t.Fatal("Read accepted a device without rows")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T (%v)", err, err)
	}
	if !strings.Contains(err.Error(), "rows") {
		t.Errorf("error should name the missing field: %v", err)
	}
}

func TestReadDefaultsLayerCount(t *testing.T) {
	// The layers count is the one field older files may lack.
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	content := `device:
  orientation: normal
  rows: 1
  cols: 1
  knobs: 0
layers:
  - buttons:
      - - delay: 0
          mapping: a
    knobs: []
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pad, err := Read(path)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if pad.Device.Layers != mapping.DefaultLayerCount {
		t.Errorf("layers = %d, want %d", pad.Device.Layers, mapping.DefaultLayerCount)
	}
	if pad.LedSettings != nil {
		t.Errorf("led settings = %+v, want nil", pad.LedSettings)
	}
	if got := pad.Layers[0].Buttons[0][0].Mapping; got != "a" {
		t.Errorf("button mapping = %q, want a", got)
	}
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	if err := os.WriteFile(path, []byte("{not valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError path = %q, want %q", parseErr.Path, path)
	}
}

func TestFprint(t *testing.T) {
	pad := mapping.New(1, 1, 0)

	var buf bytes.Buffer
	if err := Fprint(&buf, pad); err != nil {
		t.Fatalf("Fprint error = %v", err)
	}

	want, err := encode(pad)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("Fprint output differs from the persisted form")
	}
}
