package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/padstorm/internal/mapping"
	"github.com/dshills/padstorm/internal/store"
)

// testArgs builds command arguments that keep the test hermetic: an
// explicit mapping path and a settings file that does not exist.
func testArgs(t *testing.T, dir string, extra ...string) []string {
	t.Helper()
	t.Setenv("PADSTORM_MAPPING", "")
	t.Setenv("PADSTORM_PRODUCT", "")
	args := []string{
		"-config", filepath.Join(dir, "mapping.yaml"),
		"-settings", filepath.Join(dir, "no-settings.toml"),
	}
	return append(args, extra...)
}

func TestRunValidateCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	code := RunValidate(testArgs(t, dir), &out, &errOut)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Configuration is valid.") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestRunValidateRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	pad := mapping.New(2, 3, 1)
	pad.Layers[0].Buttons[0][0].Mapping = "foobar"
	if err := store.Save(pad, filepath.Join(dir, "mapping.yaml")); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	code := RunValidate(testArgs(t, dir), &out, &errOut)
	if code != ExitValidation {
		t.Fatalf("exit = %d, want %d", code, ExitValidation)
	}
	if !strings.Contains(errOut.String(), "foobar") {
		t.Errorf("stderr = %q, should name the bad token", errOut.String())
	}
}

func TestRunValidateUnknownProduct(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	code := RunValidate(testArgs(t, dir, "-product", "0x1234"), &out, &errOut)
	if code != ExitValidation {
		t.Fatalf("exit = %d, want %d", code, ExitValidation)
	}
	if !strings.Contains(errOut.String(), "unknown product id") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunValidatePrintsWarnings(t *testing.T) {
	dir := t.TempDir()
	pad := mapping.New(2, 3, 1)
	pad.Layers[0].Buttons[0][0].Delay = 50
	if err := store.Save(pad, filepath.Join(dir, "mapping.yaml")); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	code := RunValidate(testArgs(t, dir, "-product", "0x8890"), &out, &errOut)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Warning:") {
		t.Errorf("stdout = %q, want a delay warning", out.String())
	}
	if !strings.Contains(out.String(), "Configuration is valid.") {
		t.Errorf("stdout = %q, warning must not fail validation", out.String())
	}
}

func TestRunValidateBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := RunValidate([]string{"-bogus"}, &out, &errOut); code != ExitCommandError {
		t.Errorf("exit = %d, want %d", code, ExitCommandError)
	}
}

func TestRunShow(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	code := RunShow(testArgs(t, dir), &out, &errOut)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "device:") {
		t.Errorf("stdout = %q, want serialized config", out.String())
	}
}

func TestRunProgramDryRun(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	code := RunProgram(testArgs(t, dir, "-dry-run"), &out, &errOut)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Dry run") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestRunProgramNoTransport(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	code := RunProgram(testArgs(t, dir), &out, &errOut)
	if code != ExitDevice {
		t.Fatalf("exit = %d, want %d", code, ExitDevice)
	}
	if !strings.Contains(errOut.String(), "no device transport") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunProgramInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	pad := mapping.New(2, 3, 1)
	pad.Layers[0].Knobs[0].CW.Mapping = "bogus"
	if err := store.Save(pad, filepath.Join(dir, "mapping.yaml")); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	if code := RunProgram(testArgs(t, dir, "-dry-run"), &out, &errOut); code != ExitValidation {
		t.Fatalf("exit = %d, want %d", code, ExitValidation)
	}
}

func TestRunLEDDryRun(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	args := testArgs(t, dir, "-mode", "2", "-layer", "3", "-color", "green", "-dry-run")
	code := RunLED(args, &out, &errOut)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr = %s", code, errOut.String())
	}

	// The new settings were persisted alongside the device write.
	pad, err := store.Read(filepath.Join(dir, "mapping.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	led := pad.LedSettings
	if led == nil || led.Mode != 2 || led.Layer != 3 || led.Color != mapping.LedGreen {
		t.Errorf("persisted led settings = %+v", led)
	}
}

func TestRunLEDUnknownColor(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	code := RunLED(testArgs(t, dir, "-color", "magenta"), &out, &errOut)
	if code != ExitCommandError {
		t.Fatalf("exit = %d, want %d", code, ExitCommandError)
	}
}

func TestRunLEDModeCheckedAgainstFamily(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	args := testArgs(t, dir, "-product", "0x8890", "-mode", "5", "-dry-run")
	code := RunLED(args, &out, &errOut)
	if code != ExitValidation {
		t.Fatalf("exit = %d, want %d", code, ExitValidation)
	}
	if !strings.Contains(errOut.String(), "mode 5") {
		t.Errorf("stderr = %q", errOut.String())
	}
}
