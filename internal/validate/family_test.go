package validate

import (
	"errors"
	"testing"

	"github.com/dshills/padstorm/internal/action"
)

func TestFamilyForProduct(t *testing.T) {
	tests := []struct {
		id   uint16
		name string
	}{
		{0x8840, "multi-layer"},
		{0x8842, "multi-layer"},
		{0x8890, "single-layer"},
	}

	for _, tt := range tests {
		fam, err := FamilyForProduct(tt.id)
		if err != nil {
			t.Errorf("FamilyForProduct(0x%04x) error = %v", tt.id, err)
			continue
		}
		if fam.Name != tt.name {
			t.Errorf("FamilyForProduct(0x%04x) = %q, want %q", tt.id, fam.Name, tt.name)
		}
	}
}

func TestFamilyForProductUnknown(t *testing.T) {
	_, err := FamilyForProduct(0x1234)
	if err == nil {
		t.Fatal("FamilyForProduct(0x1234) = nil error")
	}
	var unknown *UnknownProductError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T", err)
	}
	if unknown.ID != 0x1234 {
		t.Errorf("error id = 0x%04x, want 0x1234", unknown.ID)
	}
	if got, want := err.Error(), "unknown product id 0x1234"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestSingleLayerMediaWhitelist(t *testing.T) {
	fam, err := FamilyForProduct(0x8890)
	if err != nil {
		t.Fatalf("FamilyForProduct error = %v", err)
	}

	allowed := []action.MediaCode{
		action.MediaPlay, action.MediaPrev, action.MediaNext,
		action.MediaMute, action.MediaVolumeUp, action.MediaVolumeDown,
	}
	for _, m := range allowed {
		if !fam.AllowsMedia(m) {
			t.Errorf("single-layer should allow %v", m)
		}
	}
	for _, m := range []action.MediaCode{action.MediaStop, action.MediaBrightnessUp, action.MediaBrightnessDown} {
		if fam.AllowsMedia(m) {
			t.Errorf("single-layer should reject %v", m)
		}
	}
}

func TestDefaultFamilyUnrestricted(t *testing.T) {
	fam := Default()
	if fam.MaxChords != 0xff {
		t.Errorf("MaxChords = %d, want 255", fam.MaxChords)
	}
	if fam.DelayIgnored {
		t.Error("default family should enforce delays")
	}
	if !fam.AllowsMedia(action.MediaBrightnessUp) {
		t.Error("default family should allow the full media set")
	}
	if fam.LedModes != nil {
		t.Error("default family should not check LED modes")
	}
}

func TestLedModeByID(t *testing.T) {
	fam, _ := FamilyForProduct(0x8890)
	if _, ok := fam.LedModeByID(2); !ok {
		t.Error("single-layer should have LED mode 2")
	}
	if _, ok := fam.LedModeByID(5); ok {
		t.Error("single-layer should not have LED mode 5")
	}

	fam, _ = FamilyForProduct(0x8840)
	if _, ok := fam.LedModeByID(5); !ok {
		t.Error("multi-layer should have LED mode 5")
	}
}
