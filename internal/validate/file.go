package validate

import (
	"github.com/dshills/padstorm/internal/mapping"
	"github.com/dshills/padstorm/internal/store"
)

// File loads the configuration at path and validates it for the given
// product id. A nil product id validates structure only. An unrecognized
// product id is itself an error, before the file is even read.
//
// On success the loaded configuration is returned so callers can hand it
// straight to a device transport.
func File(path string, productID *uint16) (*mapping.Macropad, []Warning, error) {
	fam := Default()
	if productID != nil {
		var err error
		fam, err = FamilyForProduct(*productID)
		if err != nil {
			return nil, nil, err
		}
	}

	pad, err := store.Read(path)
	if err != nil {
		return nil, nil, err
	}

	warnings, err := Macropad(pad, fam)
	if err != nil {
		return nil, nil, err
	}
	return pad, warnings, nil
}
