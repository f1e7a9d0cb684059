package device

import (
	"errors"
	"sync"

	"github.com/dshills/padstorm/internal/mapping"
)

// USB identifiers of the supported macropads.
const (
	// VendorID is shared by every supported device.
	VendorID = 0x1189

	// Product8840 and Product8842 are the multi-layer devices.
	Product8840 = 0x8840
	Product8842 = 0x8842

	// Product8890 is the single-layer device.
	Product8890 = 0x8890
)

// Keyboard is an open connection to a programmable macropad.
type Keyboard interface {
	// Program writes a validated configuration to the device.
	Program(pad *mapping.Macropad) error

	// SetLED applies an LED mode to a layer in the given color.
	SetLED(mode, layer uint8, color mapping.LedColor) error

	// Close releases the connection.
	Close() error
}

// OpenFunc connects to a device. A zero product id means any supported
// product.
type OpenFunc func(vendor, product uint16) (Keyboard, error)

// ErrNoTransport is returned by Open when no transport has been
// registered, for example in a build without USB support.
var ErrNoTransport = errors.New("no device transport available")

var (
	transportMu sync.RWMutex
	transport   OpenFunc
)

// RegisterTransport installs the transport used by Open. Transport builds
// call this from an init function, database/sql driver style.
func RegisterTransport(f OpenFunc) {
	transportMu.Lock()
	defer transportMu.Unlock()
	transport = f
}

// Open connects to a macropad through the registered transport.
func Open(vendor, product uint16) (Keyboard, error) {
	transportMu.RLock()
	f := transport
	transportMu.RUnlock()

	if f == nil {
		return nil, ErrNoTransport
	}
	return f(vendor, product)
}
