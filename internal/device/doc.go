// Package device defines the contract between a validated configuration
// and the transport that programs it onto hardware.
//
// The core of the tool never talks USB itself. It hands an approved
// mapping.Macropad to a Keyboard, whose concrete implementation is
// registered by a transport build (or, in tests and dry runs, by the
// in-memory Recorder). Only the success/failure shape of Program and
// SetLED matters here.
package device
