// Package mapping defines the macropad configuration model.
//
// A Macropad describes the physical geometry of a device together with one
// keymap Layer per switchable layer. Every button and knob motion carries a
// Button value: an optional delay in milliseconds and a mapping string that
// encodes the key actions to send.
//
// The model is plain data. Structural invariants (grid shape, layer count,
// per-device capability limits) are enforced by the validate package, and
// persistence lives in the store package.
package mapping
