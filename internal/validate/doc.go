// Package validate checks a macropad configuration against the structural
// invariants of its declared geometry and the capability limits of a target
// device family.
//
// Device families are data, not branching logic: each recognized product id
// maps to a Family describing its chained-action cap, delay handling,
// modifier-position rule, media-key whitelist, and LED modes. Validation
// walks every layer, button, and knob, classifying each mapping token
// through the action package, and stops at the first violation. Errors
// carry the full position (layer, row and column, or knob and motion) of
// the offending value.
//
// Validation never mutates the configuration and is idempotent.
package validate
