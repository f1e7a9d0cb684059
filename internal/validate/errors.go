package validate

import "fmt"

// Error is a validation failure annotated with the position of the
// offending value: "layer 2, row 1, button 3" or "layer 1, knob 2, press".
type Error struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Warning is a non-fatal finding. The configuration remains valid.
type Warning struct {
	Path    string
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// CapacityError reports a mapping with more chained actions than the
// family supports.
type CapacityError struct {
	Actions int
	Max     int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%d chained actions exceed the limit of %d", e.Actions, e.Max)
}

// DelayError reports a button delay above the family's ceiling.
type DelayError struct {
	Delay uint16
	Max   uint16
}

// Error implements the error interface.
func (e *DelayError) Error() string {
	return fmt.Sprintf("delay %dms exceeds the maximum of %dms", e.Delay, e.Max)
}

// ModifierPositionError reports a modifier chain on a chained action other
// than the first, on a family that only supports modifiers up front.
type ModifierPositionError struct {
	Chord  int
	Family string
}

// Error implements the error interface.
func (e *ModifierPositionError) Error() string {
	return fmt.Sprintf("%s devices only support modifiers on the first action, found a chain at action %d", e.Family, e.Chord)
}

// MediaKeyError reports a media key outside the family's whitelist.
type MediaKeyError struct {
	Name   string
	Family string
}

// Error implements the error interface.
func (e *MediaKeyError) Error() string {
	return fmt.Sprintf("media key %q is not supported by %s devices", e.Name, e.Family)
}
