package mixin

import (
	"encoding/json"
	"fmt"
)

// FieldError represents a single extraction failure for a specific field of
// the target shape. It implements error and unwraps to the underlying cause
// so callers can use errors.Is/As.
type FieldError struct {
	Path string // field name on the extraction target
	Type string // declared type of the target field
	Err  error  // underlying cause
}

func (e FieldError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s (%s): %s", e.Path, e.Type, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// MarshalJSON exports FieldError as an object with path, type, and message fields.
func (e FieldError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Path    string `json:"path"`
		Type    string `json:"type,omitempty"`
		Message string `json:"message"`
	}{
		Path:    e.Path,
		Type:    e.Type,
		Message: msg,
	})
}
