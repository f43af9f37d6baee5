package gomap

import "fmt"

// MarshalError reports a conversion failure with the path of the field
// that caused it.
type MarshalError struct {
	FieldPath string
	Message   string
}

func (e *MarshalError) Error() string {
	if e.FieldPath == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.FieldPath, e.Message)
}
