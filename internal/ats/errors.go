package ats

import "fmt"

// DocumentError represents a failure to load or decode a resume document.
type DocumentError struct {
	Source  string
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	prefix := "document error"
	if e.Source != "" {
		prefix = fmt.Sprintf("document error (%s)", e.Source)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
