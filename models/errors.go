package models

import "fmt"

// TagError reports a string that failed to parse as a language tag, either
// during construction or while decoding the durable form. It is always
// surfaced to the caller; an invalid tag is never replaced by a default.
type TagError struct {
	Value string
	Err   error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("invalid language tag %q: %v", e.Value, e.Err)
}

func (e *TagError) Unwrap() error { return e.Err }
