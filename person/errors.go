package person

import (
	"fmt"
)

// FormatError reports malformed JSON or a malformed born date. Offset is -1
// when no byte position is known; Index is -1 when the error is not
// attributable to a single record.
type FormatError struct {
	Offset  int64
	Index   int
	Field   string
	Context string
	Err     error
}

func (e *FormatError) Error() string {
	msg := "format error"
	if e.Index >= 0 {
		msg += fmt.Sprintf(" in record %d", e.Index)
		if e.Field != "" {
			msg += fmt.Sprintf(" field '%s'", e.Field)
		}
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Context != "" {
		msg += ": " + e.Context
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SchemaError reports a record that is not an object, lacks a required
// field, carries a field with the wrong JSON type or repeats a field name.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema error in record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("schema error in record %d field '%s': %s", e.Index, e.Field, e.Reason)
}

// IOError wraps a failure of the byte source feeding the decoder.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "read input: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
