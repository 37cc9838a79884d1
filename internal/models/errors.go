package models

import "fmt"

// InvalidEnumValueError reports a category, subcategory, or difficulty value
// from the service that does not match any known variant. Matching is exact:
// no case folding, no fuzzy matching, so taxonomy drift upstream surfaces as
// a parse failure instead of silently miscategorized data.
type InvalidEnumValueError struct {
	Enum  string // "category", "subcategory", or "difficulty"
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value: %q", e.Enum, e.Value)
}

// MissingFieldError reports a required field absent from an input record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// MalformedRecordError reports a field that is present but has the wrong
// shape, e.g. a non-string question or bonus answer arrays of unequal length.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: field %q: %s", e.Field, e.Reason)
}
