package models

import (
	"encoding/json"
	"fmt"
)

// Field accessors for decoded JSON records. Absence of a required field is a
// MissingFieldError; a field present with the wrong shape is a
// MalformedRecordError. The record itself is never mutated.

func stringField(obj map[string]any, field string) (string, error) {
	v, ok := obj[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedRecordError{Field: field, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

// optionalStringField returns "" when the field is absent or null.
func optionalStringField(obj map[string]any, field string) (string, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedRecordError{Field: field, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

func intField(obj map[string]any, field string) (int, error) {
	v, ok := obj[field]
	if !ok {
		return 0, &MissingFieldError{Field: field}
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("expected integer, got %q", n.String())}
		}
		return int(i), nil
	default:
		return 0, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("expected integer, got %T", v)}
	}
}

func stringSliceField(obj map[string]any, field string) ([]string, error) {
	v, ok := obj[field]
	if !ok {
		return nil, &MissingFieldError{Field: field}
	}
	return stringSlice(v, field)
}

// optionalStringSliceField returns nil when the field is absent or null.
func optionalStringSliceField(obj map[string]any, field string) ([]string, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return nil, nil
	}
	return stringSlice(v, field)
}

func stringSlice(v any, field string) ([]string, error) {
	switch arr := v.(type) {
	case []string:
		out := make([]string, len(arr))
		copy(out, arr)
		return out, nil
	case []any:
		out := make([]string, len(arr))
		for i, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("element %d: expected string, got %T", i, item)}
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("expected array of strings, got %T", v)}
	}
}

func objectField(obj map[string]any, field string) (map[string]any, error) {
	v, ok := obj[field]
	if !ok {
		return nil, &MissingFieldError{Field: field}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("expected object, got %T", v)}
	}
	return m, nil
}

func recordArrayField(obj map[string]any, field string) ([]map[string]any, error) {
	v, ok := obj[field]
	if !ok {
		return nil, &MissingFieldError{Field: field}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("expected array, got %T", v)}
	}
	out := make([]map[string]any, len(arr))
	for i, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &MalformedRecordError{Field: field, Reason: fmt.Sprintf("element %d: expected object, got %T", i, item)}
		}
		out[i] = m
	}
	return out, nil
}
