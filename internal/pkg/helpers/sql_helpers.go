package helpers

import "strings"

// OptionalString trims s and returns nil when nothing is left, so blank form
// fields are stored as NULL rather than empty strings.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalStringPtr applies OptionalString to a possibly nil pointer
func OptionalStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return OptionalString(*s)
}

// StringValue dereferences s, returning "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
