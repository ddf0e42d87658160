package helpers

// NullIfEmpty maps an absent or empty string to nil, which is stored as SQL NULL.
// Any other value is copied so the result never aliases the input.
func NullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// StringValue returns the pointed-to string, or "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullIfZero maps a zero id to nil.
func NullIfZero(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}
