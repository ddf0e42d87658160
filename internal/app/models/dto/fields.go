package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean request field that accepts any truthy or falsy input.
// JSON booleans and numbers are taken as-is; strings (including HTML checkbox
// values) are true unless empty or one of false, 0, off, no. Absent means false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = false
	case bytes.Equal(data, []byte("true")):
		*f = true
	case bytes.Equal(data, []byte("false")):
		*f = false
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Flag(isTruthy(s))
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid flag value %s", data)
		}
		*f = n != 0
	}
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for form and query values
func (f *Flag) UnmarshalParam(param string) error {
	*f = ParseFlag(param)
	return nil
}

// ParseFlag coerces a form or query value the way Flag fields are bound
func ParseFlag(s string) Flag {
	return Flag(isTruthy(s))
}

// Bool returns the coerced value
func (f Flag) Bool() bool {
	return bool(f)
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "0", "off", "no":
		return false
	default:
		return true
	}
}

// OptionalID is an id request field that may be absent. Absent, null and ""
// all leave it unset.
type OptionalID struct {
	ID    int64
	Valid bool
}

// NewOptionalID returns a set OptionalID
func NewOptionalID(id int64) OptionalID {
	return OptionalID{ID: id, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = OptionalID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return o.UnmarshalParam(s)
	}
	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*o = NewOptionalID(id)
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for form and query values
func (o *OptionalID) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		*o = OptionalID{}
		return nil
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", param)
	}
	*o = NewOptionalID(id)
	return nil
}

// MarshalJSON implements json.Marshaler
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(o.ID, 10)), nil
}

// Ptr returns the id, or nil when unset
func (o OptionalID) Ptr() *int64 {
	if !o.Valid {
		return nil
	}
	id := o.ID
	return &id
}
