package league

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The Sleeper API is loosely typed: ids and scores show up as numbers in one
// league export and strings in another. The Flex types absorb that here so
// the rest of the code works with plain Go values.

// FlexInt decodes a JSON int that may arrive as a number, a numeric string,
// or null. Values that cannot be parsed coerce to zero.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			*n = 0
			return nil
		}
		*n = FlexInt(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*n = 0
		return nil
	}
	*n = FlexInt(int(f))
	return nil
}

// FlexString decodes a JSON string that may arrive as a string or a number.
// Null and malformed values coerce to the empty string.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			*s = ""
			return nil
		}
		*s = FlexString(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*s = ""
		return nil
	}
	*s = FlexString(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// FlexFloat decodes a JSON number that may arrive as a number, a numeric
// string, or null. Valid is false only when the field was null or absent;
// an unparseable string still counts as present with a zero value.
type FlexFloat struct {
	Float64 float64
	Valid   bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = FlexFloat{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = FlexFloat{Valid: true}
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = FlexFloat{Valid: true}
			return nil
		}
		*f = FlexFloat{Float64: v, Valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*f = FlexFloat{Valid: true}
		return nil
	}
	*f = FlexFloat{Float64: v, Valid: true}
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Float64)
}
