package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Numeric is a number that may arrive from form input either as a JSON
// number or as a numeric-looking string ("250"). It always marshals as a
// JSON number.
type Numeric float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return n.parse(s)
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid numeric value %s", string(data))
	}
	*n = Numeric(f)
	return nil
}

func (n *Numeric) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q", s)
	}
	*n = Numeric(f)
	return nil
}

// Float64 returns the value as float64.
func (n Numeric) Float64() float64 {
	return float64(n)
}

// Int returns the value truncated to an int.
func (n Numeric) Int() int {
	return int(n)
}
