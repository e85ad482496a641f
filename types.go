package nano

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Raw is an amount in raw, the smallest unit of the currency. Amounts travel
// as decimal strings and can be as large as 2^128-1, so Raw is backed by a
// big.Int rather than any fixed-width integer.
type Raw struct {
	big.Int
}

// NewRaw returns a Raw holding v.
func NewRaw(v uint64) *Raw {
	r := new(Raw)
	r.SetUint64(v)
	return r
}

// ParseRaw parses a decimal string into a Raw.
func ParseRaw(s string) (*Raw, error) {
	r := new(Raw)
	if _, ok := r.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid raw amount %q", s)
	}
	return r, nil
}

// MustParseRaw is ParseRaw for static inputs; it panics on bad input.
func MustParseRaw(s string) *Raw {
	r, err := ParseRaw(s)
	if err != nil {
		panic(err)
	}
	return r
}

// UnmarshalJSON accepts both quoted and bare decimal numbers.
func (r *Raw) UnmarshalJSON(data []byte) error {
	s := unquote(string(data))
	if s == "" || s == "null" {
		r.SetInt64(0)
		return nil
	}
	if _, ok := r.SetString(s, 10); !ok {
		return fmt.Errorf("invalid raw amount %q", s)
	}
	return nil
}

// MarshalJSON writes the amount as a quoted decimal string, matching the
// node's own encoding.
func (r Raw) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.Text(10) + `"`), nil
}

// Equal reports whether two amounts are numerically equal.
func (r *Raw) Equal(other *Raw) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Cmp(&other.Int) == 0
}

// UintString is a uint64 that unmarshals from either "123" or 123.
type UintString uint64

func (u *UintString) UnmarshalJSON(data []byte) error {
	s := unquote(string(data))
	if s == "" || s == "null" {
		*u = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unsigned value %q: %w", s, err)
	}
	*u = UintString(v)
	return nil
}

func (u UintString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(u), 10) + `"`), nil
}

// FloatString is a float64 that unmarshals from either "1.5" or 1.5. The
// node uses it for difficulty multipliers.
type FloatString float64

func (f *FloatString) UnmarshalJSON(data []byte) error {
	s := unquote(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid float value %q: %w", s, err)
	}
	*f = FloatString(v)
	return nil
}

func (f FloatString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatFloat(float64(f), 'f', -1, 64) + `"`), nil
}

// BoolString is a bool that unmarshals from "true"/"false" strings as well
// as JSON booleans.
type BoolString bool

func (b *BoolString) UnmarshalJSON(data []byte) error {
	switch unquote(string(data)) {
	case "true", "1":
		*b = true
	case "false", "0", "", "null":
		*b = false
	default:
		return fmt.Errorf("invalid bool value %s", data)
	}
	return nil
}

func (b BoolString) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
