package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Scalar is a leaf value that callers may send either as a JSON number or as
// a string. It keeps the display text alongside the numeric value.
type Scalar struct {
	text  string
	num   float64
	isNum bool
}

// Number returns a numeric Scalar.
func Number(f float64) Scalar {
	return Scalar{text: FormatNumber(f), num: f, isNum: true}
}

// Text returns a textual Scalar.
func Text(s string) Scalar {
	return Scalar{text: s}
}

// Present reports whether the value counts as filled in: a non-zero number
// or a non-empty string.
func (s Scalar) Present() bool {
	if s.isNum {
		return s.num != 0
	}
	return s.text != ""
}

// String returns the display text, or "" when the value is not present.
func (s Scalar) String() string {
	if !s.Present() {
		return ""
	}
	return s.text
}

// Or returns the display text, or fallback when the value is not present.
func (s Scalar) Or(fallback string) string {
	if !s.Present() {
		return fallback
	}
	return s.text
}

// Raw returns the display text even when the value is not present, so a
// numeric zero reads "0".
func (s Scalar) Raw() string {
	return s.text
}

// Float returns the numeric value. Strings are parsed leniently; anything
// unparseable counts as 0.
func (s Scalar) Float() float64 {
	if s.isNum {
		return s.num
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s.text, ",", "")), 64)
	if err != nil {
		return 0
	}
	return f
}

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = Scalar{}
		return nil
	}
	switch b[0] {
	case '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Text(str)
		return nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if v {
			*s = Text("true")
		} else {
			*s = Scalar{}
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("expected a number or string, got %s", b)
	}
	*s = Number(f)
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	switch {
	case s.isNum:
		return []byte(s.text), nil
	case s.text == "":
		return []byte("null"), nil
	default:
		return json.Marshal(s.text)
	}
}

// FormatNumber renders f as a plain decimal: no exponent, no thousands
// separators, no trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
