package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Str is a free-text leaf that accepts any JSON scalar. Numbers keep their
// plain decimal text, so a phone number sent unquoted still renders. Zero,
// false and null read as empty. Objects and arrays are rejected.
type Str string

func (s *Str) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*s = ""
		return nil
	}
	switch b[0] {
	case '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Str(str)
	case 'n', 'f':
		*s = ""
	case 't':
		*s = "true"
	case '{', '[':
		return fmt.Errorf("expected text or a number, got %s", b)
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return err
		}
		if f == 0 {
			*s = ""
			return nil
		}
		*s = Str(FormatNumber(f))
	}
	return nil
}

// Strings converts s to plain strings.
func Strings(s []Str) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out
}

// SDGList is the set of selected goal numbers. Entries may be numbers or
// numeric strings; anything else, including fractional numbers, is skipped.
// A value that is not an array decodes as an empty list.
type SDGList []int

func (l *SDGList) UnmarshalJSON(b []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		*l = SDGList{}
		return nil
	}
	out := make(SDGList, 0, len(items))
	for _, item := range items {
		if n, ok := goalNumber(item); ok {
			out = append(out, n)
		}
	}
	*l = out
	return nil
}

func goalNumber(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var str string
		if json.Unmarshal(raw, &str) != nil {
			return 0, false
		}
		raw = json.RawMessage(strings.TrimSpace(str))
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
