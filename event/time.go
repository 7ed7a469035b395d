package event

import (
	"fmt"
	"strings"
	"time"
)

// Time is the catalog timestamp scalar. It is always UTC and renders in a
// canonical naive ISO-8601 form ("2006-01-02T15:04:05", with a fractional
// part only when the instant has one). Inputs carrying an explicit zone are
// normalized to UTC during parsing, so formatting is not guaranteed to echo
// the input byte-for-byte.
type Time struct {
	time.Time
}

// acceptable layouts, tried in order.
var timeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00", // RFC3339 with optional fraction
	"2006-01-02T15:04:05.999999999",       // naive, assumed UTC
	"2006-01-02",
}

// ParseTime parses s into a Time.
func ParseTime(s string) (Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time{t.UTC()}, nil
		}
	}
	return Time{}, fmt.Errorf("event: unparseable time %q", s)
}

// MustParseTime is ParseTime for literals in tests and fixtures.
func MustParseTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Time) String() string {
	u := t.UTC()
	if u.Nanosecond() == 0 {
		return u.Format("2006-01-02T15:04:05")
	}
	s := u.Format("2006-01-02T15:04:05.000000000")
	return strings.TrimRight(s, "0")
}
