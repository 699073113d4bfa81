package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date form accepted everywhere a date is expected.
const DateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseTimestamp accepts a calendar date or a full timestamp. Values without a zone are UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return NormalizeTime(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// NormalizeTime converts t to the single internal representation: UTC with microsecond precision.
func NormalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Microsecond)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Timestamp is the date type used in payloads. It decodes from a date string, a
// timestamp string, or epoch milliseconds. Unparseable input is kept so validation
// can report it against the field instead of failing the whole body.
type Timestamp struct {
	time.Time
	invalid string
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: NormalizeTime(t)}
}

// Valid reports whether the payload carried a usable value.
func (t Timestamp) Valid() bool {
	return t.invalid == "" && !t.Time.IsZero()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parsed, err := ParseTimestamp(raw)
		if err != nil {
			*t = Timestamp{invalid: raw}
			return nil
		}
		*t = Timestamp{Time: parsed}
		return nil
	}
	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		*t = Timestamp{invalid: string(data)}
		return nil
	}
	*t = Timestamp{Time: NormalizeTime(time.UnixMilli(millis))}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}

// Decimal is a numeric payload value that also accepts numeric strings.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", raw)
		}
		*d = Decimal(parsed)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = Decimal(f)
	return nil
}

func decimalPtr(d *Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := float64(*d)
	return &f
}

// Dec returns a pointer to a Decimal, for building payloads in code.
func Dec(f float64) *Decimal {
	d := Decimal(f)
	return &d
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
