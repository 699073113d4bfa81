package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01":                   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"2024-03-01T10:15:00Z":         time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC),
		"2024-03-01T12:15:00+02:00":    time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC),
		"2024-03-01T10:15:00":          time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC),
		"2024-03-01 10:15:00":          time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC),
		"2024-03-01T10:15:00.1234567Z": time.Date(2024, 3, 1, 10, 15, 0, 123456000, time.UTC),
		" 2024-03-01 ":                 time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got, err := ParseTimestamp(input)
		require.NoError(t, err, input)
		require.True(t, want.Equal(got), "%s: got %s", input, got)
		require.Equal(t, time.UTC, got.Location())
	}

	_, err := ParseTimestamp("yesterday")
	require.Error(t, err)
}

func TestTimestampUnmarshal(t *testing.T) {
	var payload struct {
		Date Timestamp `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-01"}`), &payload))
	require.True(t, payload.Date.Valid())
	require.Equal(t, "2024-03-01", payload.Date.Format(DateLayout))

	require.NoError(t, json.Unmarshal([]byte(`{"date":1709287200000}`), &payload))
	require.True(t, payload.Date.Valid())
	require.True(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).Equal(payload.Date.Time))

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &payload))
	require.False(t, payload.Date.Valid())
	require.True(t, payload.Date.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"date":"not a date"}`), &payload))
	require.False(t, payload.Date.Valid())
	require.Equal(t, "not a date", payload.Date.invalid)
}

func TestTimestampMarshalUsesRFC3339(t *testing.T) {
	data, err := json.Marshal(NewTimestamp(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.JSONEq(t, `"2024-03-01T10:00:00Z"`, string(data))
}

func TestDecimalAcceptsNumericStrings(t *testing.T) {
	var payload struct {
		Weight *Decimal `json:"weight"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"weight":"72.5"}`), &payload))
	require.InDelta(t, 72.5, float64(*payload.Weight), 1e-9)

	require.NoError(t, json.Unmarshal([]byte(`{"weight":80}`), &payload))
	require.InDelta(t, 80, float64(*payload.Weight), 1e-9)

	require.Error(t, json.Unmarshal([]byte(`{"weight":"heavy"}`), &payload))
}

func TestSameDayAndStartOfDay(t *testing.T) {
	late := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	require.False(t, SameDay(late, early))
	require.True(t, SameDay(late, StartOfDay(late)))
	require.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), StartOfDay(early))
}

func TestNormalizeTimeTruncatesToMicroseconds(t *testing.T) {
	in := time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.FixedZone("X", 3600))
	out := NormalizeTime(in)
	require.Equal(t, time.UTC, out.Location())
	require.Equal(t, 123456000, out.Nanosecond())
	require.True(t, NormalizeTime(time.Time{}).IsZero())
}
