package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, "2025-06-10", d.String())
	assert.Equal(t, time.UTC, d.Time().Location())
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2025-6-10",
		"2025/06/10",
		"10-06-2025",
		"2025-02-30",
		"2025-13-01",
		"2025-06-10T00:00:00Z",
		"not a date",
		" 2025-06-10",
	}
	for _, s := range cases {
		_, err := ParseDate(s)
		require.Error(t, err, "should reject %q", s)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	}
}

func TestParseDate_LeapDay(t *testing.T) {
	_, err := ParseDate("2024-02-29")
	assert.NoError(t, err)

	_, err = ParseDate("2025-02-29")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2025-06-10", 7, "2025-06-17"},
		{"2025-01-31", 7, "2025-02-07"},
		{"2025-12-28", 7, "2026-01-04"},
		{"2024-02-25", 7, "2024-03-03"},
		{"2025-02-25", 7, "2025-03-04"},
	}
	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseDate(tt.from).AddDays(tt.n).String())
		})
	}
}

func TestAddMonths_Clamping(t *testing.T) {
	tests := []struct {
		name string
		from string
		n    int
		want string
	}{
		{"plain", "2025-06-10", 1, "2025-07-10"},
		{"jan31 non-leap", "2025-01-31", 1, "2025-02-28"},
		{"jan31 leap", "2024-01-31", 1, "2024-02-29"},
		{"jan31 plus three", "2025-01-31", 3, "2025-04-30"},
		{"jan31 plus six", "2025-01-31", 6, "2025-07-31"},
		{"year carry", "2025-11-15", 3, "2026-02-15"},
		{"twelve months", "2025-06-10", 12, "2026-06-10"},
		{"leap day plus year", "2024-02-29", 12, "2025-02-28"},
		{"aug31 plus six", "2025-08-31", 6, "2026-02-28"},
		{"dec31 plus one", "2025-12-31", 1, "2026-01-31"},
		{"march31 plus one", "2025-03-31", 1, "2025-04-30"},
		{"negative", "2025-03-31", -1, "2025-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseDate(tt.from).AddMonths(tt.n).String())
		})
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.January))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(1900, time.February))
	assert.Equal(t, 29, DaysIn(2000, time.February))
	assert.Equal(t, 30, DaysIn(2025, time.April))
}

func TestCompare(t *testing.T) {
	a := MustParseDate("2025-06-09")
	b := MustParseDate("2025-06-10")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, b.Compare(MustParseDate("2025-06-10")))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 1, a.DaysUntil(b))
	assert.Equal(t, -1, b.DaysUntil(a))
}

func TestDaysUntil_FarApart(t *testing.T) {
	from := MustParseDate("2025-06-10")
	assert.Equal(t, 136966, from.DaysUntil(MustParseDate("2400-06-10")))
	assert.Equal(t, -136966, MustParseDate("2400-06-10").DaysUntil(from))
	assert.Equal(t, 3652058, MustParseDate("0001-01-01").DaysUntil(MustParseDate("9999-12-31")))
}

func TestToday_UsesLocation(t *testing.T) {
	// 23:30 UTC on June 9 is already June 10 in Tokyo.
	now := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "2025-06-09", Today(now, time.UTC).String())
	assert.Equal(t, "2025-06-10", Today(now, tokyo).String())
}

func TestDate_JSON(t *testing.T) {
	item := Item{Topic: "Intro", Date: MustParseDate("2025-06-17")}
	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"Intro","date":"2025-06-17"}`, string(b))

	var back Item
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, item, back)

	err = json.Unmarshal([]byte(`{"topic":"x","date":"2025-02-31"}`), &back)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestNewItem(t *testing.T) {
	item, err := NewItem("", "2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, "", item.Topic)
	assert.Equal(t, "2025-05-01", item.Date.String())

	_, err = NewItem("x", "05/01/2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
