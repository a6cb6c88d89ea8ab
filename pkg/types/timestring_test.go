package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"valid lunch slot", "13:00", "13:00", false},
		{"valid midnight", "00:00", "00:00", false},
		{"valid end of day", "23:59", "23:59", false},
		{"hour out of range", "24:00", "", true},
		{"minute out of range", "13:60", "", true},
		{"missing minutes", "13", "", true},
		{"words", "mediodía", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString_DropsDate(t *testing.T) {
	moment := time.Date(2025, 6, 22, 14, 30, 45, 0, time.UTC)

	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestOrdering(t *testing.T) {
	lunch := TimeString("13:00")
	dinner := TimeString("20:30")

	assert.True(t, lunch.IsBefore(dinner))
	assert.True(t, dinner.IsAfter(lunch))
	assert.False(t, lunch.IsBefore(lunch))
	assert.False(t, lunch.IsAfter(lunch))
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{"within hour", "13:00", 30, "13:30"},
		{"crosses hour", "13:45", 30, "14:15"},
		{"wraps past midnight", "23:30", 45, "00:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("13:00"))
	assert.Equal(t, TimeString("13:00"), ts)

	require.NoError(t, ts.Scan([]byte("20:30")))
	assert.Equal(t, TimeString("20:30"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestStringsRoundTrip(t *testing.T) {
	slots := []TimeString{"13:00", "14:00", "20:00"}

	assert.Equal(t, []string{"13:00", "14:00", "20:00"}, Strings(slots))
	assert.Equal(t, slots, TimeStrings([]string{"13:00", "14:00", "20:00"}))
}
