package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "9:00 AM - 10:30 AM", FormatRange(9*60, 10*60+30))
	assert.Equal(t, "11:30 AM - 12:00 PM", FormatRange(11*60+30, 12*60))
	assert.Equal(t, "12:00 AM - 11:59 PM", FormatRange(0, 23*60+59))
}

func TestParseRangeLabel(t *testing.T) {
	from, to, err := ParseRangeLabel("9:00 AM - 10:30 AM")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*60), from)
	assert.Equal(t, TimeOfDay(10*60+30), to)
}

func TestParseRangeLabel_CompactForm(t *testing.T) {
	from, to, err := ParseRangeLabel("1:00 PM-2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(13*60), from)
	assert.Equal(t, TimeOfDay(14*60+30), to)
}

func TestParseRangeLabel_Errors(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"no separator", "9:00 AM 10:00 AM"},
		{"empty string", ""},
		{"garbage left side", "morning - 10:00 AM"},
		{"garbage right side", "9:00 AM - evening"},
		{"24-hour form", "13:00 - 14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseRangeLabel(tt.label)
			assert.Error(t, err)
		})
	}
}

func TestParseRangeLabel_RoundTrip(t *testing.T) {
	label := FormatRange(7*60+30, 17*60)
	from, to, err := ParseRangeLabel(label)
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(7*60+30), from)
	assert.Equal(t, TimeOfDay(17*60), to)
}
