package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"90m"`, want: 90 * time.Minute},
		{name: "nanoseconds", in: `3000000000`, want: 3 * time.Second},
		{name: "bad string", in: `"soon"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: time.Hour})
	require.NoError(t, err)
	assert.Equal(t, `"1h0m0s"`, string(b))
}

func TestMidnight(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 3, 10, 23, 59, 59, 999, loc)
	got := Midnight(in)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), got)
}

func TestParseDate(t *testing.T) {
	loc := time.UTC

	d, err := ParseDate("2024-01-16", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, loc), d)

	d, err = ParseDate("2024-01-16T22:30:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, loc), d)

	_, err = ParseDate("16/01/2024", loc)
	require.Error(t, err)
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "05/02/2024", FormatDisplay("2024-02-05"))
	assert.Equal(t, "not a date", FormatDisplay("not a date"))
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01T10:00:00.000Z", Timestamp(ts))
}
