package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "hours and minutes",
			input: "PT2H30M",
			want:  150,
		},
		{
			name:  "minutes only",
			input: "PT45M",
			want:  45,
		},
		{
			name:  "hours only",
			input: "PT5H",
			want:  300,
		},
		{
			name:  "bare PT parses to zero",
			input: "PT",
			want:  0,
		},
		{
			name:  "single digit minute",
			input: "PT1H5M",
			want:  65,
		},
		{
			name:  "large hour count",
			input: "PT26H15M",
			want:  1575,
		},
		{
			name:    "empty string fails",
			input:   "",
			wantErr: true,
		},
		{
			name:    "missing PT prefix fails",
			input:   "2H30M",
			wantErr: true,
		},
		{
			name:    "garbage input fails",
			input:   "not-a-duration",
			wantErr: true,
		},
		{
			name:    "days component unsupported",
			input:   "P1DT2H",
			wantErr: true,
		},
		{
			name:    "minutes before hours fails",
			input:   "PT30M2H",
			wantErr: true,
		},
		{
			name:    "trailing garbage fails",
			input:   "PT2H30Mx",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationMinutes(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDuration),
					"error should wrap ErrInvalidDuration")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "hours and minutes", minutes: 150, want: "2h 30m"},
		{name: "minutes only", minutes: 45, want: "45m"},
		{name: "hours only", minutes: 300, want: "5h"},
		{name: "zero", minutes: 0, want: "0m"},
		{name: "exactly one hour", minutes: 60, want: "1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDurationMinutes(tt.minutes))
		})
	}
}
