package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"empty", "", 0},
		{"no units", "now", 0},
		{"seconds only", "45s", 45 * time.Second},
		{"minutes only", "2m", 2 * time.Minute},
		{"hours only", "1h", time.Hour},
		{"compact", "1h2m3s", time.Hour + 2*time.Minute + 3*time.Second},
		{"spaced", "1h 2m 3s", time.Hour + 2*time.Minute + 3*time.Second},
		{"minutes and seconds", "4m 05s", 4*time.Minute + 5*time.Second},
		{"hours and minutes", "2h 15m", 2*time.Hour + 15*time.Minute},
		{"padded whitespace", " 3m  7s ", 3*time.Minute + 7*time.Second},
		{"zero padded", "00h 00m 09s", 9 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		unit string
	}{
		{"letters in hours", "xh", "h"},
		{"letters in minutes", "1h abcm", "m"},
		{"hours without minutes before seconds", "1h 30s", "s"},
		{"empty seconds segment", "5m s", "s"},
		{"unit without number", "m", "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.unit, perr.Unit)
			require.Equal(t, tt.in, perr.Input)
		})
	}
}

func TestParse_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		unit string
	}{
		{"hours overflow", "3000000h", "h"},
		{"negative hours overflow", "-3000000h", "h"},
		{"seconds overflow", "9223372036854775807s", "s"},
		{"minutes overflow", "200000000000m", "m"},
		{"sum overflows", "2562047h 59m", "m"},
		{"sum overflows on seconds", "2562047h 47m 3000s", "s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.Error(t, err, "Parse(%q) = %v", tt.in, got)
			require.ErrorIs(t, err, ErrMalformed)
			require.ErrorIs(t, err, strconv.ErrRange)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.unit, perr.Unit)
		})
	}

	got, err := Parse("2562047h")
	require.NoError(t, err)
	require.Equal(t, 2562047*time.Hour, got)
	require.True(t, strings.HasPrefix(Format(got), "2562047h"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, Zero},
		{-time.Second, Zero},
		{-3 * time.Hour, Zero},
		{10 * time.Second, "00h 00m 10s"},
		{8*time.Second + 900*time.Millisecond, "00h 00m 08s"},
		{time.Minute, "00h 01m 00s"},
		{3723 * time.Second, "01h 02m 03s"},
		{125 * time.Hour, "125h 00m 00s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	d, err := Parse("1h2m3s")
	require.NoError(t, err)
	require.Equal(t, 3723*time.Second, d)
	require.Equal(t, "01h 02m 03s", Format(d))
}

func TestParse_WellFormedRoundTripsToCanonicalForm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.IntRange(0, 99).Draw(t, "hours")
		m := rapid.IntRange(0, 59).Draw(t, "minutes")
		s := rapid.IntRange(0, 59).Draw(t, "seconds")
		withH := rapid.Bool().Draw(t, "with-hours")
		withM := rapid.Bool().Draw(t, "with-minutes")
		withS := rapid.Bool().Draw(t, "with-seconds")
		sep := rapid.SampledFrom([]string{"", " ", "  "}).Draw(t, "sep")

		// Seconds are read after the minutes marker, so a text with hours and
		// seconds needs one.
		if withH && withS {
			withM = true
		}

		var parts []string
		if withH {
			parts = append(parts, fmt.Sprintf("%dh", h))
		} else {
			h = 0
		}
		if withM {
			parts = append(parts, fmt.Sprintf("%dm", m))
		} else {
			m = 0
		}
		if withS {
			parts = append(parts, fmt.Sprintf("%ds", s))
		} else {
			s = 0
		}
		text := strings.Join(parts, sep)

		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", text, err)
		}
		want := fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
		if Format(got) != want {
			t.Fatalf("Format(Parse(%q)) = %q, want %q", text, Format(got), want)
		}
	})
}

func TestFormat_NegativeClampsToZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := time.Duration(rapid.Int64Range(-1<<40, -1).Draw(t, "negative"))
		if got := Format(d); got != Format(0) || got != Zero {
			t.Fatalf("Format(%v) = %q, want %q", d, got, Zero)
		}
	})
}
