// Package countdown converts between the free-form countdown strings the stock
// API returns ("1h 2m 3s", "45s", "2m") and time.Duration values, and renders
// durations in the fixed-width form the shop cards display.
package countdown

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Zero is the display form of a zero or negative countdown.
const Zero = "00h 00m 00s"

// ErrMalformed is matched by every *ParseError.
var ErrMalformed = errors.New("malformed countdown")

// ParseError reports a countdown segment that is not an integer.
type ParseError struct {
	Input   string // full countdown text
	Unit    string // "h", "m" or "s"
	Segment string // trimmed text that failed to convert
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse countdown %q: %s segment %q: %v", e.Input, e.Unit, e.Segment, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrMalformed so callers need not know about *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrMalformed }

// Parse converts text into a duration using literal substring positions rather
// than a grammar:
//
//   - hours are the text before the first "h"
//   - minutes are the text between the first "h" (or the start) and the next "m"
//   - seconds are the text between the first "m" (or the start) and the next "s"
//
// A unit whose letter never appears contributes zero, so "" parses to 0. Because
// segments are positional, "1h 30s" is malformed: its seconds segment is "1h 30".
func Parse(text string) (time.Duration, error) {
	var total time.Duration

	if i := strings.Index(text, "h"); i >= 0 {
		d, err := segment(text, "h", text[:i], time.Hour)
		if err != nil {
			return 0, err
		}
		total = d
	}

	if strings.Contains(text, "m") {
		rest := text
		if i := strings.Index(text, "h"); i >= 0 {
			rest = text[i+1:]
		}
		if i := strings.Index(rest, "m"); i >= 0 {
			rest = rest[:i]
		}
		d, err := segment(text, "m", rest, time.Minute)
		if err != nil {
			return 0, err
		}
		if total, err = add(text, "m", rest, total, d); err != nil {
			return 0, err
		}
	}

	if strings.Contains(text, "s") {
		rest := text
		if i := strings.Index(text, "m"); i >= 0 {
			rest = text[i+1:]
		}
		if i := strings.Index(rest, "s"); i >= 0 {
			rest = rest[:i]
		}
		d, err := segment(text, "s", rest, time.Second)
		if err != nil {
			return 0, err
		}
		if total, err = add(text, "s", rest, total, d); err != nil {
			return 0, err
		}
	}

	return total, nil
}

// segment converts one trimmed segment to a duration of the given unit. Values
// that do not fit in a time.Duration are rejected rather than wrapped.
func segment(input, unit, raw string, scale time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: input, Unit: unit, Segment: trimmed, Err: err}
	}
	limit := int64(math.MaxInt64 / scale)
	if n > limit || n < -limit {
		return 0, &ParseError{Input: input, Unit: unit, Segment: trimmed, Err: strconv.ErrRange}
	}
	return time.Duration(n) * scale, nil
}

func add(input, unit, raw string, total, d time.Duration) (time.Duration, error) {
	if (d > 0 && total > math.MaxInt64-d) || (d < 0 && total < math.MinInt64-d) {
		return 0, &ParseError{Input: input, Unit: unit, Segment: strings.TrimSpace(raw), Err: strconv.ErrRange}
	}
	return total + d, nil
}

// Format renders d as "HHh MMm SSs", truncated to whole seconds. Negative
// durations render as Zero.
func Format(d time.Duration) string {
	if d < 0 {
		return Zero
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
}
