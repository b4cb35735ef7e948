// Package display owns the missing-value contract for every shaped metric:
// one coercion helper turns a raw upstream value plus a format spec into a
// display string, substituting the sentinel for anything missing or
// non-numeric. No shaper converts units on its own.
package display

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Sentinel is the fixed placeholder for any missing or non-numeric value.
const Sentinel = "N/A"

// LamportsPerSol is the number of lamports in one SOL.
const LamportsPerSol = 1e9

// Format describes how a raw numeric value becomes a display string.
type Format struct {
	// Divisor scales the raw value before rounding (0 means no scaling)
	Divisor float64

	// Decimals is the number of fixed decimal places
	Decimals int

	// Suffix is appended to the formatted value
	Suffix string
}

// Common formats used across the shapers.
var (
	// SOL converts lamports to SOL with two decimals
	SOL = Format{Divisor: LamportsPerSol, Decimals: 2}

	// Count renders an integer count unchanged
	Count = Format{Decimals: 0}

	// Amount renders a value with two decimals, no unit conversion
	Amount = Format{Decimals: 2}

	// Percent renders a two-decimal value with a percent sign
	Percent = Format{Decimals: 2, Suffix: "%"}
)

// Coerce formats a raw value per the format spec. Nil pointers, absent
// fields, NaN, infinities and unparseable strings all collapse to the
// sentinel; the result is never "NaN" or "Inf".
func Coerce(raw any, f Format) string {
	v, ok := Number(raw)
	if !ok {
		return Sentinel
	}
	if f.Divisor != 0 {
		v /= f.Divisor
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Sentinel
	}
	return strconv.FormatFloat(v, 'f', f.Decimals, 64) + f.Suffix
}

// Number extracts a float from the value kinds upstream JSON produces.
// The bool reports whether a finite number was found.
func Number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return finite(*v)
	case *int64:
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return finite(parsed)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || trimmed == Sentinel {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return finite(parsed)
	case *string:
		if v == nil {
			return 0, false
		}
		return Number(*v)
	default:
		return 0, false
	}
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// LocalDate renders an upstream day value as a short local date. The
// source is either an epoch in milliseconds or a date string.
func LocalDate(raw any) string {
	t, ok := asTime(raw)
	if !ok {
		return Sentinel
	}
	return t.Local().Format("1/2/2006")
}

// LocalTime renders an epoch-seconds value as a local clock time.
func LocalTime(epochSeconds any) string {
	v, ok := Number(epochSeconds)
	if !ok {
		return Sentinel
	}
	return time.Unix(int64(v), 0).Local().Format("3:04:05 PM")
}

// LocalDateTime renders an epoch-seconds value as a local date and time.
func LocalDateTime(epochSeconds any) string {
	v, ok := Number(epochSeconds)
	if !ok {
		return Sentinel
	}
	return Stamp(time.Unix(int64(v), 0))
}

// Stamp renders a time as the full local date-and-time display form.
func Stamp(t time.Time) string {
	return t.Local().Format("1/2/2006, 3:04:05 PM")
}

func asTime(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		ms, ok := Number(raw)
		if !ok {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)), true
	}
}
