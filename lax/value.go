package lax

import (
	"strconv"
	"time"
)

// Value is a typed-conversion handle over one stored token. Extraction
// either succeeds or reports failure through the second return value;
// nothing panics and the raw text stays retrievable through Str even
// when a typed extraction fails. A failed handle (missing index or
// name, no default supplied) yields zero values from every extraction
// and Valid reports false.
type Value struct {
	text    string
	present bool
}

// Valid reports whether the handle wraps a stored or defaulted value.
func (v Value) Valid() bool {
	return v.present
}

// Str returns the raw text, or "" for a failed handle.
func (v Value) Str() string {
	return v.text
}

// Int extracts an integer. Base prefixes are honored, so "0xFF" reads
// as 255.
func (v Value) Int() (int, bool) {
	if !v.present {
		return 0, false
	}
	n, err := strconv.ParseInt(v.text, 0, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// Float extracts a float64.
func (v Value) Float() (float64, bool) {
	if !v.present {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool extracts a bool, accepting the strconv.ParseBool spellings.
func (v Value) Bool() (bool, bool) {
	if !v.present {
		return false, false
	}
	b, err := strconv.ParseBool(v.text)
	if err != nil {
		return false, false
	}
	return b, true
}

// Duration extracts a time.Duration, e.g. "1h30m".
func (v Value) Duration() (time.Duration, bool) {
	if !v.present {
		return 0, false
	}
	d, err := time.ParseDuration(v.text)
	if err != nil {
		return 0, false
	}
	return d, true
}

// MustInt extracts an integer with a default fallback on failure.
func (v Value) MustInt(def int) int {
	if n, ok := v.Int(); ok {
		return n
	}
	return def
}

// MustFloat extracts a float64 with a default fallback on failure.
func (v Value) MustFloat(def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

// MustBool extracts a bool with a default fallback on failure.
func (v Value) MustBool(def bool) bool {
	if b, ok := v.Bool(); ok {
		return b
	}
	return def
}

// MustDuration extracts a duration with a default fallback on failure.
func (v Value) MustDuration(def time.Duration) time.Duration {
	if d, ok := v.Duration(); ok {
		return d
	}
	return def
}

// MustStr returns the raw text with a default fallback for a failed
// handle.
func (v Value) MustStr(def string) string {
	if v.present {
		return v.text
	}
	return def
}
