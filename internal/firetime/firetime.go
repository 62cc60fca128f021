// Package firetime decodes the timestamp shapes that have historically been
// written into the Firestore collections by different clients: native
// timestamps (which the Go SDK surfaces as time.Time), plain
// {seconds, nanoseconds} objects, ISO-8601 strings, epoch numbers in either
// seconds or milliseconds, and already-decoded time values. All document
// decoding must go through this package so every shape is honored identically
// everywhere.
package firetime

import (
	"encoding/json"
	"time"
)

// Above this value an epoch number is taken to be milliseconds rather than
// seconds. Matches the heuristic the legacy console used.
const msThreshold = 1e10

// ToTime converts a raw Firestore field value to a time.Time. The second
// return value is false when the value is absent or unrecognizable.
func ToTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case map[string]any:
		return fromSecondsNanos(t)
	case string:
		return fromString(t)
	case int:
		return fromEpoch(float64(t)), true
	case int64:
		return fromEpoch(float64(t)), true
	case float64:
		return fromEpoch(t), true
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return fromEpoch(f), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// ToTimeOrNow decodes v, falling back to the current time. Used for fields
// whose semantics require a value, such as createdAt.
func ToTimeOrNow(v any) time.Time {
	if t, ok := ToTime(v); ok {
		return t
	}
	return time.Now()
}

// ToTimePtr decodes v, returning nil when absent. Used for fields that are
// null while a request is pending, such as reviewedAt.
func ToTimePtr(v any) *time.Time {
	if t, ok := ToTime(v); ok {
		return &t
	}
	return nil
}

func fromSecondsNanos(m map[string]any) (time.Time, bool) {
	secs, ok := numField(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := numField(m, "nanoseconds", "_nanoseconds", "nanos")
	return time.Unix(int64(secs), int64(nanos)), true
}

func numField(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch n := m[k].(type) {
		case float64:
			return n, true
		case int64:
			return float64(n), true
		case int:
			return float64(n), true
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func fromString(s string) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fromEpoch(n float64) time.Time {
	ms := n
	if n <= msThreshold {
		ms = n * 1000
	}
	return time.UnixMilli(int64(ms))
}
