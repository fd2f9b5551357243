package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateKind tags the shape a DateLike value was read from.
type DateKind int

const (
	DateNone DateKind = iota
	// DateCalendar is a plain calendar day with no time zone.
	DateCalendar
	// DateInstant is a point in time such as an RFC 3339 string or epoch milliseconds.
	DateInstant
	// DateTimestamp is a store timestamp object carrying seconds and nanoseconds.
	DateTimestamp
	// DateText is a string that could not be read as a date.
	DateText
)

const calendarLayout = "2006-01-02"

// DateLike is a date field as found in stored documents. Older documents carry store
// timestamp objects where newer ones carry strings; both normalize into this type.
type DateLike struct {
	kind DateKind
	t    time.Time
	text string
}

// CalendarDate builds a time-zone free calendar day.
func CalendarDate(year int, month time.Month, day int) DateLike {
	return DateLike{kind: DateCalendar, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Instant wraps a point in time. A zero time yields an empty DateLike.
func Instant(t time.Time) DateLike {
	if t.IsZero() {
		return DateLike{}
	}
	return DateLike{kind: DateInstant, t: t}
}

// StoreTimestamp builds a timestamp from seconds and nanoseconds since the epoch.
func StoreTimestamp(seconds, nanos int64) DateLike {
	return DateLike{kind: DateTimestamp, t: time.Unix(seconds, nanos).UTC()}
}

// ParseDateLike reads a form or document string.
func ParseDateLike(raw string) DateLike {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DateLike{}
	}
	if t, err := time.Parse(calendarLayout, value); err == nil {
		return DateLike{kind: DateCalendar, t: t}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return DateLike{kind: DateInstant, t: t}
	}
	return DateLike{kind: DateText, text: value}
}

// CalendarDay drops the time of day from an instant, keeping its UTC date. Browsers send
// date pickers through toISOString, so the UTC date is the one the user chose. Other
// kinds are returned unchanged.
func (d DateLike) CalendarDay() DateLike {
	if d.kind != DateInstant {
		return d
	}
	u := d.t.UTC()
	return CalendarDate(u.Year(), u.Month(), u.Day())
}

// Kind returns the tag.
func (d DateLike) Kind() DateKind { return d.kind }

// IsZero reports whether no value is present.
func (d DateLike) IsZero() bool { return d.kind == DateNone }

// Time returns the underlying time for calendar, instant and timestamp values.
func (d DateLike) Time() (time.Time, bool) {
	switch d.kind {
	case DateCalendar, DateInstant, DateTimestamp:
		return d.t, true
	default:
		return time.Time{}, false
	}
}

// Format renders the value as d/m/yyyy. Instants are shown in loc; calendar days are not
// shifted. The result is empty when the value is not a date.
func (d DateLike) Format(loc *time.Location) string {
	var t time.Time
	switch d.kind {
	case DateCalendar:
		t = d.t
	case DateInstant, DateTimestamp:
		if loc == nil {
			loc = time.UTC
		}
		t = d.t.In(loc)
	default:
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// MarshalJSON writes calendar days as YYYY-MM-DD and instants as RFC 3339.
func (d DateLike) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case DateCalendar:
		return json.Marshal(d.t.Format(calendarLayout))
	case DateInstant, DateTimestamp:
		return json.Marshal(d.t.UTC().Format(time.RFC3339Nano))
	case DateText:
		return json.Marshal(d.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON never fails: shapes it does not recognise leave the value empty.
func (d *DateLike) UnmarshalJSON(data []byte) error {
	*d = decodeDateLike(data)
	return nil
}

func decodeDateLike(data []byte) DateLike {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return DateLike{}
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return DateLike{}
		}
		return ParseDateLike(s)
	case '{':
		return decodeTimestamp(data)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var ms float64
		if err := json.Unmarshal(data, &ms); err != nil {
			return DateLike{}
		}
		return Instant(time.UnixMilli(int64(ms)).UTC())
	default:
		return DateLike{}
	}
}

func decodeTimestamp(data []byte) DateLike {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return DateLike{}
	}
	seconds, ok := firstNumber(fields, "seconds", "_seconds")
	if !ok {
		return DateLike{}
	}
	nanos, _ := firstNumber(fields, "nanos", "nanoseconds", "_nanoseconds")
	return StoreTimestamp(seconds, nanos)
}

func firstNumber(fields map[string]json.RawMessage, keys ...string) (int64, bool) {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			continue
		}
		if v, err := n.Int64(); err == nil {
			return v, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}
