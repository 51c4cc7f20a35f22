package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	isoDateLayout = "2006-01-02"
	brDateLayout  = "02/01/2006"
)

// Date is a civil calendar date: no time of day, no zone. The upstream API
// exchanges dates as ISO-8601 strings while staff type them as DD/MM/YYYY, so
// both forms parse into the same value and render back without drift.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseBRDate parses DD/MM/YYYY user input.
func ParseBRDate(s string) (Date, error) {
	t, err := time.Parse(brDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t.UTC()}, nil
}

// ParseISODate parses the upstream wire forms: a bare ISO date or a full
// ISO-8601 timestamp, of which only the calendar date is kept.
func ParseISODate(s string) (Date, error) {
	for _, layout := range []string{isoDateLayout, "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("parse date %q: unsupported format", s)
}

// MarshalJSON renders the ISO form, matching what the upstream exchanges.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.ISO() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseISODate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) ISO() string { return d.t.Format(isoDateLayout) }

func (d Date) BR() string { return d.t.Format(brDateLayout) }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// AgeAt returns the whole-year age of someone born on d as of the given date.
func (d Date) AgeAt(on Date) int {
	years := on.t.Year() - d.t.Year()
	if on.t.Month() < d.t.Month() ||
		(on.t.Month() == d.t.Month() && on.t.Day() < d.t.Day()) {
		years--
	}
	return years
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share at least
// one day. Boundaries are inclusive: a booking ending the day another starts
// counts as overlapping.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
