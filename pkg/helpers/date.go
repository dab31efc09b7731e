package helpers

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the dd/MM/yyyy wire format for calendar dates.
const DateLayout = "02/01/2006"

// Date is a calendar date carried as dd/MM/yyyy in JSON.
// An empty JSON string decodes to the zero Date, which callers treat as absent.
type Date struct {
	time.Time
}

// DateFormatError reports a JSON date that is not dd/MM/yyyy.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("date %q is not in dd/MM/yyyy format", e.Value)
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a dd/MM/yyyy string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, &DateFormatError{Value: s}
	}
	return Date{t}, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return &DateFormatError{Value: string(b)}
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// IsPast reports whether d is a calendar day strictly earlier than the day
// now falls on in loc.
func (d Date) IsPast(now time.Time, loc *time.Location) bool {
	today := DayOf(now, loc)
	return d.Time.Before(today)
}

// DayOf returns the UTC midnight of the calendar day t falls on in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, day := t.In(loc).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
