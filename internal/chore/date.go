package chore

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk date format (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// parseLayout also accepts hand-edited dates without leading zeros.
const parseLayout = "1/2/2006"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date without a clock. The zero value is "no date".
type Date struct {
	t time.Time // always midnight UTC
}

func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{t: time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(input string) (Date, error) {
	t, err := time.Parse(parseLayout, input)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want MM/DD/YYYY): %w", input, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// DaysSince returns the number of whole days from o to d. It is negative when
// o is after d.
func (d Date) DaysSince(o Date) int {
	return d.dayNumber() - o.dayNumber()
}

// dayNumber counts days since the Unix epoch. Dates are midnight UTC, so the
// division is exact and no time.Duration is involved.
func (d Date) dayNumber() int {
	return int(floorDiv64(d.t.Unix(), secondsPerDay))
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }
