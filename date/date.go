// Package date parses and formats the DD/MM/YYYY calendar dates used in the
// person documents. A Date carries no time of day and no location.
package date

import (
	"fmt"
	"time"
)

const Pattern = "DD/MM/YYYY"

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

type FormatError struct {
	Input   string
	Pattern string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("date %q does not match %s: %s", e.Input, e.Pattern, e.Reason)
}

// Parse accepts one or two digits for day and month and exactly four digits
// for the year. Day is only checked against 1..31, not against the month
// length.
func Parse(s string) (Date, error) {

	fail := func(reason string) (Date, error) {
		return Date{}, &FormatError{Input: s, Pattern: Pattern, Reason: reason}
	}

	day, rest, ok := digits(s, 1, 2)
	if !ok {
		return fail("bad day")
	}
	rest, ok = separator(rest)
	if !ok {
		return fail("expected '/' after day")
	}
	month, rest, ok := digits(rest, 1, 2)
	if !ok {
		return fail("bad month")
	}
	rest, ok = separator(rest)
	if !ok {
		return fail("expected '/' after month")
	}
	year, rest, ok := digits(rest, 4, 4)
	if !ok {
		return fail("bad year")
	}
	if rest != "" {
		return fail("trailing characters")
	}

	if day < 1 || day > 31 {
		return fail(fmt.Sprintf("day %d out of range", day))
	}
	if month < 1 || month > 12 {
		return fail(fmt.Sprintf("month %d out of range", month))
	}

	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// digits consumes between min and max ASCII digits. It fails if fewer than
// min are present or if a digit follows the max-th one.
func digits(s string, min, max int) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && i < max && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i < min {
		return 0, s, false
	}
	if i < len(s) && s[i] >= '0' && s[i] <= '9' {
		return 0, s, false
	}
	return n, s[i:], true
}

func separator(s string) (string, bool) {
	if len(s) == 0 || s[0] != '/' {
		return s, false
	}
	return s[1:], true
}

func Format(d Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func (d Date) String() string {
	return Format(d)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(Format(d)), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
