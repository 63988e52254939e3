package models

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire and query format of every date field.
const DateLayout = "2006-01-02"

// Now is swapped in tests that need a fixed calendar day.
var Now = time.Now

// Today returns the current local calendar day as a UTC midnight date.
func Today() datatypes.Date {
	return NewDate(Now())
}

// NewDate drops the clock part of t, keeping its calendar day.
func NewDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
