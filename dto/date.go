package dto

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "02/01/2006"

// Date is a calendar date that travels as dd/MM/yyyy on the wire.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time.Time, keeping only the calendar day.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON parses "dd/MM/yyyy". A JSON null leaves the date zero.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected dd/MM/yyyy", s)
	}
	d.Time = t
	return nil
}

// MarshalJSON formats the date as "dd/MM/yyyy".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}
