// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package date provides a calendar date (no time component) that serializes
// as "2006-01-02". Release dates and birthdays use it so the API never leaks
// time zones or clock fractions.
package date

import (
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar date pinned to UTC midnight.
type Date struct {
	time.Time
}

// New builds a Date at UTC midnight.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(layout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return fmt.Errorf("date: invalid value %q (want YYYY-MM-DD): %w", raw, err)
	}
	d.Time = parsed
	return nil
}
