package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Date is a profile date such as the start of a job. It decodes from either
// "2006-01-02" or an RFC 3339 timestamp and always encodes as RFC 3339.
type Date struct {
	time.Time
}

// NewDate returns the Date for midnight UTC of the given day.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}

	return fmt.Errorf("date %q is neither %s nor RFC 3339", raw, time.DateOnly)
}
