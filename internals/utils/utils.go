package utils

import (
	"fmt"
	"time"
)

// ParseDate accepts a calendar date in DICOM (20240301) or ISO
// (2024-03-01) form.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range []string{"20060102", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYYMMDD or YYYY-MM-DD", value)
}
