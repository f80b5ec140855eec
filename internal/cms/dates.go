package cms

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts the CMS has been observed to emit. Timestamp fields come back
// as ISO 8601 with or without fractional seconds; date-only fields as plain
// calendar dates.
var cmsDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseCMSDate parses a date string from the CMS, trying each known layout in
// order.
func ParseCMSDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range cmsDateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", input)
}
