package resume

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"January 2006",
	"Jan 2006",
	"2006",
}

func parseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatMonthYear(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return strings.TrimSpace(value)
	}
	return t.Format("Jan 2006")
}

// formatDateRange renders "MMM YYYY - MMM YYYY", substituting "Present" when
// the range is open-ended. currentlyWorking wins over any endDate.
func formatDateRange(startDate, endDate string, currentlyWorking bool) string {
	start := formatMonthYear(startDate)
	if currentlyWorking {
		return start + " - Present"
	}
	if strings.TrimSpace(endDate) == "" {
		return start + " - Present"
	}
	return start + " - " + formatMonthYear(endDate)
}

// yearOf returns the calendar year of a date string, or empty when the date
// does not parse.
func yearOf(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}
	return t.Format("2006")
}
