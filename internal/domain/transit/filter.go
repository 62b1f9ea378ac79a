package transit

import (
	"strings"
	"time"
)

// Bounds used when one end of the date range is left open.
var (
	minRangeDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxRangeDate = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// FilterBySearch returns the records where term appears, case-insensitively,
// as a substring of at least one of the six searched fields. An empty term
// returns records unchanged. Relative order is preserved.
func FilterBySearch(records []Record, term string) []Record {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if matchesTerm(rec, needle) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func matchesTerm(rec Record, needle string) bool {
	for _, field := range []string{
		rec.PersonName,
		rec.CarNumber,
		rec.Unit,
		rec.PersonType,
		rec.PermitGiver,
		rec.CarModel,
	} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// FilterByDateRange narrows records to those whose Date falls inside the
// inclusive [start, end] range. Bounds are YYYY-MM-DD strings; an empty
// start defaults to 1900-01-01 and an empty end to 2100-01-01. With both
// bounds empty the input is returned unchanged. Records with an absent or
// unparsable Date are excluded whenever a bound is set.
func FilterByDateRange(records []Record, start, end string) []Record {
	if start == "" && end == "" {
		return records
	}

	from := minRangeDate
	if start != "" {
		if parsed, err := time.Parse(dateLayout, start); err == nil {
			from = parsed
		}
	}
	to := maxRangeDate
	if end != "" {
		if parsed, err := time.Parse(dateLayout, end); err == nil {
			to = parsed
		}
	}

	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		day, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}
