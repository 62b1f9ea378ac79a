package transit

import (
	"fmt"
	"time"
)

// DisplayOffset is the fixed shift applied when rendering instants for
// display and export. The checkpoint runs on UTC+3 with no daylight-saving
// rule; the same shift is used when stamping entry and exit times.
const DisplayOffset = 3 * time.Hour

// Placeholder is rendered for any absent field.
const Placeholder = "-"

// dateLayout is the wire format of the Date field and the range bounds.
const dateLayout = "2006-01-02"

// FormatInstant renders t shifted by DisplayOffset as "DD/MM/YYYY - HH:MM",
// zero padded. A nil t renders as the placeholder dash. The shifted civil
// fields are read directly, with no further timezone conversion.
func FormatInstant(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	s := t.UTC().Add(DisplayOffset)
	return fmt.Sprintf("%02d/%02d/%04d - %02d:%02d",
		s.Day(), int(s.Month()), s.Year(), s.Hour(), s.Minute())
}

// ShiftedNow returns now moved by DisplayOffset, the instant stored when an
// entry or exit is stamped without a manual value.
func ShiftedNow(now time.Time) time.Time {
	return now.UTC().Add(DisplayOffset)
}
