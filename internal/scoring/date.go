package scoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

var dateLayouts = []string{
	model.DateFormat,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

var shortLayouts = []string{"Jan 2", "January 2", "01/02", "1/2", "Jan. 2"}

// MatchDate reports whether a typed date denotes want. Full dates in common
// layouts must match exactly; a month and day without a year match want's
// month and day; a bare number matches want's day of month, the way a
// journal page shows only the day under an already-written month.
func MatchDate(user string, want model.Date) bool {
	s := strings.TrimSpace(user)
	if s == "" || want.IsZero() {
		return false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year() == want.Year() && t.Month() == want.Month() && t.Day() == want.Day()
		}
	}
	for _, layout := range shortLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Month() == want.Month() && t.Day() == want.Day()
		}
	}
	if day, err := strconv.Atoi(s); err == nil {
		return day == want.Day()
	}
	return false
}
