package service

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// canonicalDateLayout renders a calendar date as weekday, month
// abbreviation, zero-padded day and year, with no time component.
const canonicalDateLayout = "Mon Jan 02 2006"

// invalidDate is stored verbatim when a caller-supplied date cannot be parsed.
const invalidDate = "Invalid Date"

// NotANumber is the sentinel stored when numeric coercion finds no leading
// integer. Ints cannot carry NaN, so the value round-trips as-is.
const NotANumber = math.MinInt32

// dateLayouts are tried in order when parsing caller input and stored dates.
var dateLayouts = []string{
	"2006-01-02",
	canonicalDateLayout,
	time.RFC3339,
	"Jan 2 2006",
	"January 2, 2006",
	"01/02/2006",
}

// canonicalDate reformats input to the canonical textual form, defaulting
// to now when input is empty and degrading to "Invalid Date" when
// unparseable.
func canonicalDate(input string, now time.Time) string {
	if strings.TrimSpace(input) == "" {
		return now.Format(canonicalDateLayout)
	}
	t, ok := parseDate(input)
	if !ok {
		return invalidDate
	}
	return t.Format(canonicalDateLayout)
}

// parseDate is the permissive calendar-date parse used for stored dates and
// the from/to query bounds. ok is false when no layout matches; callers must
// treat any comparison involving a failed parse as false.
func parseDate(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// coerceInt converts best-effort: optional sign plus leading digit run,
// trailing garbage ignored ("15min" yields 15), no digits yields NotANumber.
func coerceInt(input string) int {
	s := strings.TrimSpace(input)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return NotANumber
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return NotANumber
	}
	return n
}
