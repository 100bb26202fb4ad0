// Package datemath resolves free-form due-date phrases produced by the LLM
// into canonical YYYY-MM-DD dates. Phrases it cannot interpret pass through
// verbatim so the original wording is never lost.
package datemath

import (
	"regexp"
	"strings"
	"time"
)

// DateFormat is the canonical date layout for resolved due dates.
const DateFormat = "2006-01-02"

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Resolve maps a due-date phrase to a canonical date relative to today.
// It is pure and deterministic: today is always passed in, never read from
// the wall clock. Rules, in order:
//
//   - empty phrase            -> ""
//   - "today"                 -> today
//   - "tomorrow"              -> today + 1 day
//   - a weekday name          -> next occurrence strictly after today
//   - "next <weekday>"        -> same as the bare weekday name
//   - already YYYY-MM-DD      -> unchanged
//   - anything else           -> unchanged passthrough
//
// Resolve never fails; an unrecognized phrase is kept verbatim rather than
// dropped or treated as an error.
func Resolve(phrase string, today time.Time) string {
	trimmed := strings.TrimSpace(phrase)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)

	switch lower {
	case "today":
		return today.Format(DateFormat)
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(DateFormat)
	}

	name := strings.TrimPrefix(lower, "next ")
	if target, ok := weekdays[name]; ok {
		return nextWeekday(today, target).Format(DateFormat)
	}

	if isoDateRe.MatchString(trimmed) {
		return trimmed
	}

	return phrase
}

// nextWeekday returns the next occurrence of target strictly after today.
// When today already falls on target, the result is a full week out.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
