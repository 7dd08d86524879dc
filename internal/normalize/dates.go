package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the calendar-day granularity all posted dates normalize to
const dateLayout = "2006-01-02"

var (
	daysPattern   = regexp.MustCompile(`(\d+)\s*day`)
	weeksPattern  = regexp.MustCompile(`(\d+)\s*week`)
	monthsPattern = regexp.MustCompile(`(\d+)\s*month`)
)

// absoluteLayouts are tried in order when a provider supplies a concrete
// timestamp rather than a relative phrase
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateLayout,
}

// ParsePostedDate normalizes a provider-supplied posting date to an ISO
// calendar day. It accepts absolute timestamps and relative phrases like
// "3 days ago" or "just posted"; anything unparseable defaults to now.
// now is injected so tests can freeze the clock.
func ParsePostedDate(value string, now time.Time) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return now.Format(dateLayout)
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(dateLayout)
		}
	}

	return parseRelativeDate(value, now)
}

// parseRelativeDate applies the fixed unit-conversion rules for relative
// phrases, checked in precedence order: sub-day phrasing maps to today,
// then days, weeks (x7 days) and calendar months. No match means today.
func parseRelativeDate(phrase string, now time.Time) string {
	lower := strings.ToLower(phrase)

	if strings.Contains(lower, "hour") || strings.Contains(lower, "minute") || strings.Contains(lower, "just posted") {
		return now.Format(dateLayout)
	}

	if m := daysPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -n).Format(dateLayout)
	}

	if m := weeksPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -n*7).Format(dateLayout)
	}

	if m := monthsPattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, -n, 0).Format(dateLayout)
	}

	return now.Format(dateLayout)
}
