package session

import (
	"regexp"
	"strconv"
	"time"
)

// utcOffsetPattern matches the country provider's timezone strings, e.g.
// "UTC+02:00" or "UTC-05:30". Plain "UTC" (and anything garbled) does not
// match and falls back to a zero offset; a broken timezone string must not
// block the rest of the experience.
var utcOffsetPattern = regexp.MustCompile(`^UTC([+-])(\d{2}):(\d{2})$`)

// parseUTCOffset converts a "UTC±HH:MM" string into a duration east of UTC.
// Non-matching input yields zero.
func parseUTCOffset(tz string) time.Duration {
	m := utcOffsetPattern.FindStringSubmatch(tz)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if m[1] == "-" {
		offset = -offset
	}
	return offset
}

// wallClock formats the wall time at the given offset from UTC as HH:MM:SS.
func wallClock(now time.Time, offset time.Duration) string {
	return now.UTC().Add(offset).Format("15:04:05")
}
