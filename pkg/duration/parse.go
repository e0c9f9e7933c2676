// Parses compact human input like "1w3d" or "-2mo" into durations and instants
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

// two-letter suffixes first so that "ms" doesn't get parsed as "m"
var units = []struct {
	suffix string
	length time.Duration
}{
	{"ns", time.Nanosecond},
	{"us", time.Microsecond},
	{"µs", time.Microsecond},
	{"ms", time.Millisecond},
	{"mo", Month},
	{"s", time.Second},
	{"m", time.Minute},
	{"h", time.Hour},
	{"d", Day},
	{"w", Week},
	{"y", Year},
}

var errOverflow = errors.New("overflows duration")

// Parse is like time.ParseDuration(), but integers only and with day ("d"), week ("w"),
// month ("mo" = 30 d) and year ("y" = 365 d) units
func Parse(input string) (time.Duration, error) {
	dur, err := parse(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", input, err)
	}

	return dur, nil
}

func parse(input string) (time.Duration, error) {
	s := input

	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	if s == "0" {
		return 0, nil
	}

	if s == "" {
		return 0, errors.New("cannot be blank")
	}

	total := time.Duration(0)

	for s != "" {
		digits := len(s) - len(strings.TrimLeft(s, "0123456789"))
		if digits == 0 {
			return 0, fmt.Errorf("expecting number at %q", s)
		}

		num, err := strconv.ParseInt(s[:digits], 10, 64)
		if err != nil {
			return 0, errOverflow
		}
		s = s[digits:]

		length, suffixLen := unitFor(s)
		if length == 0 {
			return 0, fmt.Errorf("missing or unknown unit at %q", s)
		}
		s = s[suffixLen:]

		if num > int64(maxDuration/length) {
			return 0, errOverflow
		}

		component := time.Duration(num) * length
		if total > maxDuration-component {
			return 0, errOverflow
		}

		total += component
	}

	if negative {
		return -total, nil
	}

	return total, nil
}

const maxDuration = time.Duration(1<<63 - 1)

func unitFor(s string) (time.Duration, int) {
	for _, unit := range units {
		if strings.HasPrefix(s, unit.suffix) {
			return unit.length, len(unit.suffix)
		}
	}

	return 0, 0
}

// ParseInstant accepts "now", an offset relative to now ("-3d", "+1w2d") or an absolute
// timestamp in pretty much any format (RFC 3339, "2020-09-08 12:00", Unix seconds ...).
// timestamps without zone information are interpreted in now's location.
func ParseInstant(input string, now time.Time) (time.Time, error) {
	switch {
	case input == "now":
		return now, nil
	case strings.HasPrefix(input, "-") || strings.HasPrefix(input, "+"):
		offset, err := Parse(input)
		if err != nil {
			return time.Time{}, err
		}

		return now.Add(offset), nil
	default:
		ts, err := dateparse.ParseIn(input, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", input, err)
		}

		return ts, nil
	}
}
