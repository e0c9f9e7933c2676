package humantime

import (
	"fmt"
	"strconv"
)

// Number of seconds in various time periods. months and years are fixed-length
// approximations, not calendar-aware.
const (
	minute int64 = 60
	hour         = 60 * minute
	day          = 24 * hour
	week         = 7 * day
	month        = 30 * day
	year         = 365 * day
)

const (
	nanosPerMicro  int64 = 1000
	nanosPerMilli        = 1000 * nanosPerMicro
	nanosPerSecond       = 1000 * nanosPerMilli
)

// Unit is the kind of a TimePeriod. Now and Eternity are sentinels without a meaningful count.
type Unit int

const (
	Now Unit = iota
	Nanos
	Micros
	Millis
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
	Eternity
)

// every unit, smallest first
var Units = []Unit{Now, Nanos, Micros, Millis, Seconds, Minutes, Hours, Days, Weeks, Months, Years, Eternity}

var unitNames = map[Unit]string{
	Now:      "now",
	Nanos:    "nanos",
	Micros:   "micros",
	Millis:   "millis",
	Seconds:  "seconds",
	Minutes:  "minutes",
	Hours:    "hours",
	Days:     "days",
	Weeks:    "weeks",
	Months:   "months",
	Years:    "years",
	Eternity: "eternity",
}

func (u Unit) String() string {
	if name, found := unitNames[u]; found {
		return name
	}

	return fmt.Sprintf("Unit(%d)", int(u))
}

// TimePeriod is one component of a decomposed time, like "2 weeks"
type TimePeriod struct {
	Unit  Unit
	Count int64 // never negative. the sign is carried by Tense.
}

func (p TimePeriod) String() string {
	return p.Text(Precise)
}

// Text stringifies a single period (without tense)
func (p TimePeriod) Text(accuracy Accuracy) string {
	if accuracy == Precise {
		return p.textPrecise()
	} else {
		return p.textRough()
	}
}

func (p TimePeriod) textPrecise() string {
	switch p.Unit {
	case Now:
		return "now"
	case Nanos:
		return strconv.FormatInt(p.Count, 10) + " ns"
	case Micros:
		return strconv.FormatInt(p.Count, 10) + " µs"
	case Millis:
		return strconv.FormatInt(p.Count, 10) + " ms"
	case Seconds:
		return cardinal(p.Count, "second")
	case Minutes:
		return cardinal(p.Count, "minute")
	case Hours:
		return cardinal(p.Count, "hour")
	case Days:
		return cardinal(p.Count, "day")
	case Weeks:
		return cardinal(p.Count, "week")
	case Months:
		return cardinal(p.Count, "month")
	case Years:
		return cardinal(p.Count, "year")
	case Eternity:
		return "eternity"
	default:
		return ""
	}
}

func (p TimePeriod) textRough() string {
	switch p.Unit {
	case Now:
		return "now"
	case Nanos, Micros, Millis: // not produced by rough decomposition
		return p.textPrecise()
	case Seconds: // rough never reaches the 1-second band
		return strconv.FormatInt(p.Count, 10) + " seconds"
	case Minutes:
		return article(p.Count, "a minute", "minute")
	case Hours:
		return article(p.Count, "an hour", "hour")
	case Days:
		return article(p.Count, "a day", "day")
	case Weeks:
		return article(p.Count, "a week", "week")
	case Months:
		return article(p.Count, "a month", "month")
	case Years:
		return article(p.Count, "a year", "year")
	case Eternity:
		return "eternity"
	default:
		return ""
	}
}

// "1 day" | "2 days"
func cardinal(count int64, noun string) string {
	if count == 1 {
		return "1 " + noun
	}

	return strconv.FormatInt(count, 10) + " " + noun + "s"
}

// "a day" | "2 days"
func article(count int64, one string, noun string) string {
	if count == 1 {
		return one
	}

	return strconv.FormatInt(count, 10) + " " + noun + "s"
}
