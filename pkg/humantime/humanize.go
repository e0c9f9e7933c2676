package humantime

import (
	"time"
)

// Humanizer presents the object in human friendly text form
type Humanizer interface {
	Humanize() string
}

var (
	_ Humanizer = HumanTime{}
	_ Humanizer = Duration(0)
	_ Humanizer = Time{}
)

func (h HumanTime) Humanize() string {
	return h.String()
}

// Duration is a time.Duration that knows how to humanize itself
type Duration time.Duration

func (d Duration) Humanize() string {
	return FromDuration(time.Duration(d)).String()
}

// Time is a time.Time that humanizes itself relative to current time
type Time time.Time

func (t Time) Humanize() string {
	return FromTime(time.Time(t)).String()
}

func Humanize(dur time.Duration) string {
	return Duration(dur).Humanize()
}

func HumanizeTime(t time.Time) string {
	return Time(t).Humanize()
}
