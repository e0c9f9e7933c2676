// Expresses elapsed time in English, like "a month ago", "in 2 years" or (precisely)
// "1 month, 2 weeks and 1 day ago"
package humantime

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

// HumanTime is a signed amount of time, ready to be expressed in human language.
// construct with FromDuration(), FromSeconds(), FromTime() or FromTimeAt().
type HumanTime struct {
	negative bool
	secs     int64 // absolute whole seconds
	nanos    int64 // absolute sub-second part [0, 1e9)
	eternal  bool  // magnitude not representable
}

func FromDuration(dur time.Duration) HumanTime {
	negative := dur < 0

	// unsigned negation is well-defined for math.MinInt64 as well
	magnitude := uint64(dur)
	if negative {
		magnitude = -magnitude
	}

	return HumanTime{
		negative: negative,
		secs:     int64(magnitude / uint64(nanosPerSecond)),
		nanos:    int64(magnitude % uint64(nanosPerSecond)),
	}
}

// for magnitudes beyond time.Duration's range (~292 years)
func FromSeconds(secs int64) HumanTime {
	if secs == math.MinInt64 { // has no absolute value
		return eternity(true)
	}

	if secs < 0 {
		return HumanTime{negative: true, secs: -secs}
	}

	return HumanTime{secs: secs}
}

// FromTime is the difference between t and current time, so a timestamp in the past
// yields a negative value ("... ago")
func FromTime(t time.Time) HumanTime {
	return FromTimeAt(t, time.Now())
}

// FromTimeAt is like FromTime, but relative to an explicit reference instant
func FromTimeAt(t time.Time, now time.Time) HumanTime {
	// not using t.Sub() because it saturates at time.Duration's range
	secs, ok := subtract(t.Unix(), now.Unix())
	if !ok { // only possible when the operands have different signs
		return eternity(now.Unix() > 0)
	}

	nanos := int64(t.Nanosecond()) - int64(now.Nanosecond())

	// make seconds and nanos have the same sign
	switch {
	case secs > 0 && nanos < 0:
		secs--
		nanos += nanosPerSecond
	case secs < 0 && nanos > 0:
		secs++
		nanos -= nanosPerSecond
	}

	if secs == math.MinInt64 {
		return eternity(true)
	}

	if secs < 0 || nanos < 0 {
		return HumanTime{negative: true, secs: -secs, nanos: -nanos}
	}

	return HumanTime{secs: secs, nanos: nanos}
}

func eternity(negative bool) HumanTime {
	return HumanTime{negative: negative, eternal: true}
}

// a - b, ok=false on overflow
func subtract(a int64, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}

	return diff, true
}

func (h HumanTime) IsZero() bool {
	return !h.eternal && h.secs == 0 && h.nanos == 0
}

func (h HumanTime) IsEternity() bool {
	return h.eternal
}

// Periods decomposes the absolute magnitude. rough yields exactly one period, precise yields
// one or more in descending unit size.
func (h HumanTime) Periods(accuracy Accuracy) []TimePeriod {
	if h.eternal {
		return []TimePeriod{{Unit: Eternity}}
	}

	if accuracy == Precise {
		return precisePeriods(h.secs, h.nanos)
	} else {
		return []TimePeriod{roughPeriod(h.secs)}
	}
}

// Tense resolves the grammatical tense from the sign. rough accuracy has a grace band
// (<= 10 s counts as present), precise accuracy is present only for exactly zero.
func (h HumanTime) Tense(accuracy Accuracy) Tense {
	if h.IsZero() {
		return Present
	}

	if band, has := accuracy.presentBand(); has && !h.eternal && h.secs <= band {
		return Present
	}

	if h.negative {
		return Past
	} else {
		return Future
	}
}

// ToText expresses the time in English with full control over accuracy and tense
func (h HumanTime) ToText(accuracy Accuracy, tense Tense) string {
	texts := lo.Map(h.Periods(accuracy), func(period TimePeriod, _ int) string {
		return period.Text(accuracy)
	})

	return tense.wrap(joinEnglish(texts))
}

// Text is like ToText(), but with tense resolved from the sign
func (h HumanTime) Text(accuracy Accuracy) string {
	return h.ToText(accuracy, h.Tense(accuracy))
}

// rough accuracy
func (h HumanTime) String() string {
	return h.Text(Rough)
}

// Format implements fmt.Formatter. "#" flag selects precise accuracy ("%#v"), width pads with
// spaces ("-" flag aligns left) and precision truncates.
func (h HumanTime) Format(f fmt.State, verb rune) {
	text := h.Text(AccuracyFromPrecise(f.Flag('#')))

	switch verb {
	case 'v', 's':
	default:
		fmt.Fprintf(f, "%%!%c(humantime.HumanTime=%s)", verb, text)
		return
	}

	if precision, has := f.Precision(); has && precision < utf8.RuneCountInString(text) {
		text = string([]rune(text)[:precision])
	}

	if width, has := f.Width(); has {
		if padding := width - utf8.RuneCountInString(text); padding > 0 {
			if f.Flag('-') {
				text += strings.Repeat(" ", padding)
			} else {
				text = strings.Repeat(" ", padding) + text
			}
		}
	}

	_, _ = io.WriteString(f, text)
}

// "X", "X and Y", "X, Y and Z"
func joinEnglish(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		last := len(items) - 1
		return strings.Join(items[:last], ", ") + " and " + items[last]
	}
}
