package humantime

import (
	"fmt"
)

// Accuracy controls whether a time is expressed as one approximate unit or as an exact
// multi-unit breakdown
type Accuracy int

const (
	// easy to grasp, but not necessarily accurate ("2 months")
	Rough Accuracy = iota
	// accurate, but not necessarily easy to grasp ("1 month, 2 weeks and 1 day")
	Precise
)

// for formatting flag compatibility (fmt's "#" flag is the "precise" flag)
func AccuracyFromPrecise(precise bool) Accuracy {
	if precise {
		return Precise
	} else {
		return Rough
	}
}

func (a Accuracy) IsPrecise() bool {
	return a == Precise
}

func (a Accuracy) IsRough() bool {
	return a == Rough
}

func (a Accuracy) String() string {
	switch a {
	case Rough:
		return "rough"
	case Precise:
		return "precise"
	default:
		return fmt.Sprintf("Accuracy(%d)", int(a))
	}
}

// how many whole seconds (of absolute magnitude) are still considered "now". the second
// return is false when the accuracy has no such grace band.
func (a Accuracy) presentBand() (int64, bool) {
	switch a {
	case Rough:
		return nowSeconds, true
	default:
		return 0, false
	}
}

// Tense is the time of the period in relation to the time of the utterance
type Tense int

const (
	Past Tense = iota
	Present
	Future
)

func ParseTense(input string) (Tense, error) {
	switch input {
	case "past":
		return Past, nil
	case "present":
		return Present, nil
	case "future":
		return Future, nil
	default:
		return Present, fmt.Errorf("unknown tense: %q", input)
	}
}

func (t Tense) String() string {
	switch t {
	case Past:
		return "past"
	case Present:
		return "present"
	case Future:
		return "future"
	default:
		return fmt.Sprintf("Tense(%d)", int(t))
	}
}

func (t Tense) wrap(text string) string {
	switch t {
	case Past:
		return text + " ago"
	case Future:
		return "in " + text
	default:
		return text
	}
}
