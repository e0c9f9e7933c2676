package duration

import (
	"testing"
	"time"

	"github.com/function61/gokit/assert"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		input  string
		output time.Duration
	}{
		{"0", 0},
		{"-0", 0},
		{"95s", 95 * time.Second},
		{"+95s", 95 * time.Second},
		{"-95s", -95 * time.Second},
		{"1h30m", 90 * time.Minute},
		{"1500ms", 1500 * time.Millisecond},
		{"3us", 3 * time.Microsecond},
		{"3µs", 3 * time.Microsecond},
		{"7ns", 7},
		{"1w3d", 10 * Day},
		{"-2mo", -60 * Day},
		{"2y", 730 * Day},
		{"1y1mo1w1d1h1m1s", Year + Month + Week + Day + time.Hour + time.Minute + time.Second},
	}

	for _, tc := range tcs {
		tc := tc // pin

		t.Run(tc.input, func(t *testing.T) {
			dur, err := Parse(tc.input)
			assert.Assert(t, err == nil)

			assert.EqualString(t, dur.String(), tc.output.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tcs := []struct {
		input string
		err   string
	}{
		{"", `invalid duration "": cannot be blank`},
		{"-", `invalid duration "-": cannot be blank`},
		{"5", `invalid duration "5": missing or unknown unit at ""`},
		{"5x", `invalid duration "5x": missing or unknown unit at "x"`},
		{"h", `invalid duration "h": expecting number at "h"`},
		{"1.5h", `invalid duration "1.5h": missing or unknown unit at ".5h"`},
		{"300y", `invalid duration "300y": overflows duration`},
		{"200y200y", `invalid duration "200y200y": overflows duration`},
		{"99999999999999999999s", `invalid duration "99999999999999999999s": overflows duration`},
	}

	for _, tc := range tcs {
		tc := tc // pin

		t.Run(tc.input, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.EqualString(t, err.Error(), tc.err)
		})
	}
}

func TestParseInstant(t *testing.T) {
	now := time.Date(2020, 9, 8, 12, 0, 0, 0, time.UTC)

	parse := func(input string) string {
		ts, err := ParseInstant(input, now)
		if err != nil {
			return err.Error()
		}

		return ts.Format(time.RFC3339)
	}

	assert.EqualString(t, parse("now"), "2020-09-08T12:00:00Z")
	assert.EqualString(t, parse("-3d"), "2020-09-05T12:00:00Z")
	assert.EqualString(t, parse("+1w2h"), "2020-09-15T14:00:00Z")
	assert.EqualString(t, parse("2020-09-01T10:00:00+03:00"), "2020-09-01T10:00:00+03:00")
	assert.EqualString(t, parse("2020-09-01 10:00:00"), "2020-09-01T10:00:00Z")
	assert.EqualString(t, parse("-3x"), `invalid duration "-3x": missing or unknown unit at "x"`)
}
