package tui

import (
	"testing"
	"time"

	"github.com/function61/gokit/assert"
)

func TestBar(t *testing.T) {
	assert.EqualString(t, Bar(0, 20, BarDefaultTheme()), "░░░░░░░░░░░░░░░░░░░░")
	assert.EqualString(t, Bar(0.5, 20, BarDefaultTheme()), "██████████░░░░░░░░░░")
	assert.EqualString(t, Bar(1, 20, BarDefaultTheme()), "████████████████████")
	assert.EqualString(t, Bar(1.7, 4, BarDefaultTheme()), "████")
	assert.EqualString(t, Bar(-1, 4, BarDefaultTheme()), "░░░░")
	assert.EqualString(t, Bar(0.13, 20, BarCirclesTheme()), "⬤⬤○○○○○○○○○○○○○○○○○○")
}

func TestElapsedRatio(t *testing.T) {
	from := time.Date(2020, 9, 8, 12, 0, 0, 0, time.UTC)
	to := from.Add(10 * time.Hour)

	ratio := func(now time.Time) float64 {
		return ElapsedRatio(from, to, now)
	}

	assert.Assert(t, ratio(from) == 0)
	assert.Assert(t, ratio(from.Add(-time.Hour)) == 0)
	assert.Assert(t, ratio(from.Add(5*time.Hour)) == 0.5)
	assert.Assert(t, ratio(to.Add(time.Hour)) == 1)
	assert.Assert(t, ElapsedRatio(to, from, from) == 1)
}
