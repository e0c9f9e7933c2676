package scheduler

import (
	"testing"
	"time"

	"github.com/function61/gokit/assert"
)

func TestNextRuns(t *testing.T) {
	now := time.Date(2020, 9, 8, 12, 0, 0, 0, time.UTC)

	schedule, err := Parse("0 30 */6 * * *") // with seconds field
	assert.Assert(t, err == nil)

	runs := NextRuns(schedule, now, 3)
	assert.Assert(t, len(runs) == 3)
	assert.EqualString(t, runs[0].Format(time.RFC3339), "2020-09-08T12:30:00Z")
	assert.EqualString(t, runs[1].Format(time.RFC3339), "2020-09-08T18:30:00Z")
	assert.EqualString(t, runs[2].Format(time.RFC3339), "2020-09-09T00:30:00Z")

	// Feb 30th never happens
	never, err := Parse("0 0 30 2 *")
	assert.Assert(t, err == nil)
	assert.Assert(t, len(NextRuns(never, now, 3)) == 0)
}

func TestCache(t *testing.T) {
	cache := NewCache(2)

	first, err := cache.Parse("@hourly")
	assert.Assert(t, err == nil)

	again, err := cache.Parse("@hourly")
	assert.Assert(t, err == nil)
	assert.Assert(t, first == again)

	_, _ = cache.Parse("@daily")
	_, _ = cache.Parse("*/5 * * * *")
	assert.Assert(t, cache.Len() == 2)

	_, err = cache.Parse("bogus")
	assert.Assert(t, err != nil)
	assert.Assert(t, cache.Len() == 2)
}
