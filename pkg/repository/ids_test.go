package repository_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/folio/pkg/repository"
)

func TestIDGenerator_SameTick(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.UnixMilli(1_700_000_000_000))
	g := repository.NewIDGenerator(clock)

	a := g.Next(nil)
	b := g.Next(nil)
	c := g.Next(nil)

	assert.Equal(t, "1700000000000", a)
	assert.Equal(t, "1700000000001", b)
	assert.Equal(t, "1700000000002", c)
}

func TestIDGenerator_FollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.UnixMilli(1_700_000_000_000))
	g := repository.NewIDGenerator(clock)

	g.Next(nil)
	clock.Advance(time.Second)
	assert.Equal(t, "1700000001000", g.Next(nil))
}

func TestIDGenerator_ClockGoesBackwards(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.UnixMilli(1_700_000_000_000))
	g := repository.NewIDGenerator(clock)

	g.Observe("1800000000000") // created on a machine running ahead
	g.Observe("not-a-number")

	id, err := strconv.ParseInt(g.Next(nil), 10, 64)
	assert.NoError(t, err)
	assert.Equal(t, int64(1_800_000_000_001), id)
}

func TestIDGenerator_SkipsTakenIDs(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.UnixMilli(100))
	g := repository.NewIDGenerator(clock)

	taken := map[string]bool{"100": true, "101": true}
	assert.Equal(t, "102", g.Next(func(id string) bool { return taken[id] }))
	assert.Equal(t, "103", g.Next(nil))
}
