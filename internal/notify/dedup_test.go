package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestShouldSuppressInsideWindow(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	dedup := NewDeduplicator(clock)

	assert.False(t, dedup.ShouldSuppress(42))

	clock.advance(30 * time.Second)
	assert.True(t, dedup.ShouldSuppress(42))
}

func TestShouldSuppressExpiresAfterWindow(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	dedup := NewDeduplicator(clock)

	assert.False(t, dedup.ShouldSuppress(42))

	clock.advance(DedupWindow + time.Second)
	assert.False(t, dedup.ShouldSuppress(42))
}

func TestShouldSuppressExactWindowBoundaryDelivers(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	dedup := NewDeduplicator(clock)

	assert.False(t, dedup.ShouldSuppress(42))

	clock.advance(DedupWindow)
	assert.False(t, dedup.ShouldSuppress(42))
}

func TestSuppressionDoesNotRefreshWindow(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	dedup := NewDeduplicator(clock)

	assert.False(t, dedup.ShouldSuppress(42))

	// Repeated hits keep the window anchored to the first delivery.
	clock.advance(45 * time.Second)
	assert.True(t, dedup.ShouldSuppress(42))

	clock.advance(30 * time.Second)
	assert.False(t, dedup.ShouldSuppress(42))
}

func TestDistinctReceiptsTrackedIndependently(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	dedup := NewDeduplicator(clock)

	assert.False(t, dedup.ShouldSuppress(1))
	assert.False(t, dedup.ShouldSuppress(2))

	clock.advance(10 * time.Second)
	assert.True(t, dedup.ShouldSuppress(1))
	assert.True(t, dedup.ShouldSuppress(2))
}

func TestExpiredEntriesArePruned(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	dedup := NewDeduplicator(clock)

	for id := int64(1); id <= 100; id++ {
		dedup.ShouldSuppress(id)
	}

	clock.advance(DedupWindow + time.Second)
	dedup.ShouldSuppress(200)

	dedup.mu.Lock()
	defer dedup.mu.Unlock()
	assert.Len(t, dedup.lastNotified, 1)
}
