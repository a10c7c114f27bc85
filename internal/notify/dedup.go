package notify

import (
	"sync"
	"time"

	"github.com/qoocca/parent-pay/internal/ports"
)

// DedupWindow is how long a repeated notification for the same receipt is
// suppressed after a delivery.
const DedupWindow = 60 * time.Second

// Deduplicator suppresses re-delivery of the same receipt notification
// inside a sliding per-key window. It is process-wide and long-lived; all
// mutation happens inside ShouldSuppress. Two near-simultaneous calls for
// one key may both deliver; a rare duplicate notification is acceptable.
type Deduplicator struct {
	mu           sync.Mutex
	window       time.Duration
	clock        ports.Clock
	lastNotified map[int64]time.Time
}

func NewDeduplicator(clock ports.Clock) *Deduplicator {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Deduplicator{
		window:       DedupWindow,
		clock:        clock,
		lastNotified: make(map[int64]time.Time),
	}
}

// ShouldSuppress reports whether a notification for receiptID arrived
// inside the window since its last delivery. A hit does not refresh the
// timestamp; the window is anchored to the last delivery. An entry aged
// exactly the window is not suppressed.
func (d *Deduplicator) ShouldSuppress(receiptID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	d.prune(now)

	if last, ok := d.lastNotified[receiptID]; ok && now.Sub(last) < d.window {
		return true
	}

	d.lastNotified[receiptID] = now
	return false
}

// prune keeps the map bounded; every call drops entries older than the
// window.
func (d *Deduplicator) prune(now time.Time) {
	for key, last := range d.lastNotified {
		if now.Sub(last) > d.window {
			delete(d.lastNotified, key)
		}
	}
}
