//go:build !tinygo

package hal

import "time"

const (
	tickPeriod  = time.Millisecond
	tickBacklog = 1024
)

// hostTime turns host time into the millisecond tick stream of Time.Ticks.
// Window and terminal hosts feed it wall time. The headless host feeds it
// fixed steps so runs repeat exactly.
type hostTime struct {
	ticks chan uint64
	seq   uint64

	now   func() time.Time
	since time.Time
	carry time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ticks: make(chan uint64, tickBacklog), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ticks }

// step emits the ticks covered by the time elapsed since the previous call,
// carrying the sub-millisecond remainder. The first call has nothing to
// measure against and emits first ticks instead.
func (t *hostTime) step(first uint64) {
	now := t.now()
	if t.since.IsZero() {
		t.since = now
		t.stepN(first)
		return
	}
	elapsed := t.carry + now.Sub(t.since)
	t.since = now
	if elapsed < 0 {
		elapsed = 0
	}
	t.carry = elapsed % tickPeriod
	t.stepN(uint64(elapsed / tickPeriod))
}

// stepN emits n ticks. Ticks that find the backlog full are lost, but seq
// still counts them so a reader sees the gap.
func (t *hostTime) stepN(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ticks <- t.seq:
		default:
		}
	}
}
