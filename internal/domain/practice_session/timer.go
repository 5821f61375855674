package practicesession

import (
	"sync"
	"time"
)

// Timer drives the once-per-second clock of an active session. A countdown
// timer fires its expiry callback exactly once when it reaches zero and then
// stops; a count-up timer ticks forever until stopped. All exit paths —
// manual finish, expiry, shutdown — must go through Stop so no background
// tick outlives its session.
type Timer struct {
	interval  time.Duration
	countdown bool
	onExpire  func()

	mu        sync.Mutex
	remaining int
	elapsed   int

	done     chan struct{}
	stopOnce sync.Once
}

// NewCountdown creates a timer that counts down from the given number of
// seconds and calls onExpire exactly once on reaching zero. The tick
// interval is injectable so tests can run in milliseconds; production
// callers pass time.Second.
func NewCountdown(seconds int, interval time.Duration, onExpire func()) *Timer {
	return &Timer{
		interval:  interval,
		countdown: true,
		remaining: seconds,
		onExpire:  onExpire,
		done:      make(chan struct{}),
	}
}

// NewCountup creates a timer that counts elapsed seconds from zero with no
// upper bound and never auto-finishes.
func NewCountup(interval time.Duration) *Timer {
	return &Timer{
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the single tick loop. There is exactly one loop per timer;
// calling Start more than once is a caller bug.
func (t *Timer) Start() {
	go t.run()
}

func (t *Timer) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			if t.tick() {
				if t.onExpire != nil {
					t.onExpire()
				}
				t.Stop()
				return
			}
		}
	}
}

// tick advances the clock by one second and reports whether a countdown
// just expired. The count never goes below zero.
func (t *Timer) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.elapsed++
	if !t.countdown {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	return t.remaining == 0
}

// Stop ends the tick loop. Safe to call multiple times and from any
// goroutine; after Stop returns no further ticks are observed.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// Remaining returns the seconds left on a countdown timer.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Elapsed returns how many ticks have passed since Start.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}
