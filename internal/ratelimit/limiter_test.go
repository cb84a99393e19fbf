package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable clock for driving window boundaries in tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(limit int, window time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 2, 13, 16, 0, 0, 0, time.UTC)}
	return NewLimiter(limit, window, clock.Now, logger.Nop()), clock
}

func TestCheck_FirstCallAllowed(t *testing.T) {
	l, _ := newTestLimiter(1, time.Second)

	res := l.Check("10.0.0.1")
	require.True(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 0, res.RetryAfter)
}

func TestCheck_SecondCallDeniedWithRetryAfter(t *testing.T) {
	l, _ := newTestLimiter(1, time.Second)

	require.True(t, l.Check("10.0.0.1").Allowed)

	res := l.Check("10.0.0.1")
	require.False(t, res.Allowed)
	assert.GreaterOrEqual(t, res.RetryAfter, 1)
}

func TestCheck_AllowedAgainAfterWindow(t *testing.T) {
	l, clock := newTestLimiter(1, time.Second)

	require.True(t, l.Check("10.0.0.1").Allowed)
	require.False(t, l.Check("10.0.0.1").Allowed)

	clock.Advance(1100 * time.Millisecond)

	assert.True(t, l.Check("10.0.0.1").Allowed)
}

func TestCheck_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Second)

	require.True(t, l.Check("client-a").Allowed)
	require.False(t, l.Check("client-a").Allowed)

	// exhausting A must not affect B
	assert.True(t, l.Check("client-b").Allowed)
}

func TestCheck_RemainingCountsDown(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute)

	assert.Equal(t, 2, l.Check("c").Remaining)
	assert.Equal(t, 1, l.Check("c").Remaining)
	assert.Equal(t, 0, l.Check("c").Remaining)
	assert.False(t, l.Check("c").Allowed)
}

func TestCheck_RetryAfterRoundsUp(t *testing.T) {
	l, clock := newTestLimiter(1, 10*time.Second)

	require.True(t, l.Check("c").Allowed)

	clock.Advance(9500 * time.Millisecond) // 500ms left in the window

	res := l.Check("c")
	require.False(t, res.Allowed)
	assert.Equal(t, 1, res.RetryAfter)
}

func TestSweep_RemovesOnlyElapsedWindows(t *testing.T) {
	l, clock := newTestLimiter(1, time.Second)

	l.Check("old")
	clock.Advance(5 * time.Second)
	l.Check("fresh")

	removed := l.sweep()
	assert.Equal(t, 1, removed)

	// swept record behaves as "no record": next check starts a new window
	assert.True(t, l.Check("old").Allowed)
	// unswept fresh record still counts
	assert.False(t, l.Check("fresh").Allowed)
}

func TestCheck_ConcurrentSameClientAtomic(t *testing.T) {
	l, _ := newTestLimiter(50, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Check("same-client").Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestStop_IsIdempotent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Second)

	go l.Run()
	l.Stop()
	l.Stop()
}
