// Package ratelimit implements a fixed-window per-client request throttle.
//
// The window is fixed, not sliding: a client can burst up to 2×limit
// requests across a window boundary. That approximation is accepted because
// the default policy is 1 request per second.
package ratelimit

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
)

const shardCount = 16

// Result is the outcome of a single Check call.
type Result struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Remaining is the number of requests left in the current window.
	Remaining int

	// RetryAfter is the whole-second wait hint for denied requests,
	// rounded up. Zero when Allowed.
	RetryAfter int
}

type record struct {
	count     int
	windowEnd time.Time
}

type shard struct {
	mu      sync.Mutex
	records map[string]*record
}

// Limiter is a process-local fixed-window counter keyed by client identity
// (typically the remote address).
//
// Records live in a sharded map so independent clients do not contend on a
// single lock; all read-modify-write sequences for one client are atomic
// under that client's shard lock. State is never persisted; horizontal
// scale-out needs sticky routing or an external counter.
type Limiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	shards [shardCount]*shard

	sweepEvery time.Duration
	done       chan struct{}
	stopOnce   sync.Once

	logger *logger.Logger
}

// NewLimiter constructs a Limiter allowing limit requests per window.
// The clock is injected for testability; pass time.Now in production.
// Run starts the background sweep; Stop tears it down.
func NewLimiter(limit int, window time.Duration, now func() time.Time, log *logger.Logger) *Limiter {
	l := &Limiter{
		limit:      limit,
		window:     window,
		now:        now,
		sweepEvery: 10 * window,
		done:       make(chan struct{}),
		logger:     log,
	}
	for i := range l.shards {
		l.shards[i] = &shard{records: make(map[string]*record)}
	}

	return l
}

// Check records one request attempt for clientID and reports whether it may
// proceed within the current fixed window.
//
// Algorithm: no record, or the record's window has elapsed → start a fresh
// window with count 1 and allow. Count below the limit → increment and
// allow. Otherwise deny with a rounded-up RetryAfter hint.
func (l *Limiter) Check(clientID string) Result {
	s := l.shardFor(clientID)
	now := l.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[clientID]
	if !ok || now.After(rec.windowEnd) {
		s.records[clientID] = &record{count: 1, windowEnd: now.Add(l.window)}
		return Result{Allowed: true, Remaining: l.limit - 1}
	}

	if rec.count < l.limit {
		rec.count++
		return Result{Allowed: true, Remaining: l.limit - rec.count}
	}

	wait := rec.windowEnd.Sub(now)
	retryAfter := int((wait + time.Second - 1) / time.Second)
	if retryAfter < 1 {
		retryAfter = 1
	}

	return Result{Allowed: false, RetryAfter: retryAfter}
}

// Run sweeps elapsed windows on a ticker until Stop is called. It blocks and
// is intended to run as a background worker. A swept record behaves exactly
// like an active expired one on the next Check, so sweeping only bounds
// memory and never affects outcomes.
func (l *Limiter) Run() {
	ticker := time.NewTicker(l.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			removed := l.sweep()
			if removed > 0 {
				l.logger.Debug().Int("removed", removed).Msg("rate limit records swept")
			}
		}
	}
}

// Stop terminates the background sweep. Idempotent.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *Limiter) sweep() int {
	now := l.now()
	removed := 0

	for _, s := range l.shards {
		s.mu.Lock()
		for id, rec := range s.records {
			if now.After(rec.windowEnd) {
				delete(s.records, id)
				removed++
			}
		}
		s.mu.Unlock()
	}

	return removed
}

func (l *Limiter) shardFor(clientID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(clientID))

	return l.shards[h.Sum32()%shardCount]
}
