package inquiries

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ipLimiter hands out one token-bucket limiter per client IP. Entries idle
// past the eviction window are dropped so the map does not grow unbounded.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipEntry
	limit    rate.Limit
	burst    int
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const evictAfter = 30 * time.Minute

func newIPLimiter(limit rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*ipEntry),
		limit:    limit,
		burst:    burst,
	}
}

func (l *ipLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.limiters[ip]
	if !ok {
		for k, v := range l.limiters {
			if now.Sub(v.lastSeen) > evictAfter {
				delete(l.limiters, k)
			}
		}
		e = &ipEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter.Allow()
}
