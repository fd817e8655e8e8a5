// Package ratelimit limits requests per client and route with token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket holds up to capacity tokens and refills at refillRate tokens per second.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// take refills the bucket up to now, consumes one token if available and reports the
// tokens left and when the bucket will be full again.
func (b *tokenBucket) take(now time.Time) (allowed bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.lastRefill); elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed.Seconds()*b.refillRate)
		b.lastRefill = now
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	resetAt = now
	if missing := b.capacity - b.tokens; missing > 0 && b.refillRate > 0 {
		resetAt = now.Add(time.Duration(missing / b.refillRate * float64(time.Second)))
	}
	return allowed, int(b.tokens), resetAt
}

// nextToken is how long until one token is available.
func (b *tokenBucket) nextToken() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tokens >= 1 || b.refillRate <= 0 {
		return 0
	}
	return time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
}

func (b *tokenBucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info describes the limit state after a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages one bucket per client and route.
type Limiter struct {
	config  *Config
	now     func() time.Time
	mu      sync.Mutex
	buckets map[string]*tokenBucket

	stopOnce sync.Once
	stop     chan struct{}
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLimiter creates a limiter. A nil config means DefaultConfig. A background sweep of
// idle buckets runs while the limiter is enabled and CleanupInterval is positive.
func NewLimiter(config *Config, opts ...Option) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*tokenBucket),
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.sweepLoop(config.CleanupInterval)
	}
	return l
}

// Allow checks and records one request from clientID.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	unlimited := Info{Allowed: true}
	switch {
	case !l.config.Enabled, l.config.Whitelist[clientID], isExempt(path, l.config.ExemptPaths):
		return true, unlimited
	case l.config.Blacklist[clientID]:
		return false, Info{}
	}

	ec := MatchEndpoint(path, method, l.config.EndpointConfigs)
	key := clientID + ":default"
	if ec != nil {
		key = clientID + ":" + ec.Method + " " + ec.Path
	} else {
		ec = &EndpointConfig{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	if ec.Limit <= 0 || ec.Window <= 0 {
		return true, unlimited
	}

	now := l.now()
	bucket := l.bucket(key, ec, now)
	allowed, remaining, resetAt := bucket.take(now)

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !allowed {
		info.RetryAfter = bucket.nextToken()
	}
	return allowed, info
}

func (l *Limiter) bucket(key string, ec *EndpointConfig, now time.Time) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	b := newTokenBucket(capacity, float64(ec.Limit)/ec.Window.Seconds(), now)
	l.buckets[key] = b
	return b
}

// Len reports how many buckets are tracked.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Sweep drops buckets not used within the idle TTL.
func (l *Limiter) Sweep() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

func (l *Limiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-l.stop:
			return
		}
	}
}

// Stop ends the background sweep. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
