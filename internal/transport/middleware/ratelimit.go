package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// bucketIdleTTL is how long a client's bucket survives without requests.
// A full bucket refills well within it, so expiry never loosens the limit.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter throttles anonymous submissions with one token bucket per
// route pattern and client address.
type RateLimiter struct {
	buckets    *cache.Cache
	trustProxy bool
	now        func() time.Time
}

// NewRateLimiter creates a limiter whose idle buckets are swept every
// cleanupInterval. With trustProxy the client address is the first
// X-Forwarded-For hop.
func NewRateLimiter(cleanupInterval time.Duration, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		buckets:    cache.New(bucketIdleTTL, cleanupInterval),
		trustProxy: trustProxy,
		now:        time.Now,
	}
}

// Limit allows maxPerMinute requests per client on each route it wraps,
// with bursts up to the same amount.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	capacity := float64(maxPerMinute)
	perSecond := capacity / 60

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Pattern + "|" + rl.clientIP(r)
			wait, ok := rl.take(key, capacity, perSecond)
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "too many submissions, retry later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) take(key string, capacity, perSecond float64) (time.Duration, bool) {
	now := rl.now()
	b := rl.bucketFor(key, capacity, now)
	wait, ok := b.take(now, capacity, perSecond)
	rl.buckets.SetDefault(key, b)
	return wait, ok
}

func (rl *RateLimiter) bucketFor(key string, capacity float64, now time.Time) *bucket {
	for {
		if v, found := rl.buckets.Get(key); found {
			return v.(*bucket)
		}
		b := &bucket{tokens: capacity, last: now}
		if rl.buckets.Add(key, b, cache.DefaultExpiration) == nil {
			return b
		}
	}
}

func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.trustProxy {
		first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type bucket struct {
	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// take spends one token. When the bucket is empty it reports how long until
// the next token is available.
func (b *bucket) take(now time.Time, capacity, perSecond float64) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = math.Min(capacity, b.tokens+elapsed*perSecond)
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens--
		return 0, true
	}
	return time.Duration((1 - b.tokens) / perSecond * float64(time.Second)), false
}
