package server

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedMessage is sent as an alert when a client exceeds its limit.
const RateLimitedMessage = "Too many requests. Please wait a moment and try again."

// limiter decides whether the client at an address may make another
// request. When it may not, allow also reports how long to wait.
type limiter interface {
	allow(ctx context.Context, addr string) (bool, time.Duration)
	stop()
}

const limiterIdle = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client address.
type clientLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*limiterEntry
	done    chan struct{}
	once    sync.Once
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &clientLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		clients: make(map[string]*limiterEntry),
		done:    make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *clientLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.clients[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

func (l *clientLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for key, e := range l.clients {
				if now.Sub(e.lastSeen) > limiterIdle {
					delete(l.clients, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

func (l *clientLimiter) allow(_ context.Context, addr string) (bool, time.Duration) {
	r := l.get(addr).Reserve()
	if !r.OK() {
		return false, time.Second
	}
	if wait := r.Delay(); wait > 0 {
		r.Cancel()
		return false, wait
	}
	return true, 0
}

func (l *clientLimiter) stop() {
	l.once.Do(func() { close(l.done) })
}

func rateLimit(l limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthz" {
				next.ServeHTTP(w, r)
				return
			}
			if ok, wait := l.allow(r.Context(), clientAddr(r)); !ok {
				w.Header().Set("X-Alert", RateLimitedMessage)
				w.Header().Set("Retry-After", retryAfter(wait))
				http.Error(w, RateLimitedMessage, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfter formats wait as whole seconds, never less than one.
func retryAfter(wait time.Duration) string {
	secs := int(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientAddr returns the request's remote host without the port.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
