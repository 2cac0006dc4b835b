package server

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/iwvelando/mortgage-engine/internal/config"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxTrackedClients bounds the limiter table. When it is full the least
// recently seen client is evicted.
const maxTrackedClients = 10000

type requestIDKey struct{}

// withRequestID tags every request with the caller's X-Request-ID or a new
// UUID and echoes it in the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// clientLimiter keeps one token bucket per client address.
type clientLimiter struct {
	limit      rate.Limit
	burst      int
	maxClients int

	mu      sync.Mutex
	clock   uint64
	clients map[string]*clientEntry
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen uint64
}

func newClientLimiter(cfg config.RateLimitConfig) *clientLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &clientLimiter{
		limit:      rate.Limit(cfg.RequestsPerSecond),
		burst:      burst,
		maxClients: maxTrackedClients,
		clients:    make(map[string]*clientEntry),
	}
}

func (c *clientLimiter) allow(client string) bool {
	if c.limit <= 0 {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock++
	entry, ok := c.clients[client]
	if !ok {
		if len(c.clients) >= c.maxClients {
			c.evictLeastRecent()
		}
		entry = &clientEntry{limiter: rate.NewLimiter(c.limit, c.burst)}
		c.clients[client] = entry
	}
	entry.lastSeen = c.clock
	return entry.limiter.Allow()
}

// evictLeastRecent drops the client seen longest ago. Callers hold c.mu.
func (c *clientLimiter) evictLeastRecent() {
	var oldest string
	var oldestSeen uint64
	first := true
	for client, entry := range c.clients {
		if first || entry.lastSeen < oldestSeen {
			oldest, oldestSeen, first = client, entry.lastSeen, false
		}
	}
	if !first {
		delete(c.clients, oldest)
	}
}

func (c *clientLimiter) middleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddress(r)
		if !c.allow(client) {
			logger.Warn("rate limit exceeded",
				zap.String("op", "server.rateLimit"),
				zap.String("request_id", requestIDFrom(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("client", client),
			)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
