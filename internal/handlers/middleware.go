package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// principalKey is where the auth gate stores the verified identity.
const principalKey = "principal"

// authMiddleware is the auth gate: it admits requests carrying a valid
// bearer token and attaches the principal to the request context.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	// Invalid and expired tokens collapse into one response on purpose.
	principal, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(principalKey, principal)
	c.Next()
}

// requireRoles only admits principals whose role is in the allow list.
// Must run after authMiddleware.
func (h *Handler) requireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		p, ok := getPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing authentication",
			})
			return
		}
		if _, ok := allowed[p.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient role",
			})
			return
		}
		c.Next()
	}
}

// getPrincipal reads the identity set by the auth gate.
func getPrincipal(c *gin.Context) (service.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return service.Principal{}, false
	}
	p, ok := v.(service.Principal)
	return p, ok
}

// Login throttling: token bucket per client IP.
const (
	loginRatePerSecond = 1
	loginBurst         = 5
	loginBucketTTL     = 5 * time.Minute
	loginSweepEvery    = time.Minute
)

type loginBucket struct {
	lim *rate.Limiter
	ts  time.Time
}

// loginLimiter throttles login attempts per client IP. Stale buckets are
// swept lazily on request, so there is no background goroutine to stop.
type loginLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*loginBucket
	lastSweep time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		buckets:   make(map[string]*loginBucket),
		lastSweep: time.Now(),
	}
}

func (l *loginLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= loginSweepEvery {
		l.sweepLocked(now)
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &loginBucket{lim: rate.NewLimiter(rate.Limit(loginRatePerSecond), loginBurst)}
		l.buckets[ip] = b
	}
	b.ts = now
	return b.lim.Allow()
}

// sweepLocked drops buckets idle past their TTL. Caller holds l.mu.
func (l *loginLimiter) sweepLocked(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.ts) > loginBucketTTL {
			delete(l.buckets, k)
		}
	}
	l.lastSweep = now
}

func (l *loginLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.allow(ip, time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
