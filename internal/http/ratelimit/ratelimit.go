package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Registry hands out one token-bucket limiter per client IP.
type Registry struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
}

func NewRegistry(rps float64, burst int) *Registry {
	return &Registry{
		visitors: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Visitor returns the limiter for an IP, creating one on first sight.
func (g *Registry) Visitor(ip string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(g.rps, g.burst)
		g.visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartCleanupLoop evicts limiters for IPs idle longer than five
// minutes. Run in its own goroutine.
func (g *Registry) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		g.mu.Lock()
		for ip, v := range g.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(g.visitors, ip)
			}
		}
		g.mu.Unlock()
	}
}
