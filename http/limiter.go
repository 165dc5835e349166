package http

import (
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter hands out one token bucket per host. Buckets are created on
// first use and allow no bursts.
type hostLimiter struct {
	rate rate.Limit

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func newHostLimiter(rps float64) *hostLimiter {
	return &hostLimiter{rate: rate.Limit(rps)}
}

// bucket returns the limiter for host. Hosts compare case-insensitively.
func (h *hostLimiter) bucket(host string) *rate.Limiter {
	host = strings.ToLower(host)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.buckets == nil {
		h.buckets = make(map[string]*rate.Limiter)
	}
	b, ok := h.buckets[host]
	if !ok {
		b = rate.NewLimiter(h.rate, 1)
		h.buckets[host] = b
	}
	return b
}
