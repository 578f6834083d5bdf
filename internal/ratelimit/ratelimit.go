package ratelimit

import (
	"log/slog"
	"sync"
	"time"
)

var _ Limiter = (*LimiterImpl)(nil)

// Limiter gates outbound calls to quota-limited sources. Allow never returns an
// error: false means "use the fallback path", not a fault.
type Limiter interface {
	Allow(source string) bool
}

type budget struct {
	callsMade     int
	windowResetAt time.Time
}

// LimiterImpl tracks a fixed-window call budget per source name. The window is
// reset lazily on the first Allow after expiry.
type LimiterImpl struct {
	logger  *slog.Logger
	window  time.Duration
	quotas  map[string]int
	mu      sync.Mutex
	budgets map[string]*budget
	now     func() time.Time
}

func NewLimiter(quotas map[string]int, window time.Duration, logger *slog.Logger) *LimiterImpl {
	if window <= 0 {
		window = time.Hour
	}
	return &LimiterImpl{
		logger:  logger,
		window:  window,
		quotas:  quotas,
		budgets: make(map[string]*budget),
		now:     time.Now,
	}
}

func (l *LimiterImpl) Allow(source string) bool {
	quota, ok := l.quotas[source]
	if !ok || quota <= 0 {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.budgets[source]
	if !ok {
		b = &budget{windowResetAt: now.Add(l.window)}
		l.budgets[source] = b
	}

	if now.After(b.windowResetAt) {
		b.callsMade = 0
		b.windowResetAt = b.windowResetAt.Add(l.window)
		// A long idle gap can leave the reset point still in the past.
		if now.After(b.windowResetAt) {
			b.windowResetAt = now.Add(l.window)
		}
	}

	if b.callsMade >= quota {
		l.logger.Warn("source quota exhausted",
			slog.String("source", source),
			slog.Int("quota", quota),
			slog.Time("window_reset_at", b.windowResetAt))
		return false
	}
	b.callsMade++
	return true
}
