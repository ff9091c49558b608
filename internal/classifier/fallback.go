package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"docforensics/internal/logging"
	"docforensics/internal/port"
)

// circuitState tracks rate-limit backoff for a single classifier.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackClassifier tries classifiers in order, skipping those with open circuits.
// It implements port.DocumentClassifier.
type FallbackClassifier struct {
	classifiers []port.DocumentClassifier
	circuits    []*circuitState
	names       []string
	now         func() time.Time
	log         *slog.Logger
}

// NewFallbackClassifier creates a FallbackClassifier from an ordered list of classifiers and their names.
func NewFallbackClassifier(classifiers []port.DocumentClassifier, names []string) *FallbackClassifier {
	circuits := make([]*circuitState, len(classifiers))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackClassifier{
		classifiers: classifiers,
		circuits:    circuits,
		names:       names,
		now:         time.Now,
		log:         logging.New("classifier.fallback"),
	}
}

func (f *FallbackClassifier) Classify(ctx context.Context, input port.ClassifyInput) (*port.ClassifyOutput, error) {
	now := f.now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, c := range f.classifiers {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			f.log.Warn("skipping classifier, circuit open", "provider", f.names[i], "reset_at", resetAt.Format(time.RFC3339))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		out, err := c.Classify(ctx, input)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		f.log.Warn("classifier failed", "provider", f.names[i], "error", err)
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	// Either every classifier was skipped or every one answered 429.
	if lastErr == nil || allRateLimited {
		retryAfter := earliestReset.Sub(f.now())
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return nil, NewRateLimitError("all", fmt.Errorf("all classifiers rate limited"), int(retryAfter.Seconds()))
	}

	return nil, fmt.Errorf("all classifiers failed: %w", lastErr)
}
