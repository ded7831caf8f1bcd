package llm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// AttemptFunc runs one backend call. attempt starts at 1.
type AttemptFunc func(ctx context.Context, attempt int) (string, error)

// WithRetry runs fn up to maxAttempts times with a linear backoff of
// attempt × baseDelay between tries. Auth failures and context
// cancellation abort immediately. Exhausting the budget on retryable
// errors returns ok=false with a nil error so the caller can fall back.
func WithRetry(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn AttemptFunc) (string, bool, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		out, err := fn(ctx, attempt)
		if err == nil {
			return out, true, nil
		}

		var authErr *AuthError
		if errors.As(err, &authErr) {
			return "", false, err
		}

		log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", maxAttempts).
			Msg("backend call failed")

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(time.Duration(attempt) * baseDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return "", false, ctx.Err()
		}
	}

	return "", false, nil
}
