package cms

import (
	"context"
	"net/http"
	"time"
)

// RetryDelay returns the inter-attempt delay for the given 1-indexed retry
// attempt: base * 2^(attempt-1). Attempts below 1 are treated as the first.
func RetryDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
	}

	return delay
}

// Backoff is a retryablehttp-compatible backoff strategy applying the
// exponential policy. attemptNum is 0-indexed as retryablehttp calls it, so
// the first retry waits min, the second 2*min, and so on. The delay is capped
// at max when max is positive; no jitter is applied.
func Backoff(min, max time.Duration, attemptNum int, _ *http.Response) time.Duration {
	delay := RetryDelay(min, attemptNum+1)
	if max > 0 && delay > max {
		delay = max
	}

	return delay
}

// CheckRetry is a retryablehttp-compatible retry predicate. Context errors
// abort the sequence; connection-level failures retry; responses retry
// exactly when their status is retryable (429 or 5xx).
func CheckRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp == nil {
		return true, nil
	}

	return IsRetryableStatus(resp.StatusCode), nil
}
