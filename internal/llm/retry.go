package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
)

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// RetryProvider re-issues calls whose failure may clear on a second try.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

type verdict int

const (
	giveUp verdict = iota
	retryOnce
	retryWithBackoff
)

func classify(err error) verdict {
	var (
		unavailable *ErrProviderUnavailable
		truncated   *ErrMaxTokensExceeded
		invalid     *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return giveUp
	case errors.As(err, &unavailable) && unavailable.Misconfigured:
		return giveUp
	case errors.As(err, &truncated):
		return giveUp
	case errors.As(err, &invalid):
		// a malformed reply gets one more chance, no more
		return retryOnce
	}
	return retryWithBackoff
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	reissuedInvalid := false

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case giveUp:
			return nil, err
		case retryOnce:
			if reissuedInvalid {
				return nil, err
			}
			reissuedInvalid = true
		}
		if attempt >= r.config.MaxAttempts {
			return nil, err
		}

		wait := r.delay(attempt, err)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < wait {
			// the caller would time out before the next attempt starts
			return nil, err
		}
		log.Debug().Err(err).
			Str("purpose", PurposeFrom(ctx)).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("llm_retry")

		if err := pause(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// delay is the pause after the given 1-based attempt. A rate limit with a
// Retry-After wins; otherwise the wait grows geometrically up to MaxWait and
// half of it is randomized.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	step := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt-1))
	ceiling := time.Duration(math.Min(step, float64(r.config.MaxWait)))
	if ceiling <= 0 {
		return 0
	}
	half := ceiling / 2
	return half + time.Duration(rand.Int64N(int64(ceiling-half)+1))
}

func pause(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
