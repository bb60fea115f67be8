// Package verify implements bounded retry around a fetch closure to
// absorb the read-after-write lag between a successful write and the
// object becoming visible on subsequent reads (C7).
package verify

import (
	"context"
	"time"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/internal/logging"
)

// Policy controls whether a builder's write is followed by verification.
type Policy int

const (
	// PolicyDefault uses the caller-provided Config if one was attached
	// to the builder, otherwise performs no verification.
	PolicyDefault Policy = iota
	// PolicyEnabled always verifies, filling in Config defaults for any
	// zero fields.
	PolicyEnabled
	// PolicyDisabled never verifies, regardless of a configured Config.
	PolicyDisabled
)

// Config parameterizes the retry loop.
type Config struct {
	Timeout      time.Duration
	InitialDelay time.Duration
	MaxDelay     time.Duration
	MaxAttempts  int
}

// DefaultConfig returns sensible defaults: 3s timeout, 50ms initial
// delay, 300ms max delay, 10 max attempts.
func DefaultConfig() Config {
	return Config{
		Timeout:      3 * time.Second,
		InitialDelay: 50 * time.Millisecond,
		MaxDelay:     300 * time.Millisecond,
		MaxAttempts:  10,
	}
}

// withDefaults fills any zero field of cfg from DefaultConfig.
func withDefaults(cfg Config) Config {
	d := DefaultConfig()
	if cfg.Timeout == 0 {
		cfg.Timeout = d.Timeout
	}
	if cfg.InitialDelay == 0 {
		cfg.InitialDelay = d.InitialDelay
	}
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = d.MaxDelay
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = d.MaxAttempts
	}
	return cfg
}

// Fetch is the operation verification retries; typically a repository's
// Get by id or key.
type Fetch func(ctx context.Context) error

// Do runs a bounded sleep-fetch-classify retry loop:
//  1. sleep InitialDelay
//  2. call fetch; return nil on success
//  3. classify the error; propagate immediately if not retryable
//  4. if attempts or elapsed time are exhausted, return VerifyTimeout
//  5. sleep min(prev*2, MaxDelay) and continue
//
// objType/key are carried through only for the VerifyTimeout error.
func Do(ctx context.Context, objType, key string, cfg Config, fetch Fetch) error {
	cfg = withDefaults(cfg)

	start := time.Now()
	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 1; ; attempt++ {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}

		lastErr = fetch(ctx)
		if lastErr == nil {
			logging.Log.WithFields(map[string]any{
				"obj_type": objType, "key": key, "attempts": attempt,
			}).Debug("verify: resolved")
			return nil
		}

		if !errs.Retryable(lastErr) {
			return lastErr
		}

		elapsed := time.Since(start)
		if attempt >= cfg.MaxAttempts || elapsed >= cfg.Timeout {
			return errs.VerifyTimeout(objType, key, attempt, cfg.Timeout, lastErr)
		}

		delay = nextDelay(delay, cfg.MaxDelay)
	}
}

// nextDelay doubles delay, capped at maxDelay: a plain min(prev*2,
// max_delay) curve, deliberately not the jittered variant package
// chatstream uses for its longer-lived reconnect loop, since verify's
// short read-after-write window has no other caller to desynchronize
// against.
func nextDelay(prev, max time.Duration) time.Duration {
	next := prev * 2
	if next > max {
		return max
	}
	return next
}
