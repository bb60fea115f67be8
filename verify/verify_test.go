package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anytype-sdk/anytype-go/errs"
)

func TestDo_SucceedsOnFirstTry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), "object", "X", Config{InitialDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_AlwaysNotFoundProducesExactlyMaxAttempts(t *testing.T) {
	cfg := Config{
		Timeout:      time.Second,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		MaxAttempts:  5,
	}
	calls := 0
	err := Do(context.Background(), "object", "X", cfg, func(ctx context.Context) error {
		calls++
		return errs.NotFound("object", "X")
	})
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindVerifyTimeout, e.Kind)
	assert.Equal(t, 5, e.Attempts)
	assert.Equal(t, 5, calls)
}

func TestDo_NonRetryableErrorPropagatesImmediately(t *testing.T) {
	boom := errs.Validation("bad request")
	calls := 0
	err := Do(context.Background(), "object", "X", Config{InitialDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return boom
	})
	assert.Same(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesOn5xxThenSucceeds(t *testing.T) {
	calls := 0
	err := Do(context.Background(), "object", "X", Config{InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errs.APIError(503, "unavailable")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_4xxAPIErrorIsNotRetryable(t *testing.T) {
	calls := 0
	err := Do(context.Background(), "object", "X", Config{InitialDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return errs.APIError(400, "bad")
	})
	require.Error(t, err)
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindAPIError, e.Kind)
	assert.Equal(t, 1, calls)
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, "object", "X", Config{InitialDelay: time.Hour}, func(ctx context.Context) error {
		t.Fatal("fetch must not be called once the context is already done")
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_UnwrappedErrorIsNotRetryable(t *testing.T) {
	cfg := Config{
		Timeout:      20 * time.Millisecond,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		MaxAttempts:  1000,
	}
	calls := 0
	err := Do(context.Background(), "object", "X", cfg, func(ctx context.Context) error {
		calls++
		return errors.New("a plain error, not wrapped in *errs.Error")
	})
	require.Error(t, err)
	// Retryable only recognizes *errs.Error kinds, so a plain error
	// propagates on the first attempt rather than timing out.
	_, ok := errs.As(err)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}
