package errs

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, 0},
		{"unauthorized", New(KindUnauthorized, "nope"), 2},
		{"no keystore", New(KindNoKeyStore, "nope"), 2},
		{"keystore failure", New(KindKeyStore, "nope"), 2},
		{"auth failure", New(KindAuth, "nope"), 2},
		{"not found", NotFound("object", "X"), 1},
		{"validation", Validation("bad"), 1},
		{"api error", APIError(500, "boom"), 1},
		{"unclassified error", errors.New("plain"), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(NotFound("object", "X")))
	assert.True(t, Retryable(Wrap(KindHTTP, "conn refused", nil)))
	assert.True(t, Retryable(New(KindTooManyRetries, "")))
	assert.True(t, Retryable(APIError(500, "boom")))
	assert.True(t, Retryable(APIError(503, "boom")))
	assert.False(t, Retryable(APIError(404, "boom")))
	assert.False(t, Retryable(APIError(400, "boom")))
	assert.False(t, Retryable(Validation("bad")))
	assert.False(t, Retryable(errors.New("plain, unclassified")))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(KindHTTP, "rest request failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestAs_MatchesWrappedError(t *testing.T) {
	inner := NotFound("space", "S1")
	wrapped := fmt.Errorf("listing spaces: %w", inner)

	e, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, e.Kind)
}

func TestVerifyTimeout_Fields(t *testing.T) {
	last := NotFound("object", "X")
	err := VerifyTimeout("object", "X", 10, 3*time.Second, last)
	assert.Equal(t, KindVerifyTimeout, err.Kind)
	assert.Equal(t, 10, err.Attempts)
	assert.Equal(t, 3*time.Second, err.Timeout)
	assert.Same(t, last, err.LastErr)
	assert.Contains(t, err.Error(), "object")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "other", Kind(999).String())
}
