package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoWithResult_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	v, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 42, nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	v, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("still broken")
	}, fastConfig())

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_PermanentErrorStopsRetries(t *testing.T) {
	calls := 0
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, NewPermanent(errors.New("bad input"))
	}, fastConfig())

	require.Error(t, err)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_RetryIfPredicate(t *testing.T) {
	cfg := fastConfig()
	cfg.RetryIf = func(err error) bool { return false }

	calls := 0
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("not retryable")
	}, cfg)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DoWithResult(ctx, func() (int, error) {
		return 0, errors.New("transient")
	}, fastConfig())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_WrapsErrorOnlyFunc(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPermanent_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewPermanent(inner)
	assert.ErrorIs(t, err, inner)
	assert.Nil(t, NewPermanent(nil))
}
