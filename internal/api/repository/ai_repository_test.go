package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"presscraft/internal/api/config"
	"presscraft/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallWithFallback_RetriesRateLimitThenSucceeds(t *testing.T) {
	var calls []string
	attempts := 0
	text, err := callWithFallback(context.Background(), []string{"m1", "m2"}, 2, time.Millisecond,
		func(_ context.Context, model string) (string, error) {
			calls = append(calls, model)
			attempts++
			if attempts < 3 {
				return "", errors.New("Error 429, quota exceeded")
			}
			return "ok", nil
		}, logger.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, []string{"m1", "m1", "m1"}, calls)
}

func TestCallWithFallback_MovesToNextModel(t *testing.T) {
	var calls []string
	text, err := callWithFallback(context.Background(), []string{"m1", "m2", "m3"}, 2, time.Millisecond,
		func(_ context.Context, model string) (string, error) {
			calls = append(calls, model)
			switch model {
			case "m1":
				return "", errors.New("404 model not found")
			case "m2":
				return "", errors.New("internal error")
			}
			return "from m3", nil
		}, logger.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "from m3", text)
	assert.Equal(t, []string{"m1", "m2", "m3"}, calls)
}

func TestCallWithFallback_ExhaustedRetriesFallThrough(t *testing.T) {
	var calls []string
	_, err := callWithFallback(context.Background(), []string{"m1", "m2"}, 2, time.Millisecond,
		func(_ context.Context, model string) (string, error) {
			calls = append(calls, model)
			return "", errors.New("429")
		}, logger.NewNop())

	assert.ErrorIs(t, err, ErrNoResult)
	assert.Equal(t, []string{"m1", "m1", "m1", "m2", "m2", "m2"}, calls)
}

func TestCallWithFallback_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, err := callWithFallback(ctx, []string{"m1"}, 2, time.Hour,
		func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("429")
		}, logger.NewNop())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewAIRepository_None(t *testing.T) {
	repo, err := NewAIRepository(context.Background(), &config.Config{AI: config.AI{Provider: "none"}}, logger.NewNop())
	require.NoError(t, err)
	assert.Nil(t, repo)

	_, err = NewAIRepository(context.Background(), &config.Config{AI: config.AI{Provider: "bogus"}}, logger.NewNop())
	assert.Error(t, err)
}
