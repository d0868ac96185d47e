package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"presscraft/internal/api/config"
	"presscraft/pkg/logger"
)

// ErrNoResult is returned when every configured model failed.
var ErrNoResult = errors.New("no model returned a result")

// AIRepository generates text from a prompt with a hosted LLM.
type AIRepository interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// NewAIRepository builds the repository selected by cfg.AI.Provider.
// It returns nil without error when the provider is "none" or empty.
func NewAIRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	switch strings.ToLower(cfg.AI.Provider) {
	case "", "none":
		return nil, nil
	case "gemini":
		repo, err := NewGeminiAIRepository(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "openai":
		return NewOpenAIRepository(cfg, log), nil
	case "anthropic":
		return NewAnthropicRepository(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AI.Provider)
	}
}

type modelCall func(ctx context.Context, model string) (string, error)

// callWithFallback tries each model in order. A rate-limit error (429) is
// retried on the same model up to maxRetries times, waiting
// baseDelay*(attempt+1) in between; any other error moves on to the next model.
func callWithFallback(ctx context.Context, models []string, maxRetries int, baseDelay time.Duration, call modelCall, log *logger.Logger) (string, error) {
	for _, model := range models {
		for attempt := 0; ; attempt++ {
			text, err := call(ctx, model)
			if err == nil {
				return text, nil
			}

			if strings.Contains(err.Error(), "429") && attempt < maxRetries {
				delay := baseDelay * time.Duration(attempt+1)
				log.Warn("Model rate limited, retrying",
					logger.StringField("model", model),
					logger.IntField("attempt", attempt+1),
					logger.Field("delay", delay.String()),
				)
				timer := time.NewTimer(delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return "", ctx.Err()
				case <-timer.C:
				}
				continue
			}

			log.Warn("Model failed, trying next", logger.StringField("model", model), logger.ErrorField(err))
			break
		}
	}
	return "", ErrNoResult
}
