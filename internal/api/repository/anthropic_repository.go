package repository

import (
	"context"
	"fmt"
	"strings"

	"presscraft/internal/api/config"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicRepository struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	logger    *logger.Logger
}

// NewAnthropicRepository creates an AIRepository backed by the Anthropic Messages API.
func NewAnthropicRepository(cfg *config.Config, log *logger.Logger) *anthropicRepository {
	client := anthropic.NewClient(option.WithAPIKey(cfg.Anthropic.APIKey))

	model := cfg.Anthropic.Model
	if model == "" {
		model = "claude-3-5-haiku-latest"
	}
	maxTokens := cfg.Anthropic.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	return &anthropicRepository{client: &client, model: model, maxTokens: maxTokens, logger: log}
}

func (r *anthropicRepository) Provider() string {
	return "anthropic"
}

func (r *anthropicRepository) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: r.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		metrics.LLMRequests.WithLabelValues(r.Provider(), r.model, "error").Inc()
		r.logger.Error("Anthropic request failed", logger.StringField("model", r.model), logger.ErrorField(err))
		return "", fmt.Errorf("anthropic %s: %w", r.model, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		metrics.LLMRequests.WithLabelValues(r.Provider(), r.model, "empty").Inc()
		return "", ErrNoResult
	}

	metrics.LLMRequests.WithLabelValues(r.Provider(), r.model, "success").Inc()
	return sb.String(), nil
}
