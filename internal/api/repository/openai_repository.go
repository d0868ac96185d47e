package repository

import (
	"context"
	"fmt"

	"presscraft/internal/api/config"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openaiRepository struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// NewOpenAIRepository creates an AIRepository backed by the OpenAI chat completions API.
// A custom BaseURL allows OpenAI-compatible gateways.
func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) *openaiRepository {
	opts := []option.RequestOption{option.WithAPIKey(cfg.OpenAI.APIKey)}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	client := openai.NewClient(opts...)

	model := cfg.OpenAI.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &openaiRepository{client: &client, model: model, logger: log}
}

func (r *openaiRepository) Provider() string {
	return "openai"
}

func (r *openaiRepository) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		metrics.LLMRequests.WithLabelValues(r.Provider(), r.model, "error").Inc()
		r.logger.Error("OpenAI request failed", logger.StringField("model", r.model), logger.ErrorField(err))
		return "", fmt.Errorf("openai %s: %w", r.model, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		metrics.LLMRequests.WithLabelValues(r.Provider(), r.model, "empty").Inc()
		return "", ErrNoResult
	}

	metrics.LLMRequests.WithLabelValues(r.Provider(), r.model, "success").Inc()
	return resp.Choices[0].Message.Content, nil
}
