package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"presscraft/internal/api/config"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"
	"presscraft/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

var defaultGeminiModels = []string{"gemini-2.0-flash", "gemini-1.5-flash", "gemini-pro"}

const defaultRetryBaseDelay = 15 * time.Second

// geminiAIRepository is an implementation of AIRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg            config.Gemini
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (*geminiAIRepository, error) {
	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	gcfg := cfg.Gemini
	if len(gcfg.Models) == 0 {
		gcfg.Models = defaultGeminiModels
	}
	if gcfg.RetryBaseDelay <= 0 {
		gcfg.RetryBaseDelay = defaultRetryBaseDelay
	}
	rpm := gcfg.MaxRequestPerMinute
	if rpm <= 0 {
		rpm = 15
	}

	return &geminiAIRepository{
		cfg:            gcfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
		tokenLimiter:   ratelimit.NewTokenLimiter(gcfg.MaxTokenPerMinute),
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) Provider() string {
	return "gemini"
}

// GenerateContent runs prompt against each configured model until one answers.
func (r *geminiAIRepository) GenerateContent(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return callWithFallback(ctx, r.cfg.Models, r.cfg.MaxRetries, r.cfg.RetryBaseDelay, func(ctx context.Context, model string) (string, error) {
		return r.generate(ctx, model, contents)
	}, r.logger)
}

// Recognize reads the text of an image with a multimodal Gemini model.
func (r *geminiAIRepository) Recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText("이 이미지에 포함된 모든 텍스트를 원문 그대로 추출해 주세요. 설명 없이 텍스트만 출력하세요."),
		genai.NewPartFromBytes(data, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return callWithFallback(ctx, r.cfg.Models, r.cfg.MaxRetries, r.cfg.RetryBaseDelay, func(ctx context.Context, model string) (string, error) {
		return r.generate(ctx, model, contents)
	}, r.logger)
}

func (r *geminiAIRepository) generate(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	tokenResp, err := r.genAiClient.Models.CountTokens(ctx, model, contents, nil)
	if err != nil {
		metrics.LLMRequests.WithLabelValues(r.Provider(), model, "error").Inc()
		return "", fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.StringField("model", model),
		logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)

	if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		metrics.LLMRequests.WithLabelValues(r.Provider(), model, "error").Inc()
		return "", fmt.Errorf("gemini %s: %w", model, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		metrics.LLMRequests.WithLabelValues(r.Provider(), model, "empty").Inc()
		return "", fmt.Errorf("gemini %s: no content in response", model)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	metrics.LLMRequests.WithLabelValues(r.Provider(), model, "success").Inc()
	return sb.String(), nil
}
