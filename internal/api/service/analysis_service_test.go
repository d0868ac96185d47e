package service

import (
	"context"
	"errors"
	"testing"

	"presscraft/internal/api/repository"
	"presscraft/internal/factsheet"
	"presscraft/pkg/logger"
	"presscraft/pkg/textextract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deskPage = "모션데스크\n전동 모터 적용으로 높이 조절이 가능합니다.\nE0 등급 친환경 소재를 사용했습니다.\n케이블 정리를 위한 수납 트레이가 포함되어 있습니다.\n"

func TestAnalyzeFile_InsufficientText(t *testing.T) {
	ext := &fakeExtractor{texts: map[string]string{"short.txt": "   너무 짧은 글   "}}
	svc := NewAnalysisService(&fakeAI{}, nil, ext, logger.NewNop())

	_, err := svc.AnalyzeFile(context.Background(), "short.txt", nil)
	assert.ErrorIs(t, err, ErrInsufficientText)
}

func TestAnalyzeFile_UsesLLMAnswer(t *testing.T) {
	ai := &fakeAI{answer: "```json\n{\"brandName\":\"데스커\",\"productName\":\"모션데스크\",\"features\":\"없음\",\"launchDate\":2024}\n```"}
	ext := &fakeExtractor{texts: map[string]string{"brief.txt": deskPage}}
	svc := NewAnalysisService(ai, nil, ext, logger.NewNop())

	resp, err := svc.AnalyzeFile(context.Background(), "brief.txt", nil)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.Degraded)
	assert.Empty(t, resp.Message)
	assert.Equal(t, "모션데스크", resp.Data.ProductName)
	assert.Equal(t, "2024", resp.Data.LaunchDate)
	assert.Equal(t, []string{}, resp.Data.Features)
	assert.Equal(t, []string{}, resp.Data.CoreMessages)
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "전동 모터")
}

func TestAnalyzeFile_FallsBackWhenLLMFails(t *testing.T) {
	ext := &fakeExtractor{texts: map[string]string{"brief.txt": deskPage}}

	for name, ai := range map[string]repository.AIRepository{
		"llm error":    &fakeAI{err: repository.ErrNoResult},
		"invalid json": &fakeAI{answer: "sorry, I cannot help"},
		"no provider":  nil,
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewAnalysisService(ai, nil, ext, logger.NewNop())
			resp, err := svc.AnalyzeFile(context.Background(), "brief.txt", nil)
			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.True(t, resp.Degraded)
			assert.Equal(t, factsheet.AdvisoryFileFallback, resp.Message)
			assert.Equal(t, "전동 모터 적용으로 높이 조절이 가능합니다.", resp.Data.ProductName)
			assert.LessOrEqual(t, len(resp.Data.Features), 3)
		})
	}
}

func TestAnalyzeFile_ExtractionError(t *testing.T) {
	ext := &fakeExtractor{errs: map[string]error{"a.hwp": textextract.ErrUnsupportedFormat}}
	svc := NewAnalysisService(nil, nil, ext, logger.NewNop())

	_, err := svc.AnalyzeFile(context.Background(), "a.hwp", nil)
	assert.ErrorIs(t, err, textextract.ErrUnsupportedFormat)
}

func TestAnalyzeLink_EmptyPage(t *testing.T) {
	svc := NewAnalysisService(&fakeAI{}, &fakeScraper{page: &repository.ScrapedPage{}}, nil, logger.NewNop())

	_, err := svc.AnalyzeLink(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrPageUnavailable)
}

func TestAnalyzeLink_ScrapeError(t *testing.T) {
	svc := NewAnalysisService(&fakeAI{}, &fakeScraper{err: errors.New("timeout")}, nil, logger.NewNop())

	_, err := svc.AnalyzeLink(context.Background(), "https://example.com")
	assert.Error(t, err)
}

func TestAnalyzeLink_LLM(t *testing.T) {
	ai := &fakeAI{answer: `{"brandName":"데스커(DESKER)","productName":"모션데스크","features":["전동 모터"],"coreMessages":["몰입"]}`}
	scraper := &fakeScraper{page: &repository.ScrapedPage{Title: "모션데스크 | DESKER", Text: deskPage}}
	svc := NewAnalysisService(ai, scraper, nil, logger.NewNop())

	resp, err := svc.AnalyzeLink(context.Background(), "https://desker.co.kr/product/1")
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	assert.Equal(t, []string{"전동 모터"}, resp.Data.Features)
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "브랜드 힌트: 데스커(DESKER)")
}

func TestAnalyzeLink_FallbackParser(t *testing.T) {
	ai := &fakeAI{answer: "not json"}
	scraper := &fakeScraper{page: &repository.ScrapedPage{Title: "모션데스크 | DESKER", Text: deskPage}}
	svc := NewAnalysisService(ai, scraper, nil, logger.NewNop())

	resp, err := svc.AnalyzeLink(context.Background(), "https://desker.co.kr/product/1")
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, factsheet.AdvisoryLinkFallback, resp.Message)
	assert.Equal(t, "데스커(DESKER)", resp.Data.BrandName)
	assert.Equal(t, "모션데스크", resp.Data.ProductName)
	assert.NotEmpty(t, resp.Data.Features)
}

func TestAnalyzeLink_ShortTextWithoutTitleSkipsLLM(t *testing.T) {
	ai := &fakeAI{answer: `{"productName":"x"}`}
	scraper := &fakeScraper{page: &repository.ScrapedPage{Text: "짧은 페이지"}}
	svc := NewAnalysisService(ai, scraper, nil, logger.NewNop())

	resp, err := svc.AnalyzeLink(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, ai.prompts)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "상품 정보 없음", resp.Data.ProductName)
}
