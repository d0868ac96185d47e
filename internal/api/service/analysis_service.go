package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/repository"
	"presscraft/internal/entity"
	"presscraft/internal/factsheet"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"
)

const (
	minDocumentText  = 20
	minPageTextForAI = 50

	sourceLink = "link"
	sourceFile = "file"
)

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, fileName string, data []byte) (string, error)
}

// AnalysisService extracts fact sheets from product pages and documents.
type AnalysisService interface {
	AnalyzeLink(ctx context.Context, url string) (*dto.AnalysisResponse, error)
	AnalyzeFile(ctx context.Context, fileName string, data []byte) (*dto.AnalysisResponse, error)
}

// NewAnalysisService creates a new analysis service. ai may be nil, in which
// case every analysis uses the heuristic parsers.
func NewAnalysisService(ai repository.AIRepository, scraper repository.PageScraper, extractor TextExtractor, log *logger.Logger) AnalysisService {
	return &analysisService{
		ai:        ai,
		scraper:   scraper,
		extractor: extractor,
		logger:    log,
	}
}

type analysisService struct {
	ai        repository.AIRepository
	scraper   repository.PageScraper
	extractor TextExtractor
	logger    *logger.Logger
}

// AnalyzeLink scrapes url and extracts a fact sheet from the page.
func (s *analysisService) AnalyzeLink(ctx context.Context, url string) (*dto.AnalysisResponse, error) {
	page, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		metrics.FactSheetAnalyses.WithLabelValues(sourceLink, "error").Inc()
		return nil, fmt.Errorf("failed to scrape %s: %w", url, err)
	}

	s.logger.Info("Page scraped",
		logger.StringField("url", url),
		logger.IntField("text_length", utf8.RuneCountInString(page.Text)),
		logger.StringField("title", page.Title),
	)

	if page.Text == "" && page.Title == "" {
		metrics.FactSheetAnalyses.WithLabelValues(sourceLink, "error").Inc()
		return nil, ErrPageUnavailable
	}

	if s.ai != nil && (utf8.RuneCountInString(page.Text) > minPageTextForAI || page.Title != "") {
		prompt := factsheet.BuildLinkPrompt(factsheet.BrandHint(url), page.Title, page.Text)
		if fs, ok := s.generate(ctx, prompt); ok {
			metrics.FactSheetAnalyses.WithLabelValues(sourceLink, "llm").Inc()
			return &dto.AnalysisResponse{Success: true, Data: fs, Source: sourceLink}, nil
		}
	}

	s.logger.Warn("LLM unavailable, using page fallback parser", logger.StringField("url", url))
	metrics.FactSheetAnalyses.WithLabelValues(sourceLink, "fallback").Inc()
	return &dto.AnalysisResponse{
		Success:  true,
		Data:     factsheet.Normalize(factsheet.FromPage(page.Text, page.Title, url)),
		Degraded: true,
		Message:  factsheet.AdvisoryLinkFallback,
		Source:   sourceLink,
	}, nil
}

// AnalyzeFile extracts text from an uploaded document and then a fact sheet from the text.
func (s *analysisService) AnalyzeFile(ctx context.Context, fileName string, data []byte) (*dto.AnalysisResponse, error) {
	text, err := s.extractor.Extract(ctx, fileName, data)
	if err != nil {
		metrics.FactSheetAnalyses.WithLabelValues(sourceFile, "error").Inc()
		return nil, err
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minDocumentText {
		metrics.FactSheetAnalyses.WithLabelValues(sourceFile, "insufficient").Inc()
		return nil, ErrInsufficientText
	}

	s.logger.Info("Document text extracted",
		logger.StringField("file_name", fileName),
		logger.IntField("text_length", utf8.RuneCountInString(text)),
	)

	if s.ai != nil {
		if fs, ok := s.generate(ctx, factsheet.BuildFilePrompt(text)); ok {
			metrics.FactSheetAnalyses.WithLabelValues(sourceFile, "llm").Inc()
			return &dto.AnalysisResponse{Success: true, Data: fs, Source: sourceFile}, nil
		}
	}

	s.logger.Warn("LLM unavailable, using document fallback parser", logger.StringField("file_name", fileName))
	metrics.FactSheetAnalyses.WithLabelValues(sourceFile, "fallback").Inc()
	return &dto.AnalysisResponse{
		Success:  true,
		Data:     factsheet.Normalize(factsheet.FromDocument(text, fileName)),
		Degraded: true,
		Message:  factsheet.AdvisoryFileFallback,
		Source:   sourceFile,
	}, nil
}

// generate reports false for any LLM or decoding failure so callers fall back.
func (s *analysisService) generate(ctx context.Context, prompt string) (entity.FactSheet, bool) {
	content, err := s.ai.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("LLM generation failed", logger.StringField("provider", s.ai.Provider()), logger.ErrorField(err))
		return entity.FactSheet{}, false
	}

	fs, err := factsheet.Parse(content)
	if err != nil {
		s.logger.Warn("LLM answer is not valid JSON", logger.ErrorField(err))
		return entity.FactSheet{}, false
	}

	s.logger.Info("Fact sheet extracted by LLM", logger.StringField("product_name", fs.ProductName))
	return factsheet.Normalize(fs), true
}
