package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/repository"
	"presscraft/internal/coverage"
	"presscraft/internal/reportmeta"
	"presscraft/pkg/logger"
	"presscraft/pkg/textextract"
)

const defaultCoverageDays = 30

// UploadedFile is one file of a multipart upload.
type UploadedFile struct {
	Name string
	Data []byte
}

// ReportService derives performance report metadata and coverage rollups.
type ReportService interface {
	ExtractMetadata(ctx context.Context, files []UploadedFile) *dto.BulkMetadataResponse
	Coverage(ctx context.Context, from, to string) (*coverage.Rollup, error)
}

// NewReportService creates a new report service.
func NewReportService(eventRepo repository.EventRepository, extractor TextExtractor, meta *reportmeta.Extractor, loc *time.Location, log *logger.Logger) ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &reportService{
		eventRepo: eventRepo,
		extractor: extractor,
		meta:      meta,
		loc:       loc,
		now:       time.Now,
		logger:    log,
	}
}

type reportService struct {
	eventRepo repository.EventRepository
	extractor TextExtractor
	meta      *reportmeta.Extractor
	loc       *time.Location
	now       func() time.Time
	logger    *logger.Logger
}

// ExtractMetadata processes files one after another in upload order. A file
// whose format is unsupported is reported individually and does not stop the batch.
func (s *reportService) ExtractMetadata(ctx context.Context, files []UploadedFile) *dto.BulkMetadataResponse {
	results := make([]dto.ReportMetadataResult, 0, len(files))
	for _, f := range files {
		text, err := s.extractor.Extract(ctx, f.Name, f.Data)
		if err != nil {
			if errors.Is(err, textextract.ErrUnsupportedFormat) {
				results = append(results, dto.ReportMetadataResult{FileName: f.Name, Error: err.Error()})
				continue
			}
			s.logger.Warn("Failed to read report, using file name only",
				logger.StringField("file_name", f.Name),
				logger.ErrorField(err),
			)
			text = ""
		}

		meta := s.meta.Extract(f.Name, text)
		results = append(results, dto.ReportMetadataResult{FileName: f.Name, Metadata: &meta})
	}

	s.logger.Info("Report metadata extracted", logger.IntField("files", len(files)))
	return &dto.BulkMetadataResponse{Results: results}
}

// Coverage rolls up event article counts over [from, to]. Missing bounds
// default to the last 30 days.
func (s *reportService) Coverage(ctx context.Context, from, to string) (*coverage.Rollup, error) {
	start, end := coverage.Window(s.now(), defaultCoverageDays, s.loc)
	var err error
	if from != "" {
		if start, err = time.ParseInLocation(dateLayout, from, s.loc); err != nil {
			return nil, fmt.Errorf("%w: from must use YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if to != "" {
		if end, err = time.ParseInLocation(dateLayout, to, s.loc); err != nil {
			return nil, fmt.Errorf("%w: to must use YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	events, err := s.eventRepo.FindAll(ctx, repository.EventFilter{From: start, To: end})
	if err != nil {
		return nil, err
	}

	rollup := coverage.BuildRollup(events, start, end)
	return &rollup, nil
}
