package service

import (
	"context"
	"errors"
	"fmt"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/repository"
	"presscraft/internal/entity"
	"presscraft/internal/pressrelease"
	"presscraft/pkg/logger"
	"presscraft/pkg/metrics"

	"gorm.io/gorm"
)

// DraftService renders press release drafts and benefit sentences.
type DraftService interface {
	GenerateDraft(ctx context.Context, req *dto.GenerateDraftRequest) (*dto.GenerateDraftResponse, error)
	MapStories(req *dto.MapStoriesRequest) *dto.MapStoriesResponse
}

// NewDraftService creates a new draft service.
func NewDraftService(eventRepo repository.EventRepository, log *logger.Logger) DraftService {
	return &draftService{
		eventRepo: eventRepo,
		logger:    log,
	}
}

type draftService struct {
	eventRepo repository.EventRepository
	logger    *logger.Logger
}

// GenerateDraft renders the draft and, when an event is referenced, stores it as
// the event content and marks the event as a draft.
func (s *draftService) GenerateDraft(ctx context.Context, req *dto.GenerateDraftRequest) (*dto.GenerateDraftResponse, error) {
	prType := entity.ParsePrType(string(req.FactSheet.PrType))
	draft := pressrelease.GenerateDraft(req.FactSheet, req.Specs)
	stories := pressrelease.MapSpecToStory(req.Specs)
	metrics.DraftsGenerated.WithLabelValues(string(prType)).Inc()

	if req.EventID != nil {
		event, err := s.eventRepo.FindByID(ctx, *req.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, fmt.Errorf("failed to load event: %w", err)
		}

		event.Content = draft
		if event.Type == "" {
			event.Type = string(prType)
		}
		if event.Status == entity.EventStatusScheduled || event.Status == "" {
			event.Status = entity.EventStatusDraft
		}
		if err := s.eventRepo.Save(ctx, event); err != nil {
			s.logger.Error("Failed to store draft on event", logger.ErrorField(err), logger.Field("event_id", event.ID))
			return nil, fmt.Errorf("failed to store draft: %w", err)
		}
		s.logger.Info("Draft stored on event", logger.Field("event_id", event.ID), logger.StringField("pr_type", string(prType)))
	}

	return &dto.GenerateDraftResponse{
		PrType:  prType,
		Draft:   draft,
		Stories: stories,
		EventID: req.EventID,
	}, nil
}

// MapStories converts specifications into benefit sentences.
func (s *draftService) MapStories(req *dto.MapStoriesRequest) *dto.MapStoriesResponse {
	return &dto.MapStoriesResponse{Stories: pressrelease.MapSpecToStory(req.Specs)}
}
