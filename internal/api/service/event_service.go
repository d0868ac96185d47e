package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/repository"
	"presscraft/internal/entity"
	"presscraft/internal/reportmeta"
	"presscraft/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// EventService manages the PR calendar.
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error)
	GetEventByID(ctx context.Context, id uint) (*dto.EventResponse, error)
	GetAllEvents(ctx context.Context, from, to string) ([]*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, id uint, req *dto.EventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, id uint) error
	AttachPerformanceFile(ctx context.Context, id uint, fileName string, data []byte) (*dto.EventResponse, error)
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository, extractor TextExtractor, meta *reportmeta.Extractor, loc *time.Location, log *logger.Logger) EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &eventService{
		eventRepo: eventRepo,
		extractor: extractor,
		meta:      meta,
		loc:       loc,
		logger:    log,
	}
}

type eventService struct {
	eventRepo repository.EventRepository
	extractor TextExtractor
	meta      *reportmeta.Extractor
	loc       *time.Location
	logger    *logger.Logger
}

// CreateEvent validates and stores a new calendar event.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	event := &entity.PREvent{}
	if err := s.apply(event, req); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		s.logger.Error("Failed to create event", logger.ErrorField(err))
		return nil, err
	}
	s.logger.Info("Event created", logger.Field("event_id", event.ID))
	return s.mapToEventResponse(event), nil
}

// GetEventByID retrieves an event by its ID.
func (s *eventService) GetEventByID(ctx context.Context, id uint) (*dto.EventResponse, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapToEventResponse(event), nil
}

// GetAllEvents lists events, optionally restricted to an inclusive YYYY-MM-DD range.
func (s *eventService) GetAllEvents(ctx context.Context, from, to string) ([]*dto.EventResponse, error) {
	var filter repository.EventFilter
	var err error
	if from != "" {
		if filter.From, err = s.parseDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if filter.To, err = s.parseDate(to); err != nil {
			return nil, err
		}
	}

	events, err := s.eventRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, s.mapToEventResponse(&events[i]))
	}
	return responses, nil
}

// UpdateEvent replaces the editable fields of an event.
func (s *eventService) UpdateEvent(ctx context.Context, id uint, req *dto.EventRequest) (*dto.EventResponse, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(event, req); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		s.logger.Error("Failed to update event", logger.ErrorField(err), logger.Field("event_id", id))
		return nil, err
	}
	return s.mapToEventResponse(event), nil
}

// DeleteEvent deletes an event by its ID.
func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		s.logger.Error("Failed to delete event", logger.ErrorField(err), logger.Field("event_id", id))
		return err
	}
	s.logger.Info("Event deleted successfully", logger.Field("event_id", id))
	return nil
}

// AttachPerformanceFile derives report metadata from an uploaded performance
// report and stores it on the event together with its article count. When the
// file body cannot be read the metadata still comes from the file name.
func (s *eventService) AttachPerformanceFile(ctx context.Context, id uint, fileName string, data []byte) (*dto.EventResponse, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.Extract(ctx, fileName, data)
	if err != nil {
		s.logger.Warn("Failed to read performance file, using file name only",
			logger.StringField("file_name", fileName),
			logger.ErrorField(err),
		)
		text = ""
	}

	file := entity.PerformanceFile{FileName: fileName, Metadata: s.meta.Extract(fileName, text)}
	raw, err := json.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal performance file: %w", err)
	}

	event.PerformanceFile = datatypes.JSON(raw)
	event.ArticleCount = file.Metadata.ArticleCount
	if err := s.eventRepo.Save(ctx, event); err != nil {
		s.logger.Error("Failed to store performance file", logger.ErrorField(err), logger.Field("event_id", id))
		return nil, err
	}

	s.logger.Info("Performance file attached",
		logger.Field("event_id", id),
		logger.StringField("extracted_date", file.Metadata.ExtractedDate),
		logger.IntField("article_count", file.Metadata.ArticleCount),
	)
	return s.mapToEventResponse(event), nil
}

func (s *eventService) find(ctx context.Context, id uint) (*entity.PREvent, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) apply(event *entity.PREvent, req *dto.EventRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	date, err := s.parseDate(req.Date)
	if err != nil {
		return err
	}

	status := req.Status
	switch status {
	case "":
		status = entity.EventStatusScheduled
	case entity.EventStatusScheduled, entity.EventStatusDraft, entity.EventStatusPublished:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	event.Title = title
	event.Date = date
	event.Status = status
	event.Type = req.Type
	event.Content = req.Content
	event.Keywords = req.Keywords
	if req.ArticleCount != nil {
		if *req.ArticleCount < 0 {
			return fmt.Errorf("%w: articleCount must not be negative", ErrInvalidInput)
		}
		event.ArticleCount = *req.ArticleCount
	}
	return nil
}

func (s *eventService) parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must use YYYY-MM-DD, got %q", ErrInvalidInput, value)
	}
	return t, nil
}

func (s *eventService) mapToEventResponse(event *entity.PREvent) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Date:         event.Date.In(s.loc).Format(dateLayout),
		Status:       event.Status,
		Type:         event.Type,
		Content:      event.Content,
		ArticleCount: event.ArticleCount,
		Keywords:     []string(event.Keywords),
		CreatedAt:    event.CreatedAt,
		UpdatedAt:    event.UpdatedAt,
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	if len(event.PerformanceFile) > 0 {
		var file entity.PerformanceFile
		if err := json.Unmarshal(event.PerformanceFile, &file); err == nil {
			resp.PerformanceFile = &file
		}
	}
	return resp
}
