package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/repository"
	"presscraft/internal/entity"
	"presscraft/pkg/logger"
	"presscraft/pkg/newssearch"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	defaultLookbackDays = 7
	maxRunHistory       = 50
)

// cronParser accepts five-field expressions and descriptors such as @daily.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// SubscriptionService manages clipping subscriptions and exposes their run history.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req *dto.SubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscriptionByID(ctx context.Context, id uint) (*dto.SubscriptionResponse, error)
	GetAllSubscriptions(ctx context.Context) ([]*dto.SubscriptionResponse, error)
	UpdateSubscription(ctx context.Context, id uint, req *dto.SubscriptionRequest) (*dto.SubscriptionResponse, error)
	DeleteSubscription(ctx context.Context, id uint) error
	GetRuns(ctx context.Context, id uint) ([]*dto.RunResponse, error)
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subRepo repository.SubscriptionRepository, runRepo repository.ClippingRunRepository, log *logger.Logger) SubscriptionService {
	return &subscriptionService{
		subRepo: subRepo,
		runRepo: runRepo,
		now:     time.Now,
		logger:  log,
	}
}

type subscriptionService struct {
	subRepo repository.SubscriptionRepository
	runRepo repository.ClippingRunRepository
	now     func() time.Time
	logger  *logger.Logger
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req *dto.SubscriptionRequest) (*dto.SubscriptionResponse, error) {
	sub := &entity.ClippingSubscription{IsActive: true}
	if err := s.apply(sub, req); err != nil {
		return nil, err
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		s.logger.Error("Failed to create subscription", logger.ErrorField(err))
		return nil, err
	}
	s.logger.Info("Subscription created", logger.Field("subscription_id", sub.ID), logger.StringField("type", string(sub.Type)))
	return mapToSubscriptionResponse(sub), nil
}

func (s *subscriptionService) GetSubscriptionByID(ctx context.Context, id uint) (*dto.SubscriptionResponse, error) {
	sub, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToSubscriptionResponse(sub), nil
}

func (s *subscriptionService) GetAllSubscriptions(ctx context.Context) ([]*dto.SubscriptionResponse, error) {
	subs, err := s.subRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, mapToSubscriptionResponse(&subs[i]))
	}
	return responses, nil
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, id uint, req *dto.SubscriptionRequest) (*dto.SubscriptionResponse, error) {
	sub, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(sub, req); err != nil {
		return nil, err
	}

	if err := s.subRepo.Update(ctx, sub); err != nil {
		s.logger.Error("Failed to update subscription", logger.ErrorField(err), logger.Field("subscription_id", id))
		return nil, err
	}
	return mapToSubscriptionResponse(sub), nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, id uint) error {
	if err := s.subRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubscriptionNotFound
		}
		s.logger.Error("Failed to delete subscription", logger.ErrorField(err), logger.Field("subscription_id", id))
		return err
	}
	s.logger.Info("Subscription deleted successfully", logger.Field("subscription_id", id))
	return nil
}

// GetRuns returns the most recent runs of a subscription, newest first.
func (s *subscriptionService) GetRuns(ctx context.Context, id uint) ([]*dto.RunResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	runs, err := s.runRepo.FindAllBySubscriptionID(ctx, id, maxRunHistory)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, &dto.RunResponse{
			ID:             run.ID,
			SubscriptionID: run.SubscriptionID,
			Status:         run.Status,
			StartedAt:      run.StartedAt,
			CompletedAt:    dto.NullTimePtr(run.CompletedAt),
			Result:         json.RawMessage(run.Result),
			ErrorMessage:   run.ErrorMessage.String,
		})
	}
	return responses, nil
}

func (s *subscriptionService) find(ctx context.Context, id uint) (*entity.ClippingSubscription, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

// apply validates req and copies it onto sub, recomputing the next execution.
func (s *subscriptionService) apply(sub *entity.ClippingSubscription, req *dto.SubscriptionRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	switch req.Type {
	case entity.TaskTypeNewsClipping:
		if strings.TrimSpace(req.Query) == "" {
			return fmt.Errorf("%w: query is required for %s", ErrInvalidInput, req.Type)
		}
	case entity.TaskTypeCoverageReport:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, req.Type)
	}

	if req.MaxPages < 0 || req.MaxPages > newssearch.MaxPages {
		return fmt.Errorf("%w: maxPages must be between 1 and %d", ErrInvalidInput, newssearch.MaxPages)
	}
	if req.LookbackDays < 0 {
		return fmt.Errorf("%w: lookbackDays must not be negative", ErrInvalidInput)
	}

	schedule, err := cronParser.Parse(req.CronExpression)
	if err != nil {
		return fmt.Errorf("%w: invalid cron expression %q: %v", ErrInvalidInput, req.CronExpression, err)
	}

	sub.Name = name
	sub.Type = req.Type
	sub.Query = strings.TrimSpace(req.Query)
	sub.Sort = string(newssearch.ParseSort(req.Sort))
	sub.MaxPages = req.MaxPages
	if sub.MaxPages == 0 {
		sub.MaxPages = 1
	}
	sub.LookbackDays = req.LookbackDays
	if sub.LookbackDays == 0 {
		sub.LookbackDays = defaultLookbackDays
	}
	sub.CronExpression = req.CronExpression
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	sub.NextExecution = sql.NullTime{Time: schedule.Next(s.now()), Valid: true}
	return nil
}

func mapToSubscriptionResponse(sub *entity.ClippingSubscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		ID:             sub.ID,
		Name:           sub.Name,
		Type:           sub.Type,
		Query:          sub.Query,
		Sort:           sub.Sort,
		MaxPages:       sub.MaxPages,
		LookbackDays:   sub.LookbackDays,
		CronExpression: sub.CronExpression,
		IsActive:       sub.IsActive,
		NextExecution:  dto.NullTimePtr(sub.NextExecution),
		LastExecution:  dto.NullTimePtr(sub.LastExecution),
		CreatedAt:      sub.CreatedAt,
		UpdatedAt:      sub.UpdatedAt,
	}
}
