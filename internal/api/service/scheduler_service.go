package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"presscraft/internal/api/repository"
	"presscraft/internal/entity"
	"presscraft/pkg/common"
	"presscraft/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// StreamPublisher is the part of the Redis client the scheduler publishes through.
type StreamPublisher interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// SchedulerService defines the interface for the subscription scheduling service.
type SchedulerService interface {
	Start(ctx context.Context)
	ProcessSubscriptions(ctx context.Context)
}

// NewSchedulerService creates a new scheduler service.
func NewSchedulerService(subRepo repository.SubscriptionRepository, runRepo repository.ClippingRunRepository, publisher StreamPublisher, log *logger.Logger, pollingInterval time.Duration, streamMaxLen int64) SchedulerService {
	return &schedulerService{
		subRepo:         subRepo,
		runRepo:         runRepo,
		publisher:       publisher,
		logger:          log,
		pollingInterval: pollingInterval,
		streamMaxLen:    streamMaxLen,
		now:             time.Now,
	}
}

type schedulerService struct {
	subRepo         repository.SubscriptionRepository
	runRepo         repository.ClippingRunRepository
	publisher       StreamPublisher
	logger          *logger.Logger
	pollingInterval time.Duration
	streamMaxLen    int64
	now             func() time.Time
}

// Start begins the periodic subscription processing loop.
func (s *schedulerService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler service stopping")
			return
		case <-ticker.C:
			s.ProcessSubscriptions(ctx)
		}
	}
}

// ProcessSubscriptions finds and enqueues subscriptions that are due.
func (s *schedulerService) ProcessSubscriptions(ctx context.Context) {
	subs, err := s.subRepo.FindDue(ctx, s.now())
	if err != nil {
		s.logger.Error("Failed to find due subscriptions", logger.ErrorField(err))
		return
	}

	for _, sub := range subs {
		s.publishTask(ctx, sub)
	}
}

func (s *schedulerService) publishTask(ctx context.Context, sub entity.ClippingSubscription) {
	now := s.now()

	run := &entity.ClippingRun{
		SubscriptionID: sub.ID,
		Status:         entity.RunStatusRunning,
		StartedAt:      now,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Error("Failed to create clipping run", logger.ErrorField(err), logger.Field("subscription_id", sub.ID))
		return
	}

	payload, err := json.Marshal(entity.ClippingTask{
		RunID:          run.ID,
		SubscriptionID: sub.ID,
		Type:           sub.Type,
		EnqueuedAt:     now,
	})
	if err != nil {
		s.logger.Error("Failed to marshal task payload", logger.ErrorField(err), logger.Field("run_id", run.ID))
		return
	}

	if err := s.publisher.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamClippingTaskExecution,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: s.streamMaxLen,
	}).Err(); err != nil {
		s.logger.Error("Failed to enqueue task", logger.ErrorField(err), logger.Field("run_id", run.ID))
		run.Status = entity.RunStatusFailed
		run.CompletedAt = sql.NullTime{Time: s.now(), Valid: true}
		run.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
		if errInner := s.runRepo.Update(ctx, run); errInner != nil {
			s.logger.Error("Failed to update clipping run", logger.ErrorField(errInner), logger.Field("run_id", run.ID))
		}
		return
	}

	s.logger.Info("Task published successfully", logger.Field("run_id", run.ID), logger.Field("subscription_id", sub.ID))

	schedule, err := cronParser.Parse(sub.CronExpression)
	if err != nil {
		s.logger.Error("Failed to parse cron expression", logger.ErrorField(err), logger.Field("subscription_id", sub.ID))
		return
	}

	sub.LastExecution = sql.NullTime{Time: now, Valid: true}
	sub.NextExecution = sql.NullTime{Time: schedule.Next(now), Valid: true}
	if err := s.subRepo.Update(ctx, &sub); err != nil {
		s.logger.Error("Failed to update next execution time", logger.ErrorField(err), logger.Field("subscription_id", sub.ID))
	}
}
