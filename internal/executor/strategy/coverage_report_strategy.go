package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"presscraft/internal/coverage"
	"presscraft/internal/entity"
	"presscraft/internal/executor/dto"
	"presscraft/internal/executor/repository"
	"presscraft/pkg/common"
	"presscraft/pkg/kafka"
	"presscraft/pkg/logger"
	"presscraft/pkg/telegram"
)

// CoverageReportStrategy rolls up the article counts of recent calendar
// events and sends the summary.
type CoverageReportStrategy struct {
	eventRepo        repository.EventRepository
	telegramNotifier telegram.Notifier
	publisher        kafka.Publisher
	loc              *time.Location
	logger           *logger.Logger
	now              func() time.Time
}

// NewCoverageReportStrategy creates a new instance of CoverageReportStrategy.
func NewCoverageReportStrategy(
	eventRepo repository.EventRepository,
	telegramNotifier telegram.Notifier,
	publisher kafka.Publisher,
	loc *time.Location,
	log *logger.Logger,
) *CoverageReportStrategy {
	return &CoverageReportStrategy{
		eventRepo:        eventRepo,
		telegramNotifier: telegramNotifier,
		publisher:        publisher,
		loc:              loc,
		logger:           log,
		now:              time.Now,
	}
}

// GetType returns the task type this strategy handles.
func (s *CoverageReportStrategy) GetType() entity.TaskType {
	return entity.TaskTypeCoverageReport
}

// Execute builds the rollup of the last sub.LookbackDays days.
func (s *CoverageReportStrategy) Execute(ctx context.Context, run *entity.ClippingRun, sub *entity.ClippingSubscription) (string, error) {
	from, to := coverage.Window(s.now(), sub.LookbackDays, s.loc)

	events, err := s.eventRepo.FindBetween(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("failed to load events: %w", err)
	}

	result := dto.CoverageResult{
		SubscriptionID: sub.ID,
		RunID:          run.ID,
		Name:           sub.Name,
		Rollup:         coverage.BuildRollup(events, from, to),
	}

	if err := telegram.SendAll(s.telegramNotifier, telegram.FormatCoverageForTelegram(sub.Name, result.Rollup)); err != nil {
		s.logger.Warn("Failed to send coverage report", logger.ErrorField(err), logger.Field("subscription_id", sub.ID))
		result.NotifyError = err.Error()
	}

	if err := s.publisher.Publish(ctx, common.KafkaEventCoverageReported, fmt.Sprint(sub.ID), result); err != nil {
		s.logger.Warn("Failed to publish coverage event", logger.ErrorField(err), logger.Field("subscription_id", sub.ID))
	}

	s.logger.Info("Coverage report completed",
		logger.Field("subscription_id", sub.ID),
		logger.IntField("events", result.Rollup.TotalEvents),
		logger.IntField("articles", result.Rollup.TotalArticles))

	output, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}
