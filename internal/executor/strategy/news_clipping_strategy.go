package strategy

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"presscraft/internal/clipping"
	"presscraft/internal/entity"
	"presscraft/internal/executor/dto"
	"presscraft/internal/executor/repository"
	"presscraft/pkg/common"
	"presscraft/pkg/kafka"
	"presscraft/pkg/logger"
	"presscraft/pkg/newssearch"
	"presscraft/pkg/telegram"
)

// NewsClippingStrategy searches news for a subscription query, stores the
// articles not seen before and sends them as a day-grouped digest.
type NewsClippingStrategy struct {
	searcher         newssearch.Searcher
	clippingRepo     repository.NewsClippingRepository
	telegramNotifier telegram.Notifier
	publisher        kafka.Publisher
	loc              *time.Location
	logger           *logger.Logger
}

// NewNewsClippingStrategy creates a new instance of NewsClippingStrategy.
func NewNewsClippingStrategy(
	searcher newssearch.Searcher,
	clippingRepo repository.NewsClippingRepository,
	telegramNotifier telegram.Notifier,
	publisher kafka.Publisher,
	loc *time.Location,
	log *logger.Logger,
) *NewsClippingStrategy {
	return &NewsClippingStrategy{
		searcher:         searcher,
		clippingRepo:     clippingRepo,
		telegramNotifier: telegramNotifier,
		publisher:        publisher,
		loc:              loc,
		logger:           log,
	}
}

// GetType returns the task type this strategy handles.
func (s *NewsClippingStrategy) GetType() entity.TaskType {
	return entity.TaskTypeNewsClipping
}

// Execute runs one clipping pass for sub.
func (s *NewsClippingStrategy) Execute(ctx context.Context, run *entity.ClippingRun, sub *entity.ClippingSubscription) (string, error) {
	if sub.Query == "" {
		return "", fmt.Errorf("subscription %d has no query", sub.ID)
	}

	items, err := newssearch.SearchAll(ctx, s.searcher, sub.Query, newssearch.ParseSort(sub.Sort), sub.MaxPages)
	if err != nil {
		return "", fmt.Errorf("failed to search news: %w", err)
	}

	fresh, err := s.filterSeen(ctx, items)
	if err != nil {
		return "", fmt.Errorf("failed to check stored clippings: %w", err)
	}

	days := clipping.GroupByDay(fresh, s.loc)
	inserted, err := s.clippingRepo.CreateIgnoreConflict(ctx, buildClippings(sub, days))
	if err != nil {
		return "", fmt.Errorf("failed to store clippings: %w", err)
	}

	result := dto.ClippingResult{
		SubscriptionID: sub.ID,
		RunID:          run.ID,
		Query:          sub.Query,
		Fetched:        len(items),
		NewItems:       len(fresh),
		Inserted:       inserted,
		Days:           len(days),
	}
	for _, day := range days {
		result.Groups += len(day.Groups)
	}

	if err := telegram.SendAll(s.telegramNotifier, telegram.FormatTimelineForTelegram(sub.Query, days)); err != nil {
		s.logger.Warn("Failed to send clipping digest", logger.ErrorField(err), logger.Field("subscription_id", sub.ID))
		result.NotifyError = err.Error()
	}

	if err := s.publisher.Publish(ctx, common.KafkaEventClippingCompleted, fmt.Sprint(sub.ID), result); err != nil {
		s.logger.Warn("Failed to publish clipping event", logger.ErrorField(err), logger.Field("subscription_id", sub.ID))
	}

	s.logger.Info("News clipping completed",
		logger.Field("subscription_id", sub.ID),
		logger.IntField("fetched", result.Fetched),
		logger.IntField("new_items", result.NewItems),
		logger.IntField("groups", result.Groups))

	output, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output), nil
}

// filterSeen drops items already stored by an earlier run and duplicates
// within the same search result.
func (s *NewsClippingStrategy) filterSeen(ctx context.Context, items []entity.NewsItem) ([]entity.NewsItem, error) {
	hashes := make([]string, 0, len(items))
	for _, item := range items {
		hashes = append(hashes, itemHash(item))
	}

	existing, err := s.clippingRepo.FindExistingHashes(ctx, hashes)
	if err != nil {
		return nil, err
	}

	fresh := make([]entity.NewsItem, 0, len(items))
	for i, item := range items {
		if existing[hashes[i]] {
			continue
		}
		existing[hashes[i]] = true
		fresh = append(fresh, item)
	}
	return fresh, nil
}

func buildClippings(sub *entity.ClippingSubscription, days []entity.DailyNewsGroups) []entity.NewsClipping {
	var clippings []entity.NewsClipping
	for _, day := range days {
		for _, g := range day.Groups {
			groupKey := md5Hex(g.Main.Link)
			for i, item := range g.All {
				c := entity.NewsClipping{
					SubscriptionID:   sub.ID,
					Query:            sub.Query,
					Title:            clipping.CleanTitle(item.Title),
					Link:             item.Link,
					Description:      clipping.CleanTitle(item.Description),
					DayBucket:        day.Date,
					GroupKey:         groupKey,
					IsRepresentative: i == 0,
					HashIdentifier:   itemHash(item),
				}
				if !item.PubDate.IsZero() {
					pub := item.PubDate
					c.PublishedAt = &pub
				}
				clippings = append(clippings, c)
			}
		}
	}
	return clippings
}

func itemHash(item entity.NewsItem) string {
	return md5Hex(item.Link + "|" + item.PubDate.UTC().Format(time.RFC3339))
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
