package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"presscraft/internal/api/dto"
	"presscraft/internal/clipping"
	"presscraft/pkg/logger"
	"presscraft/pkg/newssearch"

	"github.com/patrickmn/go-cache"
)

// TimelineService builds grouped news timelines for a search query.
type TimelineService interface {
	GetTimeline(ctx context.Context, query, sort string, pages int) (*dto.TimelineResponse, error)
}

// NewTimelineService creates a timeline service whose results are cached for ttl.
// A non-positive ttl disables caching.
func NewTimelineService(searcher newssearch.Searcher, ttl time.Duration, loc *time.Location, log *logger.Logger) TimelineService {
	var c *cache.Cache
	if ttl > 0 {
		c = cache.New(ttl, 2*ttl)
	}
	return &timelineService{
		searcher: searcher,
		cache:    c,
		loc:      loc,
		logger:   log,
	}
}

type timelineService struct {
	searcher newssearch.Searcher
	cache    *cache.Cache
	loc      *time.Location
	logger   *logger.Logger
}

// GetTimeline searches up to pages result pages and groups the items per day.
func (s *timelineService) GetTimeline(ctx context.Context, query, sort string, pages int) (*dto.TimelineResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if pages < 1 {
		pages = 1
	}
	if pages > newssearch.MaxPages {
		pages = newssearch.MaxPages
	}
	order := newssearch.ParseSort(sort)

	key := fmt.Sprintf("%s|%s|%d", query, order, pages)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("Timeline cache hit", logger.StringField("key", key))
			return cached.(*dto.TimelineResponse), nil
		}
	}

	items, err := newssearch.SearchAll(ctx, s.searcher, query, order, pages)
	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}

	resp := &dto.TimelineResponse{
		Query:      query,
		Sort:       string(order),
		TotalItems: len(items),
		Days:       clipping.GroupByDay(items, s.loc),
	}

	s.logger.Info("Timeline built",
		logger.StringField("query", query),
		logger.IntField("items", len(items)),
		logger.IntField("days", len(resp.Days)),
	)

	if s.cache != nil {
		s.cache.SetDefault(key, resp)
	}
	return resp, nil
}
