package newssearch

import (
	"context"
	"fmt"

	"presscraft/internal/entity"
	"presscraft/pkg/config"
	"presscraft/pkg/logger"
)

// Sort is the result order requested from the provider.
type Sort string

const (
	SortDate Sort = "date"
	SortSim  Sort = "sim"
)

const (
	// PageSize is the number of items one search call returns at most.
	PageSize = 100
	// MaxPages caps a query at 1000 items.
	MaxPages = 10
)

const (
	ProviderNaver     = "naver"
	ProviderGoogleRSS = "google_rss"
)

// Page is one page of search results. Fetched is the number of items the
// provider returned, including the ones dropped from Items for an
// unreadable pubDate.
type Page struct {
	Items   []entity.NewsItem
	Fetched int
}

// Searcher returns one page of news results for a query. Pages start at 1.
type Searcher interface {
	Search(ctx context.Context, query string, sort Sort, page int) (Page, error)
}

// ParseSort maps free text to a Sort, defaulting to date order.
func ParseSort(s string) Sort {
	if Sort(s) == SortSim {
		return SortSim
	}
	return SortDate
}

// New builds the Searcher selected by cfg.Provider.
func New(cfg config.NewsSearch, log *logger.Logger) (Searcher, error) {
	switch cfg.Provider {
	case ProviderNaver, "":
		return NewNaverClient(cfg, log), nil
	case ProviderGoogleRSS:
		return NewGoogleRSSClient(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown news search provider: %s", cfg.Provider)
	}
}

// SearchAll walks pages 1..maxPages (capped at MaxPages) and stops early on
// a page the provider returned short. A failing page ends the walk; the error is returned only
// when nothing was collected before it.
func SearchAll(ctx context.Context, s Searcher, query string, sort Sort, maxPages int) ([]entity.NewsItem, error) {
	if maxPages < 1 {
		maxPages = 1
	}
	if maxPages > MaxPages {
		maxPages = MaxPages
	}

	var all []entity.NewsItem
	for page := 1; page <= maxPages; page++ {
		result, err := s.Search(ctx, query, sort, page)
		if err != nil {
			if len(all) == 0 {
				return nil, fmt.Errorf("failed to search page %d: %w", page, err)
			}
			break
		}
		all = append(all, result.Items...)
		if result.Fetched < PageSize {
			break
		}
	}
	return all, nil
}
