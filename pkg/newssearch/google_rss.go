package newssearch

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"presscraft/internal/entity"
	"presscraft/pkg/config"
	"presscraft/pkg/logger"
)

const defaultGoogleRSSBaseURL = "https://news.google.com/rss/search"

// GoogleRSSClient searches Google News through its RSS endpoint. The feed
// is not paginated, so only page 1 returns items.
type GoogleRSSClient struct {
	parser  *gofeed.Parser
	baseURL string
	logger  *logger.Logger
}

func NewGoogleRSSClient(cfg config.NewsSearch, log *logger.Logger) *GoogleRSSClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleRSSBaseURL
	}
	return &GoogleRSSClient{
		parser:  gofeed.NewParser(),
		baseURL: baseURL,
		logger:  log,
	}
}

func (c *GoogleRSSClient) Search(ctx context.Context, query string, sort Sort, page int) (Page, error) {
	if page > 1 {
		return Page{Items: []entity.NewsItem{}}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", "ko")
	params.Set("gl", "KR")
	params.Set("ceid", "KR:ko")

	feed, err := c.parser.ParseURLWithContext(c.baseURL+"?"+params.Encode(), ctx)
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	fetched := len(feed.Items)
	if fetched > PageSize {
		fetched = PageSize
	}
	items := make([]entity.NewsItem, 0, fetched)
	for _, it := range feed.Items[:fetched] {
		if it.PublishedParsed == nil {
			c.logger.Warn("Skipping RSS item without published date", logger.StringField("link", it.Link))
			continue
		}
		items = append(items, entity.NewsItem{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			PubDate:     it.PublishedParsed.In(time.UTC),
		})
	}
	return Page{Items: items, Fetched: fetched}, nil
}
