package newssearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"presscraft/internal/entity"
	"presscraft/pkg/config"
	"presscraft/pkg/logger"
)

const defaultNaverBaseURL = "https://openapi.naver.com/v1/search/news.json"

type naverResponse struct {
	Total int         `json:"total"`
	Start int         `json:"start"`
	Items []naverItem `json:"items"`
}

type naverItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	PubDate      string `json:"pubDate"`
}

// NaverClient searches the Naver news Open API.
type NaverClient struct {
	client         *http.Client
	baseURL        string
	clientID       string
	clientSecret   string
	requestLimiter *rate.Limiter
	logger         *logger.Logger
}

func NewNaverClient(cfg config.NewsSearch, log *logger.Logger) *NaverClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultNaverBaseURL
	}
	perSecond := cfg.MaxRequestPerSecond
	if perSecond <= 0 {
		perSecond = 10
	}

	return &NaverClient{
		client:         &http.Client{Timeout: 15 * time.Second},
		baseURL:        baseURL,
		clientID:       cfg.ClientID,
		clientSecret:   cfg.ClientSecret,
		requestLimiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:         log,
	}
}

// Search fetches one page. Items whose pubDate cannot be parsed are skipped
// but still counted in Page.Fetched.
func (c *NaverClient) Search(ctx context.Context, query string, sort Sort, page int) (Page, error) {
	if strings.TrimSpace(query) == "" {
		return Page{}, fmt.Errorf("query is required")
	}
	if c.clientID == "" || c.clientSecret == "" {
		return Page{}, fmt.Errorf("naver API credentials not configured")
	}
	if page < 1 {
		page = 1
	}

	if err := c.requestLimiter.Wait(ctx); err != nil {
		return Page{}, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(PageSize))
	params.Set("start", strconv.Itoa((page-1)*PageSize+1))
	params.Set("sort", string(sort))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("failed to send request to Naver API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Page{}, fmt.Errorf("received non-OK response from Naver API: %d - %s", resp.StatusCode, string(body))
	}

	var payload naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Page{}, fmt.Errorf("failed to decode response body: %w", err)
	}

	items := make([]entity.NewsItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		pub, err := time.Parse(time.RFC1123Z, it.PubDate)
		if err != nil {
			c.logger.Warn("Skipping news item with invalid pubDate",
				logger.StringField("link", it.Link),
				logger.StringField("pub_date", it.PubDate),
			)
			continue
		}
		items = append(items, entity.NewsItem{
			Title:        it.Title,
			Link:         it.Link,
			OriginalLink: it.OriginalLink,
			Description:  it.Description,
			PubDate:      pub,
		})
	}

	c.logger.Debug("Naver news page fetched",
		logger.StringField("query", query),
		logger.IntField("page", page),
		logger.IntField("count", len(items)),
		logger.IntField("total", payload.Total),
	)
	return Page{Items: items, Fetched: len(payload.Items)}, nil
}
