package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"presscraft/internal/api/config"
	"presscraft/pkg/logger"
	"presscraft/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// ScrapedPage is the readable content of a product page.
type ScrapedPage struct {
	URL   string
	Title string
	Text  string
}

// PageScraper fetches a page and reduces it to title plus line-structured text.
type PageScraper interface {
	Scrape(ctx context.Context, url string) (*ScrapedPage, error)
}

// NewPageScraper returns the scraper selected by cfg.Scraper.Mode.
func NewPageScraper(cfg *config.Config, log *logger.Logger) PageScraper {
	if strings.EqualFold(cfg.Scraper.Mode, "browser") {
		return NewBrowserPageScraper(cfg.Scraper, log)
	}
	return NewStaticPageScraper(cfg.Scraper, log)
}

type staticPageScraper struct {
	client    *http.Client
	userAgent string
	logger    *logger.Logger
}

// NewStaticPageScraper fetches pages with a plain HTTP GET.
func NewStaticPageScraper(cfg config.Scraper, log *logger.Logger) *staticPageScraper {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &staticPageScraper{
		client:    &http.Client{Timeout: timeout},
		userAgent: ua,
		logger:    log,
	}
}

func (s *staticPageScraper) Scrape(ctx context.Context, url string) (*ScrapedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en-US;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("Failed to fetch page", logger.ErrorField(err), logger.StringField("url", url))
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Failed to fetch page with non-200 status", logger.IntField("status", resp.StatusCode), logger.StringField("url", url))
		return nil, fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	page, err := parseHTML(string(body))
	if err != nil {
		return nil, err
	}
	page.URL = url
	return page, nil
}

var blankLines = regexp.MustCompile(`\n{2,}`)

// parseHTML keeps the page <title> and extracts the readable article text,
// falling back to the whole body when readability finds nothing.
func parseHTML(html string) (*ScrapedPage, error) {
	full, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	title := strings.TrimSpace(full.Find("title").First().Text())
	if title == "" {
		title, _ = full.Find(`meta[property="og:title"]`).Attr("content")
		title = strings.TrimSpace(title)
	}

	text := ""
	if doc, err := readability.NewDocument(html); err == nil {
		if content := doc.Content(); content != "" {
			if article, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(content))); err == nil {
				text = blockText(article.Selection)
			}
		}
	}
	if len([]rune(text)) < 50 {
		full.Find("script, style, noscript, svg").Remove()
		text = blockText(full.Find("body"))
	}

	return &ScrapedPage{Title: title, Text: text}, nil
}

// blockText renders a selection as text with one line per block element.
func blockText(sel *goquery.Selection) string {
	sel.Find("br").ReplaceWithHtml("\n")
	sel.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr, section, article").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(sel.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return utils.CleanToValidUTF8(blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n"))
}
