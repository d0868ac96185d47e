package repository

import (
	"context"
	"fmt"
	"time"

	"presscraft/internal/api/config"
	"presscraft/pkg/logger"

	"github.com/chromedp/chromedp"
)

type browserPageScraper struct {
	cfg    config.Scraper
	logger *logger.Logger
}

// NewBrowserPageScraper renders pages in headless Chrome before extraction,
// for product pages that build their content with JavaScript.
func NewBrowserPageScraper(cfg config.Scraper, log *logger.Logger) *browserPageScraper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.WaitAfter <= 0 {
		cfg.WaitAfter = 3 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &browserPageScraper{cfg: cfg, logger: log}
}

func (s *browserPageScraper) Scrape(ctx context.Context, url string) (*ScrapedPage, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(s.cfg.UserAgent),
	)
	if s.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.cfg.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	runCtx, cancel := context.WithTimeout(browserCtx, s.cfg.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(s.cfg.WaitAfter),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(time.Second),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		s.logger.Error("Failed to render page", logger.ErrorField(err), logger.StringField("url", url))
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	page, err := parseHTML(html)
	if err != nil {
		return nil, err
	}
	page.URL = url
	return page, nil
}
