package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// FullTextSource decorates an ArticleSource: when a provider returns a
// truncated body, it fetches the article page and extracts paragraph text.
// Page fetch failures leave the original article untouched.
type FullTextSource struct {
	inner    ports.ArticleSource
	client   *http.Client
	minChars int
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*FullTextSource)(nil)

// WithFullText wraps src; bodies shorter than minChars trigger a page fetch.
func WithFullText(src ports.ArticleSource, client *http.Client, minChars int, logger *slog.Logger) *FullTextSource {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FullTextSource{inner: src, client: client, minChars: minChars, logger: logger}
}

// Name reports the wrapped provider's name.
func (s *FullTextSource) Name() string {
	return s.inner.Name()
}

// FetchArticles delegates to the wrapped source, then enriches short bodies.
func (s *FullTextSource) FetchArticles(ctx context.Context) ([]domain.RawArticle, error) {
	articles, err := s.inner.FetchArticles(ctx)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		if len(articles[i].Content) >= s.minChars || articles[i].URL == "" {
			continue
		}

		body, err := s.fetchBody(ctx, articles[i].URL)
		if err != nil {
			s.logger.Debug("full-text fetch failed", "url", articles[i].URL, "error", err)
			continue
		}
		if len(body) > len(articles[i].Content) {
			articles[i].Content = body
		}
	}

	return articles, nil
}

func (s *FullTextSource) fetchBody(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "supplyguard/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	var paragraphs []string
	doc.Find("article p, main p, p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 40 {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, "\n\n"), nil
}
