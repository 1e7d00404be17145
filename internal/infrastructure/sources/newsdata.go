package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// NewsDataClient fetches articles from the NewsData.io latest-news API.
type NewsDataClient struct {
	baseURL string
	apiKey  string
	query   string
	client  *http.Client
}

var _ ports.ArticleSource = (*NewsDataClient)(nil)

type newsDataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		PubDate     string `json:"pubDate"`
		Link        string `json:"link"`
		ImageURL    string `json:"image_url"`
		SourceID    string `json:"source_id"`
	} `json:"results"`
}

// NewNewsDataClient builds a client; a nil http.Client gets a 30s-timeout default.
func NewNewsDataClient(baseURL, apiKey, query string, client *http.Client) *NewsDataClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &NewsDataClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		query:   query,
		client:  client,
	}
}

// Name identifies the provider in logs.
func (c *NewsDataClient) Name() string {
	return "newsdata"
}

// FetchArticles queries the news endpoint and normalizes the payload.
func (c *NewsDataClient) FetchArticles(ctx context.Context) ([]domain.RawArticle, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("newsdata: invalid base url: %w", err)
	}

	q := endpoint.Query()
	q.Set("apikey", c.apiKey)
	q.Set("q", c.query)
	q.Set("language", "en")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsdata: new request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsdata: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsdata: unexpected status %s", resp.Status)
	}

	var payload newsDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("newsdata: decode response: %w", err)
	}
	if payload.Status != "" && payload.Status != "success" {
		return nil, fmt.Errorf("newsdata: api status %q", payload.Status)
	}

	articles := make([]domain.RawArticle, 0, len(payload.Results))
	for _, r := range payload.Results {
		articles = append(articles, domain.RawArticle{
			Title:       r.Title,
			Description: r.Description,
			Content:     r.Content,
			PublishedAt: r.PubDate,
			URL:         r.Link,
			Image:       r.ImageURL,
			SourceName:  r.SourceID,
		})
	}

	return articles, nil
}
