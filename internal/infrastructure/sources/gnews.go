package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// GNewsClient fetches articles from the GNews search API.
type GNewsClient struct {
	baseURL string
	apiKey  string
	query   string
	limit   int
	client  *http.Client
}

var _ ports.ArticleSource = (*GNewsClient)(nil)

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"source"`
	} `json:"articles"`
}

// NewGNewsClient builds a client; a nil http.Client gets a 30s-timeout default.
func NewGNewsClient(baseURL, apiKey, query string, limit int, client *http.Client) *GNewsClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &GNewsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		query:   query,
		limit:   limit,
		client:  client,
	}
}

// Name identifies the provider in logs.
func (c *GNewsClient) Name() string {
	return "gnews"
}

// FetchArticles queries the search endpoint and normalizes the payload.
func (c *GNewsClient) FetchArticles(ctx context.Context) ([]domain.RawArticle, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("gnews: invalid base url: %w", err)
	}

	q := endpoint.Query()
	q.Set("q", c.query)
	q.Set("lang", "en")
	q.Set("max", strconv.Itoa(c.limit))
	q.Set("token", c.apiKey)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("gnews: new request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews: unexpected status %s", resp.Status)
	}

	var payload gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("gnews: decode response: %w", err)
	}

	articles := make([]domain.RawArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, domain.RawArticle{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
			Image:       a.Image,
			SourceName:  a.Source.Name,
		})
	}

	return articles, nil
}
