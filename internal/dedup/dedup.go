package dedup

import (
	"strings"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
)

// Canonicalize normalizes and deduplicates raw articles, preserving
// first-seen order. Articles without a usable title or body are dropped;
// description and content back each other up when one is missing. Malformed
// input is filtered, never rejected.
func Canonicalize(raw []domain.RawArticle) []domain.CanonicalArticle {
	out := make([]domain.CanonicalArticle, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, art := range raw {
		title := strings.TrimSpace(art.Title)
		body := strings.TrimSpace(art.Content)
		if body == "" {
			body = strings.TrimSpace(art.Description)
		}
		if title == "" || body == "" {
			continue
		}

		key := normalKey(title, body)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, domain.CanonicalArticle{
			Title:       title,
			Body:        body,
			PublishedAt: art.PublishedAt,
			URL:         art.URL,
			Image:       art.Image,
			SourceName:  art.SourceName,
		})
	}

	return out
}

func normalKey(title, body string) string {
	return strings.ToLower(title) + "\x00" + strings.ToLower(body)
}
