package extract

import (
	"context"
	"log/slog"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// Extraction holds the best-effort supplier and location for one article.
// Fields fall back to sentinels, never empty strings.
type Extraction struct {
	Supplier string
	Location string
}

// Candidates lists every tagged entity of each type, ranked by order of
// appearance in the text. Rank 0 is what the pipeline uses today; better
// ranking can be added without changing the pipeline shape.
type Candidates struct {
	Suppliers []string
	Locations []string
}

// Extractor derives supplier candidates from article text via NER tagging.
type Extractor struct {
	tagger ports.EntityTagger
	logger *slog.Logger
}

// NewExtractor wires a tagger implementation.
func NewExtractor(tagger ports.EntityTagger, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{tagger: tagger, logger: logger}
}

// Candidates tags the article text and groups entities by type, preserving
// text order. Tagger failure degrades to empty candidate lists.
func (e *Extractor) Candidates(ctx context.Context, art domain.CanonicalArticle) Candidates {
	text := art.Body
	if text == "" {
		text = art.Title
	}

	entities, err := e.tagger.Tag(ctx, text)
	if err != nil {
		e.logger.Warn("entity tagging failed", "title", art.Title, "error", err)
		return Candidates{}
	}

	var c Candidates
	for _, ent := range entities {
		switch ent.Label {
		case domain.LabelOrg:
			c.Suppliers = append(c.Suppliers, ent.Text)
		case domain.LabelPlace:
			c.Locations = append(c.Locations, ent.Text)
		}
	}
	return c
}

// Extract picks the first organization and first place entity, substituting
// sentinels on a miss.
func (e *Extractor) Extract(ctx context.Context, art domain.CanonicalArticle) Extraction {
	c := e.Candidates(ctx, art)

	result := Extraction{
		Supplier: domain.UnknownSupplier,
		Location: domain.UnknownLocation,
	}
	if len(c.Suppliers) > 0 {
		result.Supplier = c.Suppliers[0]
	}
	if len(c.Locations) > 0 {
		result.Location = c.Locations[0]
	}
	return result
}
