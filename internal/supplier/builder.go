package supplier

import (
	"fmt"
	"strings"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/extract"
	"github.com/theUtkarshRaj/SupplyGuard/internal/risk"
)

// Categories assigned by keyword classification.
const (
	CategoryElectronics = "Electronics"
	CategoryGeneral     = "General"
)

// trendDefault is a placeholder until a real trend-detection signal exists.
const trendDefault = "increasing"

var electronicsKeywords = []string{"chip", "semiconductor"}

// Build assembles a SupplierRecord from one canonical article and its
// enrichment outputs. index is the 0-based run position; ids come out dense
// and sequential ("S001", "S002", ...).
func Build(index int, art domain.CanonicalArticle, ext extract.Extraction, coords *domain.Coordinates, region string, score float64) domain.SupplierRecord {
	rec := domain.SupplierRecord{
		ID:          fmt.Sprintf("S%03d", index+1),
		Name:        ext.Supplier,
		Region:      region,
		Location:    ext.Location,
		RiskScore:   score,
		RiskLevel:   risk.LevelFor(score),
		RecentNews:  art.Title,
		Category:    Classify(art.Body),
		LastUpdated: art.PublishedAt,
		Trend:       trendDefault,
	}

	if coords != nil {
		lat, lng := coords.Lat, coords.Lng
		rec.Lat = &lat
		rec.Lng = &lng
	}

	return rec
}

// Classify buckets an article into a category by keyword presence.
func Classify(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range electronicsKeywords {
		if strings.Contains(lower, kw) {
			return CategoryElectronics
		}
	}
	return CategoryGeneral
}
