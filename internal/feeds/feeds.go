package feeds

import "github.com/theUtkarshRaj/SupplyGuard/internal/domain"

// Fixed projection constants. Impact classification is a placeholder until a
// real derivation rule is documented.
const (
	alertType   = "Disruption"
	alertImpact = "Operational"
	newsSource  = "GNews"
	newsImpact  = "Medium"
)

// Derive projects every post-summarization SupplierRecord into exactly one
// Alert and one NewsItem. Derived ids are the record's 1-based run position,
// independent of its string id. Stateless, no error conditions.
func Derive(suppliers []domain.SupplierRecord) ([]domain.Alert, []domain.NewsItem) {
	alerts := make([]domain.Alert, 0, len(suppliers))
	news := make([]domain.NewsItem, 0, len(suppliers))

	for i, sup := range suppliers {
		alerts = append(alerts, domain.Alert{
			ID:        i + 1,
			Supplier:  sup.Name,
			Type:      alertType,
			Severity:  sup.RiskLevel,
			Message:   sup.RecentNews,
			Timestamp: sup.LastUpdated,
			Impact:    alertImpact,
		})
		news = append(news, domain.NewsItem{
			ID:                i + 1,
			Headline:          sup.RecentNews,
			Source:            newsSource,
			Timestamp:         sup.LastUpdated,
			RelevantSuppliers: []string{sup.Name},
			Impact:            newsImpact,
			Date:              sup.LastUpdated,
		})
	}

	return alerts, news
}
