package risk

import (
	"math"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// Risk level thresholds over the [0,1] score range.
const (
	highThreshold   = 0.75
	mediumThreshold = 0.4
)

// LevelFor maps a score to its categorical level. Pure; callers rely on this
// being the single source of the score/level consistency invariant.
func LevelFor(score float64) domain.RiskLevel {
	switch {
	case score >= highThreshold:
		return domain.RiskHigh
	case score >= mediumThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// CyclicStrategy is a placeholder scoring policy: the score cycles with the
// record's ordinal position over [0.6, 0.9] to simulate variability. A real
// model can replace it behind the same ports.ScoringStrategy contract.
type CyclicStrategy struct{}

var _ ports.ScoringStrategy = CyclicStrategy{}

// Score returns round(0.6 + 0.3*(i%3)/2, 2) for 0-based position i.
func (CyclicStrategy) Score(index int) float64 {
	raw := 0.6 + 0.3*float64(index%3)/2
	return math.Round(raw*100) / 100
}
