package risk

import (
	"testing"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
)

func TestLevelForBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{0.0, domain.RiskLow},
		{0.39, domain.RiskLow},
		{0.4, domain.RiskMedium},
		{0.74, domain.RiskMedium},
		{0.75, domain.RiskHigh},
		{1.0, domain.RiskHigh},
	}

	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Fatalf("LevelFor(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestCyclicStrategyScores(t *testing.T) {
	t.Parallel()

	s := CyclicStrategy{}

	want := []float64{0.6, 0.75, 0.9, 0.6, 0.75, 0.9}
	for i, w := range want {
		if got := s.Score(i); got != w {
			t.Fatalf("Score(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestCyclicStrategyStaysInRange(t *testing.T) {
	t.Parallel()

	s := CyclicStrategy{}
	for i := 0; i < 100; i++ {
		score := s.Score(i)
		if score < 0 || score > 1 {
			t.Fatalf("Score(%d) = %v out of [0,1]", i, score)
		}
	}
}
