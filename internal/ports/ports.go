package ports

import (
	"context"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
)

// ArticleSource pulls raw articles from one upstream news provider.
type ArticleSource interface {
	FetchArticles(ctx context.Context) ([]domain.RawArticle, error)
	Name() string
}

// EntityTagger runs named-entity recognition over article text and returns
// tagged entities in their order of appearance.
type EntityTagger interface {
	Tag(ctx context.Context, text string) ([]domain.Entity, error)
}

// Geocoder resolves a place name to coordinates. A nil result with nil error
// means the place is unknown to the backend; both outcomes are non-fatal.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (*domain.Coordinates, error)
}

// ScoringStrategy produces a risk score in [0,1] for the record at the given
// ordinal position. Implementations must be deterministic per run.
type ScoringStrategy interface {
	Score(index int) float64
}

// Summarizer condenses article text via an external model. Errors are mapped
// to the summary sentinel by the pipeline, never surfaced to the run.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SnapshotStore persists the three derived collections atomically enough
// that a concurrent reader sees either the old or the new snapshot.
type SnapshotStore interface {
	WriteSnapshot(ctx context.Context, snap domain.Snapshot) error
}

// Notifier pushes a post-run digest of high-severity alerts.
type Notifier interface {
	PublishAlerts(ctx context.Context, alerts []domain.Alert) error
}
