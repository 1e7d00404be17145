package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
)

type fakeTagger struct {
	entities []domain.Entity
	err      error
	gotText  string
}

func (f *fakeTagger) Tag(_ context.Context, text string) ([]domain.Entity, error) {
	f.gotText = text
	return f.entities, f.err
}

func TestExtractPicksFirstOfEachLabel(t *testing.T) {
	t.Parallel()

	tagger := &fakeTagger{entities: []domain.Entity{
		{Text: "Foxconn", Label: domain.LabelOrg},
		{Text: "Taiwan", Label: domain.LabelPlace},
		{Text: "Pegatron", Label: domain.LabelOrg},
		{Text: "China", Label: domain.LabelPlace},
	}}
	e := NewExtractor(tagger, nil)

	got := e.Extract(context.Background(), domain.CanonicalArticle{Title: "t", Body: "b"})

	if got.Supplier != "Foxconn" {
		t.Fatalf("unexpected supplier: %s", got.Supplier)
	}
	if got.Location != "Taiwan" {
		t.Fatalf("unexpected location: %s", got.Location)
	}
}

func TestExtractSentinelsOnMiss(t *testing.T) {
	t.Parallel()

	e := NewExtractor(&fakeTagger{}, nil)

	got := e.Extract(context.Background(), domain.CanonicalArticle{Title: "t", Body: "b"})

	if got.Supplier != domain.UnknownSupplier {
		t.Fatalf("unexpected supplier: %s", got.Supplier)
	}
	if got.Location != domain.UnknownLocation {
		t.Fatalf("unexpected location: %s", got.Location)
	}
}

func TestExtractDegradesOnTaggerError(t *testing.T) {
	t.Parallel()

	e := NewExtractor(&fakeTagger{err: errors.New("inference down")}, nil)

	got := e.Extract(context.Background(), domain.CanonicalArticle{Title: "t", Body: "b"})

	if got.Supplier != domain.UnknownSupplier || got.Location != domain.UnknownLocation {
		t.Fatalf("expected sentinels on tagger error, got %+v", got)
	}
}

func TestExtractFallsBackToTitle(t *testing.T) {
	t.Parallel()

	tagger := &fakeTagger{}
	e := NewExtractor(tagger, nil)

	e.Extract(context.Background(), domain.CanonicalArticle{Title: "headline only"})

	if tagger.gotText != "headline only" {
		t.Fatalf("expected title fallback, tagger saw %q", tagger.gotText)
	}
}

func TestCandidatesPreserveOrder(t *testing.T) {
	t.Parallel()

	tagger := &fakeTagger{entities: []domain.Entity{
		{Text: "Bosch", Label: domain.LabelOrg},
		{Text: "Germany", Label: domain.LabelPlace},
		{Text: "Siemens", Label: domain.LabelOrg},
	}}
	e := NewExtractor(tagger, nil)

	c := e.Candidates(context.Background(), domain.CanonicalArticle{Body: "x"})

	if len(c.Suppliers) != 2 || c.Suppliers[0] != "Bosch" || c.Suppliers[1] != "Siemens" {
		t.Fatalf("unexpected suppliers: %v", c.Suppliers)
	}
	if len(c.Locations) != 1 || c.Locations[0] != "Germany" {
		t.Fatalf("unexpected locations: %v", c.Locations)
	}
}
