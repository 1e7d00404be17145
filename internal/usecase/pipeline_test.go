package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/extract"
	"github.com/theUtkarshRaj/SupplyGuard/internal/geo"
	"github.com/theUtkarshRaj/SupplyGuard/internal/risk"
)

type fakeSource struct {
	name     string
	articles []domain.RawArticle
	err      error
}

func (f *fakeSource) FetchArticles(context.Context) ([]domain.RawArticle, error) {
	return f.articles, f.err
}

func (f *fakeSource) Name() string { return f.name }

type fakeTagger struct{}

func (fakeTagger) Tag(context.Context, string) ([]domain.Entity, error) {
	return []domain.Entity{
		{Text: "Foxconn", Label: domain.LabelOrg},
		{Text: "Taiwan", Label: domain.LabelPlace},
	}, nil
}

type fakeSummarizer struct {
	mu     sync.Mutex
	calls  int
	failOn string
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if text == f.failOn {
		return "", errors.New("backend exploded")
	}
	return "summary of " + text, nil
}

type memStore struct {
	mu   sync.Mutex
	snap *domain.Snapshot
}

func (m *memStore) WriteSnapshot(_ context.Context, snap domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = &snap
	return nil
}

func newTestPipeline(sources []*fakeSource, summarizer *fakeSummarizer, store *memStore, concurrency int) *Pipeline {
	deps := PipelineDeps{
		Extractor:   extract.NewExtractor(fakeTagger{}, nil),
		Geo:         geo.NewResolver(geo.DefaultRegionMap(), nil, nil),
		Scoring:     risk.CyclicStrategy{},
		Summarizer:  summarizer,
		Store:       store,
		Concurrency: concurrency,
	}
	for _, s := range sources {
		deps.Sources = append(deps.Sources, s)
	}
	return NewPipeline(deps)
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()

	// Two articles share a normalized (title, body); one is distinct.
	src := &fakeSource{name: "gnews", articles: []domain.RawArticle{
		{Title: "Quake hits Taiwan fabs", Content: "Foxconn reported chip line damage.", PublishedAt: "2026-08-01T00:00:00Z"},
		{Title: "QUAKE HITS TAIWAN FABS", Content: "foxconn reported chip line damage.", PublishedAt: "2026-08-02T00:00:00Z"},
		{Title: "Port strike in Germany", Content: "Carriers reroute around Hamburg.", PublishedAt: "2026-08-03T00:00:00Z"},
	}}
	store := &memStore{}
	summarizer := &fakeSummarizer{}

	p := newTestPipeline([]*fakeSource{src}, summarizer, store, 2)

	snap, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(snap.Suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(snap.Suppliers))
	}
	if snap.Suppliers[0].ID != "S001" || snap.Suppliers[1].ID != "S002" {
		t.Fatalf("ids not dense/sequential: %s, %s", snap.Suppliers[0].ID, snap.Suppliers[1].ID)
	}
	if snap.Suppliers[0].Name != "Foxconn" || snap.Suppliers[0].Region != "Asia-Pacific" {
		t.Fatalf("enrichment missing: %+v", snap.Suppliers[0])
	}
	if snap.Suppliers[0].Category != "Electronics" {
		t.Fatalf("unexpected category: %s", snap.Suppliers[0].Category)
	}

	if len(snap.Alerts) != 2 || len(snap.News) != 2 {
		t.Fatalf("expected 2 alerts and 2 news, got %d/%d", len(snap.Alerts), len(snap.News))
	}
	if snap.Alerts[0].ID != 1 || snap.Alerts[1].ID != 2 || snap.News[0].ID != 1 || snap.News[1].ID != 2 {
		t.Fatal("derived ids must be 1 and 2")
	}

	for i, sup := range snap.Suppliers {
		if sup.LLMSummary == nil {
			t.Fatalf("supplier %d has no summary", i)
		}
		if *sup.LLMSummary != "summary of "+sup.RecentNews {
			t.Fatalf("summary order mismatch at %d: %q", i, *sup.LLMSummary)
		}
		if sup.RiskLevel != risk.LevelFor(sup.RiskScore) {
			t.Fatalf("risk level inconsistent at %d", i)
		}
	}

	if store.snap == nil {
		t.Fatal("snapshot was not written")
	}
}

func TestRunIsolatesSummarizationFailures(t *testing.T) {
	t.Parallel()

	src := &fakeSource{name: "gnews", articles: []domain.RawArticle{
		{Title: "A", Content: "alpha body"},
		{Title: "B", Content: "beta body"},
		{Title: "C", Content: "gamma body"},
	}}
	store := &memStore{}
	summarizer := &fakeSummarizer{failOn: "B"}

	p := newTestPipeline([]*fakeSource{src}, summarizer, store, 3)

	snap, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(snap.Suppliers) != 3 {
		t.Fatalf("expected 3 suppliers, got %d", len(snap.Suppliers))
	}
	for i, sup := range snap.Suppliers {
		if sup.LLMSummary == nil {
			t.Fatalf("supplier %d summary absent", i)
		}
	}
	if *snap.Suppliers[1].LLMSummary != domain.SummaryFailed {
		t.Fatalf("failed record must carry the sentinel, got %q", *snap.Suppliers[1].LLMSummary)
	}
	if *snap.Suppliers[0].LLMSummary != "summary of A" || *snap.Suppliers[2].LLMSummary != "summary of C" {
		t.Fatal("neighboring records must not be affected by one failure")
	}
}

func TestRunToleratesSourceFailure(t *testing.T) {
	t.Parallel()

	good := &fakeSource{name: "gnews", articles: []domain.RawArticle{
		{Title: "Only story", Content: "body text"},
	}}
	bad := &fakeSource{name: "newsdata", err: errors.New("quota exhausted")}
	store := &memStore{}

	p := newTestPipeline([]*fakeSource{good, bad}, &fakeSummarizer{}, store, 1)

	snap, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(snap.Suppliers) != 1 {
		t.Fatalf("expected 1 supplier, got %d", len(snap.Suppliers))
	}
}

func TestRunEmptyInputWritesEmptySnapshot(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	p := newTestPipeline([]*fakeSource{{name: "gnews"}}, &fakeSummarizer{}, store, 1)

	snap, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(snap.Suppliers) != 0 || len(snap.Alerts) != 0 || len(snap.News) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
	if store.snap == nil {
		t.Fatal("empty snapshot must still be written")
	}
}

func TestRunPreservesOrderUnderConcurrency(t *testing.T) {
	t.Parallel()

	var articles []domain.RawArticle
	for i := 0; i < 20; i++ {
		articles = append(articles, domain.RawArticle{
			Title:   fmt.Sprintf("headline %02d", i),
			Content: fmt.Sprintf("body %02d", i),
		})
	}
	src := &fakeSource{name: "gnews", articles: articles}
	store := &memStore{}

	p := newTestPipeline([]*fakeSource{src}, &fakeSummarizer{}, store, 8)

	snap, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, sup := range snap.Suppliers {
		wantHeadline := fmt.Sprintf("headline %02d", i)
		if sup.RecentNews != wantHeadline {
			t.Fatalf("order broken at %d: %s", i, sup.RecentNews)
		}
		if *sup.LLMSummary != "summary of "+wantHeadline {
			t.Fatalf("summary joined to wrong record at %d", i)
		}
	}
}
