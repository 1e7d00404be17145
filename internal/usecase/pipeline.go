package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/theUtkarshRaj/SupplyGuard/internal/dedup"
	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/extract"
	"github.com/theUtkarshRaj/SupplyGuard/internal/feeds"
	"github.com/theUtkarshRaj/SupplyGuard/internal/geo"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
	"github.com/theUtkarshRaj/SupplyGuard/internal/supplier"
)

// PipelineDeps wires all driven adapters into the enrichment pipeline.
type PipelineDeps struct {
	Sources     []ports.ArticleSource
	Extractor   *extract.Extractor
	Geo         *geo.Resolver
	Scoring     ports.ScoringStrategy
	Summarizer  ports.Summarizer
	Store       ports.SnapshotStore
	Notifier    ports.Notifier
	Concurrency int
	Logger      *slog.Logger
}

// Pipeline implements the batch enrichment workflow: fetch → dedup →
// extract/geolocate/score → summarize → derive feeds → snapshot.
type Pipeline struct {
	sources     []ports.ArticleSource
	extractor   *extract.Extractor
	geo         *geo.Resolver
	scoring     ports.ScoringStrategy
	summarizer  ports.Summarizer
	store       ports.SnapshotStore
	notifier    ports.Notifier
	concurrency int
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	concurrency := deps.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		sources:     deps.Sources,
		extractor:   deps.Extractor,
		geo:         deps.Geo,
		scoring:     deps.Scoring,
		summarizer:  deps.Summarizer,
		store:       deps.Store,
		notifier:    deps.Notifier,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run executes one batch invocation and writes a fresh snapshot. Per-record
// failures degrade to sentinels; only pipeline-wide preconditions abort.
func (p *Pipeline) Run(ctx context.Context) (domain.Snapshot, error) {
	if p.extractor == nil || p.geo == nil || p.scoring == nil || p.summarizer == nil || p.store == nil {
		return domain.Snapshot{}, fmt.Errorf("pipeline: missing dependencies")
	}

	raw := p.fetchAll(ctx)
	p.logger.Info("articles fetched", "raw", len(raw))

	articles := dedup.Canonicalize(raw)
	p.logger.Info("articles canonicalized", "kept", len(articles), "dropped", len(raw)-len(articles))

	suppliers := p.enrich(ctx, articles)

	p.summarizeAll(ctx, suppliers)

	alerts, news := feeds.Derive(suppliers)

	snap := domain.Snapshot{Suppliers: suppliers, Alerts: alerts, News: news}
	if err := p.store.WriteSnapshot(ctx, snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("pipeline: write snapshot: %w", err)
	}
	p.logger.Info("snapshot written", "suppliers", len(suppliers), "alerts", len(alerts), "news", len(news))

	if p.notifier != nil {
		if err := p.notifier.PublishAlerts(ctx, alerts); err != nil {
			p.logger.Warn("alert notification failed", "error", err)
		}
	}

	return snap, nil
}

// fetchAll queries every source concurrently, joining results in source
// order so record ids stay deterministic across runs.
func (p *Pipeline) fetchAll(ctx context.Context) []domain.RawArticle {
	results := make([][]domain.RawArticle, len(p.sources))

	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src ports.ArticleSource) {
			defer wg.Done()
			articles, err := src.FetchArticles(ctx)
			if err != nil {
				p.logger.Warn("source fetch failed", "source", src.Name(), "error", err)
				return
			}
			p.logger.Debug("source fetched", "source", src.Name(), "count", len(articles))
			results[i] = articles
		}(i, src)
	}
	wg.Wait()

	var all []domain.RawArticle
	for _, batch := range results {
		all = append(all, batch...)
	}
	return all
}

func (p *Pipeline) enrich(ctx context.Context, articles []domain.CanonicalArticle) []domain.SupplierRecord {
	suppliers := make([]domain.SupplierRecord, 0, len(articles))

	for i, art := range articles {
		ext := p.extractor.Extract(ctx, art)
		coords, region := p.geo.Resolve(ctx, ext.Location)
		score := p.scoring.Score(i)

		suppliers = append(suppliers, supplier.Build(i, art, ext, coords, region, score))
	}

	return suppliers
}

// summarizeAll annotates every record with a summary, in place. This is the
// one sanctioned mutation of an already-built collection: re-deriving the
// records here would lose the id assignment. Calls run under a bounded
// worker pool and join back by index, so output order matches input order.
// A failed record gets the sentinel and does not affect its neighbors.
func (p *Pipeline) summarizeAll(ctx context.Context, suppliers []domain.SupplierRecord) {
	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup

	for i := range suppliers {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			summary, err := p.summarizer.Summarize(ctx, suppliers[i].RecentNews)
			if err != nil {
				p.logger.Warn("summarization failed", "id", suppliers[i].ID, "error", err)
				summary = domain.SummaryFailed
			}
			suppliers[i].LLMSummary = &summary
		}(i)
	}
	wg.Wait()
}
