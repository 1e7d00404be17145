package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/theUtkarshRaj/SupplyGuard/internal/config"
	"github.com/theUtkarshRaj/SupplyGuard/internal/extract"
	"github.com/theUtkarshRaj/SupplyGuard/internal/geo"
	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/geocode"
	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/hf"
	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/llm"
	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/ner"
	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/sources"
	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/storage"
	"github.com/theUtkarshRaj/SupplyGuard/internal/infrastructure/telegram"
	"github.com/theUtkarshRaj/SupplyGuard/internal/logging"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
	"github.com/theUtkarshRaj/SupplyGuard/internal/risk"
	"github.com/theUtkarshRaj/SupplyGuard/internal/usecase"
)

// Application wires config to the pipeline and its adapters for one run.
type Application struct {
	runID    string
	pipeline *usecase.Pipeline
	logger   *slog.Logger
}

// New builds a runnable application instance. Config must already be
// validated; adapter construction here performs no network calls except the
// optional Telegram bot handshake.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	runID := ulid.Make().String()
	logger := baseLogger.With("run_id", runID)

	articleSources, err := buildSources(cfg, logger)
	if err != nil {
		return nil, err
	}

	var tagger ports.EntityTagger
	if cfg.NER.InferenceURL != "" {
		tagger = ner.NewClient(cfg.NER.InferenceURL, cfg.NER.APIKey)
	} else {
		tagger = extract.HeuristicTagger{}
	}

	regions := geo.DefaultRegionMap()
	if cfg.Geo.RegionMapPath != "" {
		regions, err = geo.LoadRegionMap(cfg.Geo.RegionMapPath)
		if err != nil {
			return nil, err
		}
	}
	geocoder := geocode.NewNominatimClient(cfg.Geo.GeocodeURL, cfg.Geo.Timeout)

	summarizer, err := buildSummarizer(cfg)
	if err != nil {
		return nil, err
	}

	var notifier ports.Notifier
	if tg := cfg.Notifications.Telegram; tg.BotToken != "" && tg.ChatID != 0 {
		notifier, err = telegram.NewNotifier(tg.BotToken, tg.ChatID)
		if err != nil {
			return nil, err
		}
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Sources:     articleSources,
		Extractor:   extract.NewExtractor(tagger, logger.With("component", "extractor")),
		Geo:         geo.NewResolver(regions, geocoder, logger.With("component", "geo")),
		Scoring:     risk.CyclicStrategy{},
		Summarizer:  summarizer,
		Store:       storage.NewSnapshotStore(cfg.Data.Dir, runID),
		Notifier:    notifier,
		Concurrency: cfg.Summarizer.Concurrency,
		Logger:      logger.With("component", "pipeline"),
	})

	return &Application{runID: runID, pipeline: pipeline, logger: logger}, nil
}

// Run performs a single pipeline execution.
func (a *Application) Run(ctx context.Context) error {
	a.logger.Info("pipeline run starting")
	if _, err := a.pipeline.Run(ctx); err != nil {
		return err
	}
	a.logger.Info("pipeline run finished")
	return nil
}

func buildSources(cfg config.Config, logger *slog.Logger) ([]ports.ArticleSource, error) {
	var list []ports.ArticleSource

	if cfg.Sources.GNewsAPIKey != "" {
		list = append(list, sources.NewGNewsClient(
			cfg.Sources.GNewsURL, cfg.Sources.GNewsAPIKey, cfg.Sources.Query, cfg.Sources.MaxArticles, nil))
	}
	if cfg.Sources.NewsDataKey != "" {
		list = append(list, sources.NewNewsDataClient(
			cfg.Sources.NewsDataURL, cfg.Sources.NewsDataKey, cfg.Sources.Query, nil))
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("app: no article source configured; set GNEWS_API_KEY or NEWSDATA_API_KEY")
	}

	if cfg.Sources.FetchPages {
		for i, src := range list {
			list[i] = sources.WithFullText(src, nil, cfg.Sources.MinBodyChars, logger.With("component", "fulltext"))
		}
	}

	return list, nil
}

func buildSummarizer(cfg config.Config) (ports.Summarizer, error) {
	switch cfg.Summarizer.Backend {
	case config.BackendHuggingFace:
		return hf.NewSummarizer(cfg.Summarizer.Endpoint, cfg.Summarizer.Model, cfg.Summarizer.APIKey, cfg.Summarizer.MaxRetries), nil
	case config.BackendOpenAI:
		return llm.NewOpenAISummarizer(cfg.Summarizer.OpenAIKey, cfg.Summarizer.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("app: unknown summarizer backend %q", cfg.Summarizer.Backend)
	}
}
