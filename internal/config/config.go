package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "SUPPLYGUARD_CONFIG"
	dataDirEnv       = "SUPPLYGUARD_DATA_DIR"
	hfAPIKeyEnv      = "HF_API_KEY"
	gnewsAPIKeyEnv   = "GNEWS_API_KEY"
	newsdataKeyEnv   = "NEWSDATA_API_KEY"
	openAIKeyEnv     = "OPENAI_API_KEY"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	telegramChatEnv  = "TELEGRAM_CHAT_ID"
)

// Summarizer backends selectable via config.
const (
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"
)

// Config holds all settings consumed by one pipeline run.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Data          DataConfig         `yaml:"data"`
	Sources       SourcesConfig      `yaml:"sources"`
	NER           NERConfig          `yaml:"ner"`
	Geo           GeoConfig          `yaml:"geo"`
	Summarizer    SummarizerConfig   `yaml:"summarizer"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DataConfig points at the directory holding the derived JSON snapshots.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// SourcesConfig groups the news provider settings.
type SourcesConfig struct {
	Query        string `yaml:"query"`
	GNewsAPIKey  string `yaml:"gnewsApiKey"`
	NewsDataKey  string `yaml:"newsdataApiKey"`
	GNewsURL     string `yaml:"gnewsUrl"`
	NewsDataURL  string `yaml:"newsdataUrl"`
	MaxArticles  int    `yaml:"maxArticles"`
	FetchPages   bool   `yaml:"fetchPages"`
	MinBodyChars int    `yaml:"minBodyChars"`
}

// NERConfig describes the optional entity-tagging inference service. An
// empty URL selects the built-in heuristic tagger.
type NERConfig struct {
	InferenceURL string `yaml:"inferenceUrl"`
	APIKey       string `yaml:"apiKey"`
}

// GeoConfig wires the geocoding backend and the region mapping override.
type GeoConfig struct {
	GeocodeURL    string        `yaml:"geocodeUrl"`
	Timeout       time.Duration `yaml:"timeout"`
	RegionMapPath string        `yaml:"regionMapPath"`
}

// SummarizerConfig selects and parameterizes the summarization backend.
type SummarizerConfig struct {
	Backend     string `yaml:"backend"`
	Endpoint    string `yaml:"endpoint"`
	Model       string `yaml:"model"`
	APIKey      string `yaml:"apiKey"`
	OpenAIModel string `yaml:"openaiModel"`
	OpenAIKey   string `yaml:"openaiApiKey"`
	Concurrency int    `yaml:"concurrency"`
	MaxRetries  int    `yaml:"maxRetries"`
}

// NotificationConfig encapsulates the optional Telegram digest.
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires the data required to send alert digests.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   int64  `yaml:"chatId"`
}

// Load reads YAML configuration (if present), applies environment overrides,
// and validates pipeline-wide preconditions before any work begins.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks fatal preconditions. A run without summarization
// credentials would silently produce all-sentinel summaries, so it is
// rejected here rather than mid-run.
func (c Config) Validate() error {
	switch c.Summarizer.Backend {
	case BackendHuggingFace:
		if c.Summarizer.APIKey == "" {
			return fmt.Errorf("config: %s is required for the huggingface summarizer", hfAPIKeyEnv)
		}
	case BackendOpenAI:
		if c.Summarizer.OpenAIKey == "" {
			return fmt.Errorf("config: %s is required for the openai summarizer", openAIKeyEnv)
		}
	default:
		return fmt.Errorf("config: unknown summarizer backend %q", c.Summarizer.Backend)
	}

	if c.Data.Dir == "" {
		return fmt.Errorf("config: data dir must not be empty")
	}
	if c.Summarizer.Concurrency < 1 {
		return fmt.Errorf("config: summarizer concurrency must be >= 1")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(dataDirEnv); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv(hfAPIKeyEnv); v != "" {
		c.Summarizer.APIKey = v
	}
	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.Summarizer.OpenAIKey = v
	}
	if v := os.Getenv(gnewsAPIKeyEnv); v != "" {
		c.Sources.GNewsAPIKey = v
	}
	if v := os.Getenv(newsdataKeyEnv); v != "" {
		c.Sources.NewsDataKey = v
	}
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}
	if v := os.Getenv(telegramChatEnv); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Notifications.Telegram.ChatID = id
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Data.Dir != "" {
		base.Data.Dir = override.Data.Dir
	}

	if override.Sources.Query != "" {
		base.Sources.Query = override.Sources.Query
	}
	if override.Sources.GNewsAPIKey != "" {
		base.Sources.GNewsAPIKey = override.Sources.GNewsAPIKey
	}
	if override.Sources.NewsDataKey != "" {
		base.Sources.NewsDataKey = override.Sources.NewsDataKey
	}
	if override.Sources.GNewsURL != "" {
		base.Sources.GNewsURL = override.Sources.GNewsURL
	}
	if override.Sources.NewsDataURL != "" {
		base.Sources.NewsDataURL = override.Sources.NewsDataURL
	}
	if override.Sources.MaxArticles > 0 {
		base.Sources.MaxArticles = override.Sources.MaxArticles
	}
	if override.Sources.FetchPages {
		base.Sources.FetchPages = true
	}
	if override.Sources.MinBodyChars > 0 {
		base.Sources.MinBodyChars = override.Sources.MinBodyChars
	}

	if override.NER.InferenceURL != "" {
		base.NER.InferenceURL = override.NER.InferenceURL
	}
	if override.NER.APIKey != "" {
		base.NER.APIKey = override.NER.APIKey
	}

	if override.Geo.GeocodeURL != "" {
		base.Geo.GeocodeURL = override.Geo.GeocodeURL
	}
	if override.Geo.Timeout > 0 {
		base.Geo.Timeout = override.Geo.Timeout
	}
	if override.Geo.RegionMapPath != "" {
		base.Geo.RegionMapPath = override.Geo.RegionMapPath
	}

	if override.Summarizer.Backend != "" {
		base.Summarizer.Backend = override.Summarizer.Backend
	}
	if override.Summarizer.Endpoint != "" {
		base.Summarizer.Endpoint = override.Summarizer.Endpoint
	}
	if override.Summarizer.Model != "" {
		base.Summarizer.Model = override.Summarizer.Model
	}
	if override.Summarizer.APIKey != "" {
		base.Summarizer.APIKey = override.Summarizer.APIKey
	}
	if override.Summarizer.OpenAIModel != "" {
		base.Summarizer.OpenAIModel = override.Summarizer.OpenAIModel
	}
	if override.Summarizer.OpenAIKey != "" {
		base.Summarizer.OpenAIKey = override.Summarizer.OpenAIKey
	}
	if override.Summarizer.Concurrency > 0 {
		base.Summarizer.Concurrency = override.Summarizer.Concurrency
	}
	if override.Summarizer.MaxRetries > 0 {
		base.Summarizer.MaxRetries = override.Summarizer.MaxRetries
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != 0 {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Data:    DataConfig{Dir: "data"},
		Sources: SourcesConfig{
			Query:        "supply chain disruption",
			GNewsURL:     "https://gnews.io/api/v4/search",
			NewsDataURL:  "https://newsdata.io/api/1/news",
			MaxArticles:  50,
			MinBodyChars: 200,
		},
		Geo: GeoConfig{
			GeocodeURL: "https://nominatim.openstreetmap.org/search",
			Timeout:    10 * time.Second,
		},
		Summarizer: SummarizerConfig{
			Backend:     BackendHuggingFace,
			Endpoint:    "https://api-inference.huggingface.co/models",
			Model:       "facebook/bart-large-cnn",
			OpenAIModel: "gpt-4o-mini",
			Concurrency: 4,
			MaxRetries:  3,
		},
	}
}
