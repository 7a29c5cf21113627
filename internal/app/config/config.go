package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr        string        `yaml:"http_addr"`
	WebRouter       string        `yaml:"web_router"`
	CORSAllowOrigin string        `yaml:"cors_allow_origin"`
	InternalToken   string        `yaml:"internal_token,omitempty"`
	DatasetSource   string        `yaml:"dataset_source"`
	DatasetPath     string        `yaml:"dataset_path"`
	DatasetSheet    string        `yaml:"dataset_sheet,omitempty"`
	DatabaseURL     string        `yaml:"database_url,omitempty"`
	SQLitePath      string        `yaml:"sqlite_path,omitempty"`
	ListingsTable   string        `yaml:"listings_table"`
	LLMProvider     string        `yaml:"llm_provider"`
	LLMTimeout      time.Duration `yaml:"llm_timeout"`
	OllamaURL       string        `yaml:"ollama_url"`
	OllamaModel     string        `yaml:"ollama_model"`
	OpenAIBaseURL   string        `yaml:"openai_base_url"`
	OpenAIAPIKey    string        `yaml:"openai_api_key,omitempty"`
	OpenAIModel     string        `yaml:"openai_model"`
}

// Load reads the configuration from v, which already has env, flags and
// the optional config file wired in. A nil v reads the process environment.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	v.AutomaticEnv()
	e := loader{v: v}

	cfg := Config{
		HTTPAddr:        e.env("HTTP_ADDR", ":8080"),
		WebRouter:       strings.ToLower(e.env("WEB_ROUTER", "genre")),
		CORSAllowOrigin: e.env("CORS_ALLOW_ORIGIN", "*"),
		InternalToken:   e.env("INTERNAL_TOKEN", ""),
		DatasetSource:   strings.ToLower(e.env("DATASET_SOURCE", "xlsx")),
		DatasetPath:     e.env("DATASET_PATH", "games.xlsx"),
		DatasetSheet:    e.env("DATASET_SHEET", ""),
		DatabaseURL:     e.env("DATABASE_URL", ""),
		SQLitePath:      e.env("SQLITE_PATH", "games.db"),
		ListingsTable:   e.env("LISTINGS_TABLE", "game_listings"),
		LLMProvider:     strings.ToLower(e.env("LLM_PROVIDER", "ollama")),
		OllamaURL:       e.env("OLLAMA_URL", "http://127.0.0.1:11434"),
		OllamaModel:     e.env("OLLAMA_MODEL", "llama3"),
		OpenAIBaseURL:   e.env("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:    e.env("OPENAI_API_KEY", ""),
		OpenAIModel:     e.env("OPENAI_MODEL", "gpt-4o-mini"),
	}

	timeout, err := time.ParseDuration(e.env("LLM_TIMEOUT", "2m"))
	if err != nil {
		return Config{}, fmt.Errorf("LLM_TIMEOUT: %w", err)
	}
	cfg.LLMTimeout = timeout

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func MustLoad(v *viper.Viper) Config {
	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func (c Config) validate() error {
	switch c.WebRouter {
	case "genre", "query":
	default:
		return fmt.Errorf("WEB_ROUTER must be genre or query, got %q", c.WebRouter)
	}
	switch c.DatasetSource {
	case "xlsx":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("missing env DATABASE_URL for DATASET_SOURCE=postgres")
		}
	case "sqlite":
	default:
		return fmt.Errorf("DATASET_SOURCE must be xlsx, postgres or sqlite, got %q", c.DatasetSource)
	}
	switch c.LLMProvider {
	case "ollama":
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("missing env OPENAI_API_KEY for LLM_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("LLM_PROVIDER must be ollama or openai, got %q", c.LLMProvider)
	}
	return nil
}

type loader struct {
	v *viper.Viper
}

// env resolves k through viper, so HTTP_ADDR may come from the environment,
// a flag bound as "http_addr" or the http_addr key of a config file.
func (l loader) env(k, def string) string {
	if v := strings.TrimSpace(l.v.GetString(k)); v != "" {
		return v
	}
	return def
}
