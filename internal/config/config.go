// Package config loads service and CLI settings.
//
// Sources, lowest precedence first: built-in defaults, the config file
// (keywords.yaml in the working directory or $HOME/.config/keywords, or an
// explicit path), environment variables prefixed KEYWORDS_ (dots become
// underscores, so server.port is KEYWORDS_SERVER_PORT), and command-line
// flags that were explicitly set. A .env file in the working directory is
// loaded into the environment first; variables already set are kept.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/keywords"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/lemma"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/stopwords"
)

const (
	envPrefix  = "KEYWORDS"
	configName = "keywords"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	RateLimit       float64       `mapstructure:"rate_limit"` // requests per second; 0 disables limiting
	RateBurst       int           `mapstructure:"rate_burst"`
}

type ExtractionConfig struct {
	DefaultTopN   int    `mapstructure:"default_top_n"`
	MaxFeatures   int    `mapstructure:"max_features"`
	MinTermLength int    `mapstructure:"min_term_length"`
	Lemmatizer    string `mapstructure:"lemmatizer"`
	Method        string `mapstructure:"method"`
	StopwordsFile string `mapstructure:"stopwords_file"`
	RetainIDF     bool   `mapstructure:"retain_idf"`
}

type CacheConfig struct {
	Size int `mapstructure:"size"` // entries; 0 disables the result cache
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the complete application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
			CORSOrigins:     []string{"*"},
			RateLimit:       50,
			RateBurst:       100,
		},
		Extraction: ExtractionConfig{
			DefaultTopN:   keywords.DefaultTopN,
			MaxFeatures:   keywords.DefaultMaxFeatures,
			MinTermLength: keywords.DefaultMinTermLength,
			Lemmatizer:    lemma.NameDictionary,
			Method:        keywords.TFIDF.String(),
			RetainIDF:     true,
		},
		Cache:   CacheConfig{Size: 1024},
		Log:     LogConfig{Level: "info", Format: "console"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// FlagKeys maps command-line flag names to configuration keys. Load binds
// every flag of this table present in the flag set and explicitly set.
var FlagKeys = map[string]string{
	"host":       "server.host",
	"port":       "server.port",
	"top-n":      "extraction.default_top_n",
	"method":     "extraction.method",
	"lemmatizer": "extraction.lemmatizer",
	"stopwords":  "extraction.stopwords_file",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Options controls where Load looks for settings.
type Options struct {
	File    string         // explicit config file; empty searches the default locations
	EnvFile string         // dotenv file; empty means ".env"
	Flags   *pflag.FlagSet // optional
}

// Load builds a Config from all sources and validates it.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load config: env file %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/keywords")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("load config: bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.rate_burst", d.Server.RateBurst)

	v.SetDefault("extraction.default_top_n", d.Extraction.DefaultTopN)
	v.SetDefault("extraction.max_features", d.Extraction.MaxFeatures)
	v.SetDefault("extraction.min_term_length", d.Extraction.MinTermLength)
	v.SetDefault("extraction.lemmatizer", d.Extraction.Lemmatizer)
	v.SetDefault("extraction.method", d.Extraction.Method)
	v.SetDefault("extraction.stopwords_file", d.Extraction.StopwordsFile)
	v.SetDefault("extraction.retain_idf", d.Extraction.RetainIDF)

	v.SetDefault("cache.size", d.Cache.Size)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("server.port: %d out of range", c.Server.Port)
	case c.Server.MaxBodyBytes <= 0:
		return fmt.Errorf("server.max_body_bytes: must be positive, got %d", c.Server.MaxBodyBytes)
	case c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0:
		return errors.New("server timeouts: must not be negative")
	case c.Server.RateLimit < 0:
		return fmt.Errorf("server.rate_limit: must not be negative, got %g", c.Server.RateLimit)
	case c.Server.RateLimit > 0 && c.Server.RateBurst <= 0:
		return fmt.Errorf("server.rate_burst: must be positive when rate limiting, got %d", c.Server.RateBurst)
	case c.Extraction.DefaultTopN <= 0:
		return fmt.Errorf("extraction.default_top_n: must be positive, got %d", c.Extraction.DefaultTopN)
	case c.Extraction.MaxFeatures <= 0:
		return fmt.Errorf("extraction.max_features: must be positive, got %d", c.Extraction.MaxFeatures)
	case c.Extraction.MinTermLength <= 0:
		return fmt.Errorf("extraction.min_term_length: must be positive, got %d", c.Extraction.MinTermLength)
	case c.Cache.Size < 0:
		return fmt.Errorf("cache.size: must not be negative, got %d", c.Cache.Size)
	}

	if _, err := lemma.ByName(c.Extraction.Lemmatizer); err != nil {
		return fmt.Errorf("extraction.lemmatizer: %w", err)
	}
	if _, err := keywords.ParseMethod(c.Extraction.Method); err != nil {
		return fmt.Errorf("extraction.method: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "text", "json", "":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ExtractorOptions translates the extraction settings into keywords options.
// A configured stopwords file replaces the English list.
func (e ExtractionConfig) ExtractorOptions() ([]keywords.Option, error) {
	lem, err := lemma.ByName(e.Lemmatizer)
	if err != nil {
		return nil, err
	}
	method, err := keywords.ParseMethod(e.Method)
	if err != nil {
		return nil, err
	}

	opts := []keywords.Option{
		keywords.WithLemmatizer(lem),
		keywords.WithMethod(method),
		keywords.WithDefaultTopN(e.DefaultTopN),
		keywords.WithMaxFeatures(e.MaxFeatures),
		keywords.WithMinTermLength(e.MinTermLength),
		keywords.WithRetainIDF(e.RetainIDF),
	}

	if e.StopwordsFile != "" {
		set, err := stopwords.LoadFile(e.StopwordsFile)
		if err != nil {
			return nil, fmt.Errorf("stopwords: %w", err)
		}
		opts = append(opts, keywords.WithStopwords(set))
	}
	return opts, nil
}

// NewExtractor builds an extractor from the extraction settings.
func (e ExtractionConfig) NewExtractor() (*keywords.Extractor, error) {
	opts, err := e.ExtractorOptions()
	if err != nil {
		return nil, err
	}
	return keywords.New(opts...), nil
}
