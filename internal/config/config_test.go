package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/keywords"
)

// isolate points the default search path and dotenv file at an empty
// directory so the developer's own settings do not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Extraction.DefaultTopN)
	assert.Equal(t, 1000, cfg.Extraction.MaxFeatures)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "keywords.yaml", `
server:
  port: 8080
  read_timeout: 20s
  cors_origins:
    - https://example.com
extraction:
  method: textrank
  default_top_n: 5
log:
  format: json
`)

	cfg, err := Load(Options{File: path, EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "textrank", cfg.Extraction.Method)
	assert.Equal(t, 5, cfg.Extraction.DefaultTopN)
	assert.Equal(t, "json", cfg.Log.Format)
	// untouched keys keep their defaults
	assert.Equal(t, 1000, cfg.Extraction.MaxFeatures)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadSearchesHomeConfigDir(t *testing.T) {
	dir := isolate(t)
	confDir := filepath.Join(dir, ".config", "keywords")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	writeFile(t, confDir, "keywords.yaml", "server:\n  port: 6000\n")

	cfg, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.Port)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "keywords.yaml", "server:\n  port: 8080\n")
	t.Setenv("KEYWORDS_SERVER_PORT", "9090")
	t.Setenv("KEYWORDS_SERVER_CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("KEYWORDS_EXTRACTION_RETAIN_IDF", "false")

	cfg, err := Load(Options{File: path, EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Extraction.RetainIDF)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("KEYWORDS_SERVER_PORT", "9090")
	t.Setenv("KEYWORDS_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 5000, "")
	flags.String("log-level", "info", "")
	flags.String("method", "tfidf", "")
	require.NoError(t, flags.Parse([]string{"--port=7070", "--method=textrank"}))

	cfg, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env"), Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "textrank", cfg.Extraction.Method)
	// unset flag does not mask the environment
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvFile(t *testing.T) {
	dir := isolate(t)
	envFile := writeFile(t, dir, ".env", "KEYWORDS_CACHE_SIZE=7\n")
	t.Cleanup(func() { os.Unsetenv("KEYWORDS_CACHE_SIZE") })

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Cache.Size)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)
	noEnv := filepath.Join(dir, "missing.env")

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(Options{File: filepath.Join(dir, "nope.yaml"), EnvFile: noEnv})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load config")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "server: [unclosed\n")
		_, err := Load(Options{File: path, EnvFile: noEnv})
		require.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeFile(t, dir, "invalid.yaml", "extraction:\n  method: bm25\n")
		_, err := Load(Options{File: path, EnvFile: noEnv})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extraction.method")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "server.max_body_bytes"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, "timeouts"},
		{"negative rate", func(c *Config) { c.Server.RateLimit = -1 }, "server.rate_limit"},
		{"zero burst", func(c *Config) { c.Server.RateBurst = 0 }, "server.rate_burst"},
		{"zero top n", func(c *Config) { c.Extraction.DefaultTopN = 0 }, "extraction.default_top_n"},
		{"zero max features", func(c *Config) { c.Extraction.MaxFeatures = 0 }, "extraction.max_features"},
		{"zero min length", func(c *Config) { c.Extraction.MinTermLength = 0 }, "extraction.min_term_length"},
		{"negative cache", func(c *Config) { c.Cache.Size = -1 }, "cache.size"},
		{"unknown lemmatizer", func(c *Config) { c.Extraction.Lemmatizer = "wordnet" }, "extraction.lemmatizer"},
		{"unknown method", func(c *Config) { c.Extraction.Method = "bm25" }, "extraction.method"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"rate limit disabled ignores burst", func(c *Config) { c.Server.RateLimit = 0; c.Server.RateBurst = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		e, err := Default().Extraction.NewExtractor()
		require.NoError(t, err)
		assert.Equal(t, keywords.TFIDF, e.Method())
		assert.Equal(t, []string{"cat", "sat", "mat", "cat", "happy"},
			e.Terms("The cat sat on the mat. The cat was happy."))
	})

	t.Run("stopwords file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "stop.txt", "# custom\ncat\n")
		ext := Default().Extraction
		ext.StopwordsFile = path
		ext.Method = "textrank"

		e, err := ext.NewExtractor()
		require.NoError(t, err)
		assert.Equal(t, keywords.TextRank, e.Method())
		assert.Equal(t, []string{"the", "sat", "the", "mat", "the", "was", "happy"},
			e.Terms("The cat sat on the mat. The cat was happy."))
	})

	t.Run("missing stopwords file", func(t *testing.T) {
		t.Parallel()
		ext := Default().Extraction
		ext.StopwordsFile = filepath.Join(t.TempDir(), "none.txt")
		_, err := ext.NewExtractor()
		require.Error(t, err)
	})

	t.Run("unknown lemmatizer", func(t *testing.T) {
		t.Parallel()
		ext := Default().Extraction
		ext.Lemmatizer = "wordnet"
		_, err := ext.NewExtractor()
		require.Error(t, err)
	})
}
