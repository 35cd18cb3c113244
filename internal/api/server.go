// Package api serves keyword extraction over HTTP.
//
// Routes:
//
//	GET  /api/health
//	POST /api/extract-keywords  {"text": "...", "top_n": 10}
//	GET  /metrics               (when metrics are enabled)
//
// Every response is JSON and carries an X-Request-ID header. Errors use
// the envelope {"error": "...", "status": "error"}.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/config"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/logging"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/metrics"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/keywords"
)

// cacheKey identifies an extraction result. topN is the resolved value, so
// requests that omit top_n share entries with explicit default requests.
type cacheKey struct {
	text string
	topN int
}

var ginMode sync.Once

// Server is the HTTP front end of an Extractor.
type Server struct {
	cfg       config.ServerConfig
	extractor *keywords.Extractor
	topN      int // resolved default for invalid or missing top_n
	logger    *slog.Logger
	metrics   *metrics.Metrics
	cache     *lru.Cache[cacheKey, []keywords.Keyword]
	limiter   *rate.Limiter

	engine     *gin.Engine
	httpServer *http.Server
}

// Deps are the collaborators of a Server. Logger and Metrics may be nil.
type Deps struct {
	Extractor *keywords.Extractor
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// New builds a Server from cfg. cfg must have passed Validate.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Extractor == nil {
		return nil, errors.New("api: nil extractor")
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Server{
		cfg:       cfg.Server,
		extractor: deps.Extractor,
		topN:      cfg.Extraction.DefaultTopN,
		logger:    logger.With(slog.String(logging.FieldComponent, "api")),
		metrics:   deps.Metrics,
	}
	if s.topN <= 0 {
		s.topN = keywords.DefaultTopN
	}

	if cfg.Cache.Size > 0 {
		cache, err := lru.New[cacheKey, []keywords.Keyword](cfg.Cache.Size)
		if err != nil {
			return nil, fmt.Errorf("api: result cache: %w", err)
		}
		s.cache = cache
	}
	if cfg.Server.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
	}

	ginMode.Do(func() { gin.SetMode(gin.ReleaseMode) })
	s.engine = gin.New()
	s.engine.HandleMethodNotAllowed = true
	s.engine.Use(s.requestID(), s.accessLog(), s.recovery())
	if c, ok := corsConfig(cfg.Server.CORSOrigins); ok {
		s.engine.Use(cors.New(c))
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.engine,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}
	return s, nil
}

func (s *Server) setupRoutes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/extract-keywords", s.rateLimit(), s.limitBody(), s.handleExtract)

	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	s.engine.NoRoute(func(c *gin.Context) { abortWithError(c, errNotFound) })
	s.engine.NoMethod(func(c *gin.Context) { abortWithError(c, errNotAllowed) })
}

// corsConfig returns the CORS policy for origins. A "*" entry allows every
// origin; an empty list disables CORS handling.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestIDHeader}
	c.ExposeHeaders = []string{requestIDHeader}
	return c, true
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ListenAndServe listens on the configured address and serves until ctx is
// canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled. In-flight requests
// get up to the configured shutdown timeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("http server listening", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("http server shutting down", slog.Duration("timeout", timeout))
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
