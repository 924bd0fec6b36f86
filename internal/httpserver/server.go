package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	custommw "github.com/holistic-man/pagina-guia/internal/httpserver/middleware"
	"github.com/holistic-man/pagina-guia/internal/landing"
	"github.com/holistic-man/pagina-guia/internal/observability"
	"github.com/holistic-man/pagina-guia/internal/ui"
	"github.com/holistic-man/pagina-guia/internal/ui/render"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
)

// Config holds runtime options for the preview server.
type Config struct {
	Address        string
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	CacheMaxAge    time.Duration
	Document       render.Options
	// Page overrides the served tree; the landing page is used when nil.
	Page   func() ui.Node
	Logger *zap.Logger
}

// New constructs the HTTP server with its middleware stack. The page is
// rendered once up front; every request writes those same bytes.
func New(cfg Config) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	page := cfg.Page
	if page == nil {
		page = landing.Page
	}

	tree := page()
	body, err := render.HTML(tree, cfg.Document)
	if err != nil {
		return nil, fmt.Errorf("httpserver: pre-render page: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLogger(logger))
	router.Use(observability.RequestLogger())
	router.Use(observability.Recoverer())
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, defaultRequestTimeout)))

	router.Get("/healthz", HealthHandler)

	pageHandler := templ.Handler(render.Static(body))
	cached := router.With(custommw.Cacheable(custommw.ETag(body), cfg.CacheMaxAge))
	cached.Method(http.MethodGet, "/", pageHandler)
	cached.Method(http.MethodHead, "/", pageHandler)

	return &http.Server{
		Addr:              firstNonEmpty(cfg.Address, ":8080"),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout:      durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       durationOr(cfg.IdleTimeout, defaultIdleTimeout),
	}, nil
}

// HealthHandler answers liveness probes.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
