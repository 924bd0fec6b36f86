package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/holistic-man/pagina-guia/internal/httpserver"
	"github.com/holistic-man/pagina-guia/internal/ui"
	"github.com/holistic-man/pagina-guia/internal/ui/render"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithPage serves a custom tree instead of the landing page.
func WithPage(page func() ui.Node) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Page = page
	}
}

// WithCacheMaxAge overrides the Cache-Control max-age.
func WithCacheMaxAge(d time.Duration) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CacheMaxAge = d
	}
}

// WithDocument overrides the document shell options.
func WithDocument(opts render.Options) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Document = opts
	}
}

// WithLogger wires a custom logger, e.g. one built with zaptest.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// NewServer constructs an httptest server running the preview HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:     ":0",
		CacheMaxAge: time.Hour,
		Logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
