package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for name, want := range cases {
		logger, err := NewLogger(name)
		require.NoError(t, err, name)
		require.True(t, logger.Core().Enabled(want), name)
		if want > zapcore.DebugLevel {
			require.False(t, logger.Core().Enabled(want-1), name)
		}
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromContext(nil))

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func newRouter(logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(InjectLogger(logger))
	r.Use(RequestLogger())
	r.Use(Recoverer())
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Info("inside handler")
		_, _ = w.Write([]byte("item"))
	})
	r.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	return r
}

func TestRequestLoggerRecordsRoute(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	req.RemoteAddr = "203.0.113.7:5000"
	newRouter(zap.New(core)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	inner := logs.FilterMessage("inside handler").All()
	require.Len(t, inner, 1)
	require.Equal(t, "/items/42", inner[0].ContextMap()["path"])

	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	require.Equal(t, "/items/{id}", fields["route"])
	require.Equal(t, "203.0.113.7", fields["remote_ip"])
	require.Equal(t, http.MethodGet, fields["method"])
	require.EqualValues(t, http.StatusOK, fields["status"])
	require.EqualValues(t, 4, fields["bytes"])
}

func TestRecovererAnswers500(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	rec := httptest.NewRecorder()
	newRouter(zap.New(core)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 1)
	require.Equal(t, zapcore.ErrorLevel, done[0].Level)
}
