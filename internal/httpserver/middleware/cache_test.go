package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("body"))
	})
}

func TestETagIsStableAndWeak(t *testing.T) {
	t.Parallel()

	tag := ETag([]byte("<p>hola</p>"))
	require.Equal(t, tag, ETag([]byte("<p>hola</p>")))
	require.NotEqual(t, tag, ETag([]byte("<p>adios</p>")))
	require.Len(t, tag, 20)
	require.True(t, strings.HasPrefix(tag, `W/"`))
	require.True(t, strings.HasSuffix(tag, `"`))
}

func TestWeakTagMatchesEitherForm(t *testing.T) {
	t.Parallel()

	tag := ETag([]byte("x"))
	strong := strings.TrimPrefix(tag, "W/")
	for _, header := range []string{tag, strong} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("If-None-Match", header)
		rec := httptest.NewRecorder()
		Cacheable(tag, time.Minute)(okHandler()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotModified, rec.Code, header)
	}
}

func TestCacheableSetsHeaders(t *testing.T) {
	t.Parallel()

	h := Cacheable(`"abc"`, 90*time.Second)(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body", rec.Body.String())
	require.Equal(t, `"abc"`, rec.Header().Get("ETag"))
	require.Equal(t, "public, max-age=90", rec.Header().Get("Cache-Control"))
	require.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}

func TestCacheableWithoutMaxAgeRevalidates(t *testing.T) {
	t.Parallel()

	h := Cacheable(`"abc"`, 0)(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestCacheableNotModified(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		header string
		want   int
	}{
		"exact":      {header: `"abc"`, want: http.StatusNotModified},
		"weak":       {header: `W/"abc"`, want: http.StatusNotModified},
		"list":       {header: `"zzz", "abc"`, want: http.StatusNotModified},
		"wildcard":   {header: "*", want: http.StatusNotModified},
		"mismatch":   {header: `"zzz"`, want: http.StatusOK},
		"unquoted":   {header: "abc", want: http.StatusOK},
		"whitespace": {header: "   ", want: http.StatusOK},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("If-None-Match", tc.header)
			rec := httptest.NewRecorder()
			Cacheable(`"abc"`, time.Minute)(okHandler()).ServeHTTP(rec, req)

			require.Equal(t, tc.want, rec.Code)
			require.Equal(t, `"abc"`, rec.Header().Get("ETag"))
			if tc.want == http.StatusNotModified {
				require.Empty(t, rec.Body.String())
			}
		})
	}
}
