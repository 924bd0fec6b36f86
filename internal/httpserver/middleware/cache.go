package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ETag returns a weak entity tag for body. The tag is shared by the identity
// and compressed representations, so it must not claim byte equality.
func ETag(body []byte) string {
	return fmt.Sprintf(`W/"%016x"`, xxhash.Sum64(body))
}

// Cacheable applies Cache-Control, Vary and ETag handling for a response whose
// body never changes for the lifetime of the process. Matching If-None-Match
// requests short-circuit with 304.
func Cacheable(etag string, maxAge time.Duration) func(http.Handler) http.Handler {
	cacheControl := "no-cache"
	if seconds := int(maxAge / time.Second); seconds > 0 {
		cacheControl = fmt.Sprintf("public, max-age=%d", seconds)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Accept-Encoding")
			w.Header().Set("Cache-Control", cacheControl)
			if etag != "" {
				w.Header().Set("ETag", etag)
				if matchesETag(r.Header.Get("If-None-Match"), etag) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func matchesETag(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	// If-None-Match uses weak comparison.
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}
