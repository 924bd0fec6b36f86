// Package export writes the rendered landing page to disk for static hosting.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/holistic-man/pagina-guia/internal/observability"
)

// IndexFile is the name of the exported document.
const IndexFile = "index.html"

// ErrEmptyDocument is returned when there is nothing to write.
var ErrEmptyDocument = errors.New("export: empty document")

// Write stores doc as dir/index.html, creating dir when needed. The file is
// replaced atomically so a concurrent reader never sees a partial page.
func Write(ctx context.Context, dir string, doc []byte) (string, error) {
	if len(doc) == 0 {
		return "", ErrEmptyDocument
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, IndexFile)
	if err := atomic.WriteFile(path, bytes.NewReader(doc)); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}

	observability.FromContext(ctx).Info("page exported",
		zap.String("path", path),
		zap.Int("bytes", len(doc)),
	)
	return path, nil
}
