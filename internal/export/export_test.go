package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/holistic-man/pagina-guia/internal/landing"
	"github.com/holistic-man/pagina-guia/internal/observability"
	"github.com/holistic-man/pagina-guia/internal/ui/render"
)

func TestWriteCreatesDirectoryAndIndex(t *testing.T) {
	t.Parallel()

	doc, err := render.HTML(landing.Page(), render.Options{})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "dist")
	path, err := Write(context.Background(), dir, doc)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, IndexFile), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, doc, written)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Write(context.Background(), dir, []byte("<p>old</p>"))
	require.NoError(t, err)
	path, err := Write(context.Background(), dir, []byte("<p>new</p>"))
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<p>new</p>", string(written))
}

func TestWriteRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := Write(context.Background(), t.TempDir(), nil)
	require.ErrorIs(t, err, ErrEmptyDocument)
}

func TestWriteHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := filepath.Join(t.TempDir(), "out")
	_, err := Write(ctx, dir, []byte("x"))
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(dir)
	require.True(t, os.IsNotExist(statErr))
}

func TestWriteFailsWhenDirIsAFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Write(context.Background(), file, []byte("<p>x</p>"))
	require.Error(t, err)
	require.Contains(t, err.Error(), file)
}

func TestWriteLogsExport(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	ctx := observability.WithLogger(context.Background(), zap.New(core))

	path, err := Write(ctx, t.TempDir(), []byte("<p>x</p>"))
	require.NoError(t, err)

	entries := logs.FilterMessage("page exported").All()
	require.Len(t, entries, 1)
	require.Equal(t, path, entries[0].ContextMap()["path"])
	require.EqualValues(t, 8, entries[0].ContextMap()["bytes"])
}
