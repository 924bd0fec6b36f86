package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/holistic-man/pagina-guia/internal/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(context.Background(), t, args...)
}

func executeContext(ctx context.Context, t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		envFile = ".env"
		exportDir = ""
		serveAddr = ""
	})
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "landing version dev\n", out)
}

func TestExportCommandWritesIndex(t *testing.T) {
	t.Setenv("LANDING_LOG_LEVEL", "error")
	t.Setenv("LANDING_SITE_TITLE", "ServicePro | Inicio")
	t.Setenv("LANDING_SITE_URL", "https://servicepro.com/")
	dir := filepath.Join(t.TempDir(), "site")

	out, err := execute(t, "export", "--env-file=", "--out", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, export.IndexFile)
	require.Equal(t, "wrote "+path+"\n", out)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, "ServicePro | Inicio", doc.Find("title").Text())
	require.Equal(t, 1, doc.Find("#contact").Length())
	require.Equal(t, "https://servicepro.com/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, 5, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestExportCommandUsesConfiguredDir(t *testing.T) {
	t.Setenv("LANDING_LOG_LEVEL", "error")
	dir := filepath.Join(t.TempDir(), "from-env")
	t.Setenv("LANDING_OUT_DIR", dir)

	out, err := execute(t, "export", "--env-file=")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), filepath.Join(dir, export.IndexFile)))
}

func TestInvalidConfigFailsCommand(t *testing.T) {
	t.Setenv("LANDING_HTTP_READ_TIMEOUT", "-1s")

	_, err := execute(t, "export", "--env-file=", "--out", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "HTTP.ReadTimeout")
}

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServeCommandShutsDownWhenContextEnds(t *testing.T) {
	t.Setenv("LANDING_LOG_LEVEL", "error")
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := executeContext(ctx, t, "serve", "--env-file=", "--addr", addr)
		done <- err
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "ok"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after the context was cancelled")
	}

	_, err := http.Get("http://" + addr + "/healthz")
	require.Error(t, err)
}

func TestServeCommandReportsListenFailure(t *testing.T) {
	t.Setenv("LANDING_LOG_LEVEL", "error")

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	done := make(chan error, 1)
	go func() {
		_, err := execute(t, "serve", "--env-file=", "--addr", busy.Addr().String())
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		require.Contains(t, err.Error(), "address already in use")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not report the occupied address")
	}
}
