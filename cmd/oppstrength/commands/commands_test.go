package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"oppstrength/internal/components/telemetry/telemetrytest"
	"oppstrength/internal/config"
	"oppstrength/internal/report"
	"oppstrength/internal/transfermarkt"

	"github.com/stretchr/testify/require"
)

func TestReportFromSavedPages(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "oppstrength.json5")
	err := os.WriteFile(configFile, []byte(`{ escape: true }`), 0600)
	require.NoError(t, err)

	outDir := filepath.Join(dir, "reports")
	rootCmd.SetArgs([]string{
		"report",
		"--config", configFile,
		"--competition", "EL",
		"--listing", "../../../internal/transfermarkt/testdata/participants.html",
		"--fixtures", "../../../internal/transfermarkt/testdata/fixtures.html",
		"--out", outDir,
	})
	err = execute(context.Background())
	require.NoError(t, err)

	require.True(t, cfg.Escape)
	require.Equal(t, outDir, cfg.OutputDir)

	contents, err := os.ReadFile(filepath.Join(outDir, "europa_league_opponents.html"))
	require.NoError(t, err)
	doc := string(contents)
	require.Contains(t, doc, "<h2>Europa League Average Opponent Market Values</h2>")
	require.Less(t, strings.Index(doc, "Kairat Almaty"), strings.Index(doc, "FC Copenhagen</td>"))
}

func TestFailedReportFlushesTraces(t *testing.T) {
	var (
		mutex   sync.Mutex
		exports int
	)
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/traces" {
			mutex.Lock()
			exports++
			mutex.Unlock()
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	dir := t.TempDir()
	configFile := filepath.Join(dir, "oppstrength.json5")
	err := os.WriteFile(configFile, []byte(fmt.Sprintf(
		`{ telemetry: { otlp: { traces: { http_endpoint: %q } } } }`,
		collector.URL+"/v1/traces",
	)), 0600)
	require.NoError(t, err)

	rootCmd.SetArgs([]string{
		"report",
		"--config", configFile,
		"--competition", "CL",
		"--listing", filepath.Join(dir, "missing.html"),
		"--fixtures", "../../../internal/transfermarkt/testdata/fixtures.html",
		"--out", dir,
	})
	err = execute(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NoFileExists(t, filepath.Join(dir, "champions_league_opponents.html"))

	// the failed run's spans were exported before execute returned
	mutex.Lock()
	defer mutex.Unlock()
	require.Positive(t, exports)
}

func TestRewriteReports(t *testing.T) {
	cfg = config.Defaults()
	cfg.OutputDir = t.TempDir()

	src := transfermarkt.FileSource{
		ParticipantsPath: "../../../internal/transfermarkt/testdata/participants.html",
		FixturesPath:     "../../../internal/transfermarkt/testdata/fixtures.html",
		Tel:              &telemetrytest.Recorder{},
	}
	tel := &telemetrytest.Recorder{}
	rewriteReports(context.Background(), src, transfermarkt.Competitions, tel)
	require.Empty(t, tel.Broken)

	for _, comp := range transfermarkt.Competitions {
		require.FileExists(t, filepath.Join(cfg.OutputDir, report.Filename(comp.Name)))
	}
}
