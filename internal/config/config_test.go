package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/transfermarkt"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oppstrength.json5")
	err := os.WriteFile(path, []byte(`{
		season: 2024,
		timeout_seconds: 10,
		lenient: true,
		telemetry: {
			otlp: { traces: { http_endpoint: "http://localhost:4318" } },
		},
	}`), 0600)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "oppstrength.local.json5"), []byte(`{ season: 2023, escape: true }`), 0600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 2023, cfg.Season)
	require.Equal(t, 10, cfg.TimeoutSeconds)
	require.True(t, cfg.Lenient)
	require.True(t, cfg.Escape)
	require.Equal(t, "http://localhost:4318", cfg.Telemetry.Otlp.Traces.HttpEndpoint)

	// unset fields fall back to defaults
	require.Equal(t, transfermarkt.DefaultBaseUrl, cfg.BaseUrl)
	require.Equal(t, transfermarkt.DefaultUserAgent, cfg.UserAgent)
	require.Equal(t, 500, cfg.PacingMs)
	require.Equal(t, ".", cfg.OutputDir)

	opts, err := cfg.ClientOptions()
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, opts.Timeout)
	require.Equal(t, 500*time.Millisecond, opts.Pacing)
	require.Equal(t, 2023, opts.Season)
	require.True(t, opts.CloudflareBypass)
	require.True(t, opts.Lenient)
	require.Nil(t, opts.Output)

	require.True(t, cfg.PipelineOptions().Report.Escape)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestClientOptionsDumpDir(t *testing.T) {
	cfg := Defaults()
	cfg.DumpDir = filepath.Join(t.TempDir(), "dumps")
	cfg.DisableCloudflareBypass = true

	opts, err := cfg.ClientOptions()
	require.NoError(t, err)
	require.NotNil(t, opts.Output)
	require.False(t, opts.CloudflareBypass)
	require.DirExists(t, cfg.DumpDir)
	require.Equal(t, cfg.DumpDir, filepath.Dir(opts.Output.(telemetry.FilesystemOutput).Dir()))

	require.Equal(t, transfermarkt.DefaultTimeout, time.Duration(Defaults().TimeoutSeconds)*time.Second)
}

func TestClientOptionsDumpDirSharedWithReports(t *testing.T) {
	cfg := Defaults()
	cfg.OutputDir = t.TempDir()
	cfg.DumpDir = cfg.OutputDir
	written := filepath.Join(cfg.OutputDir, "europa_league_opponents.html")
	err := os.WriteFile(written, []byte("<html></html>"), 0600)
	require.NoError(t, err)

	_, err = cfg.ClientOptions()
	require.NoError(t, err)
	require.FileExists(t, written)
}
