package config

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/pipeline"
	"oppstrength/internal/report"
	"oppstrength/internal/transfermarkt"
	"oppstrength/lib/configutil"
)

// Filename is searched for from the working directory upwards, a sibling
// oppstrength.local.json5 overrides its fields.
const Filename = "oppstrength.json5"

type Config struct {
	BaseUrl        string `json:"base_url"`
	Season         int    `json:"season"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	PacingMs       int    `json:"pacing_ms"`
	// DisableCloudflareBypass uses a plain transport instead of the browser-like one.
	DisableCloudflareBypass bool `json:"disable_cloudflare_bypass"`

	OutputDir string `json:"output_dir"`
	// DumpDir receives every http request and response when set, each run
	// writes into its own run-* directory inside it.
	DumpDir string `json:"dump_dir"`

	Lenient       bool    `json:"lenient"`
	Escape        bool    `json:"escape"`
	LinkNames     bool    `json:"link_names"`
	LinkThreshold float64 `json:"link_threshold"`

	Telemetry telemetry.Config `json:"telemetry"`
}

func Defaults() Config {
	return Config{
		BaseUrl:        transfermarkt.DefaultBaseUrl,
		Season:         transfermarkt.DefaultSeason,
		UserAgent:      transfermarkt.DefaultUserAgent,
		TimeoutSeconds: int(transfermarkt.DefaultTimeout / time.Second),
		PacingMs:       int(transfermarkt.DefaultPacing / time.Millisecond),
		OutputDir:      ".",
		LinkThreshold:  pipeline.DefaultLinkThreshold,
	}
}

// Load reads the config at path, or searches for Filename when path is empty.
// A missing config is not an error, every unset field takes its default.
func Load(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	if path != "" {
		cfg, err = configutil.ReadConfig[Config](path)
	} else {
		cfg, err = configutil.ReadRecursively[Config](".", Filename)
		if errors.Is(err, os.ErrNotExist) {
			err = nil
		}
	}
	if err != nil {
		return Config{}, err
	}
	return configutil.WithDefaults(cfg, Defaults())
}

func (c Config) ClientOptions() (transfermarkt.Options, error) {
	opts := transfermarkt.Options{
		BaseUrl:          c.BaseUrl,
		UserAgent:        c.UserAgent,
		Season:           c.Season,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		Pacing:           time.Duration(c.PacingMs) * time.Millisecond,
		CloudflareBypass: !c.DisableCloudflareBypass,
		Lenient:          c.Lenient,
	}
	if c.DumpDir != "" {
		output, err := telemetry.NewFilesystemOutput(c.DumpDir)
		if err != nil {
			return transfermarkt.Options{}, err
		}
		slog.Info("dumping http messages", "dir", output.Dir())
		opts.Output = output
	}
	return opts, nil
}

func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		LinkNames:     c.LinkNames,
		LinkThreshold: c.LinkThreshold,
		Report:        report.Options{Escape: c.Escape},
	}
}
