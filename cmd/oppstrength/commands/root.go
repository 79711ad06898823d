package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/config"

	"github.com/spf13/cobra"
)

var (
	configPath  *string
	verbose     *bool
	competition *string
	season      *int
	outDir      *string
	listingFile *string
	fixtureFile *string
	lenient     *bool
	escape      *bool
	linkNames   *bool
	dumpDir     *string
)

var (
	cfg       config.Config
	providers telemetry.Telemetry
)

func init() {
	flags := rootCmd.PersistentFlags()
	configPath = flags.String("config", "", "Config file to read instead of searching for oppstrength.json5.")
	verbose = flags.BoolP("verbose", "v", false, "Log debug reports.")
	competition = flags.StringP("competition", "c", "", "Competition number, code or name, skips the menu.")
	season = flags.Int("season", 0, "Start year of the season whose fixtures are fetched.")
	outDir = flags.StringP("out", "o", "", "Directory the report is written to.")
	listingFile = flags.String("listing", "", "Saved participants page to read instead of fetching it.")
	fixtureFile = flags.String("fixtures", "", "Saved fixtures page to read instead of fetching it.")
	lenient = flags.Bool("lenient", false, "Skip teams with unparseable market values instead of failing.")
	escape = flags.Bool("escape", false, "Escape team names in the report.")
	linkNames = flags.Bool("link-names", false, "Match fixture names to similar listing names.")
	dumpDir = flags.String("dump-dir", "", "Directory every http request and response is dumped to.")
}

var rootCmd = &cobra.Command{
	Use:   "oppstrength",
	Short: "oppstrength ranks the teams of a UEFA competition by the market value of their opponents.",
	Long: `oppstrength scrapes transfermarkt for the market value of every team in a competition
and the season's fixtures, then ranks every team by the average value of its opponents.
Without a subcommand it writes the HTML report.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runReport,
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("season") {
		c.Season = *season
	}
	if flags.Changed("out") {
		c.OutputDir = *outDir
	}
	if flags.Changed("lenient") {
		c.Lenient = *lenient
	}
	if flags.Changed("escape") {
		c.Escape = *escape
	}
	if flags.Changed("link-names") {
		c.LinkNames = *linkNames
	}
	if flags.Changed("dump-dir") {
		c.DumpDir = *dumpDir
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	telemetry.InitSlog(*verbose)

	loaded, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	applyFlags(cmd, &loaded)
	cfg = loaded

	providers, err = telemetry.Setup(cmd.Context(), "oppstrength", cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	return nil
}

// shutdown flushes the spans and metrics of the run, it runs after the command
// whether or not the command failed.
func shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	err := providers.Shutdown(ctx)
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}
	providers = telemetry.Telemetry{}
}

func execute(ctx context.Context) error {
	defer shutdown()
	return rootCmd.ExecuteContext(ctx)
}

func ExecuteContext(ctx context.Context) {
	if err := execute(ctx); err != nil {
		slog.Error("oppstrength failed", "err", err)
		os.Exit(1)
	}
}
