// client.go contains the HTTP side of scraping transfermarkt, the page parsing lives
// in extract.go so it can run against saved pages as well.

package transfermarkt

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/strength"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_valuations = "client.valuations"
	report_client_fixtures   = "client.fixtures"
)

const (
	DefaultBaseUrl   = "https://www.transfermarkt.com"
	DefaultUserAgent = "Mozilla/5.0"
	DefaultSeason    = 2025
	DefaultTimeout   = 30 * time.Second
	DefaultPacing    = 500 * time.Millisecond
)

type Options struct {
	BaseUrl   string
	UserAgent string
	// Season is the start year of the season whose fixtures are fetched.
	Season int
	// Timeout bounds every request, 0 disables it.
	Timeout time.Duration
	// Pacing is the minimum delay between two requests, 0 disables it.
	Pacing time.Duration
	// CloudflareBypass makes the transport look like a browser's TLS handshake.
	CloudflareBypass bool
	// Lenient skips listing rows with unparseable values instead of failing.
	Lenient bool
	// Output receives request/response dumps when non-nil.
	Output telemetry.MessageOutput
}

func DefaultOptions() Options {
	return Options{
		BaseUrl:          DefaultBaseUrl,
		UserAgent:        DefaultUserAgent,
		Season:           DefaultSeason,
		Timeout:          DefaultTimeout,
		Pacing:           DefaultPacing,
		CloudflareBypass: true,
	}
}

type Client struct {
	http    *resty.Client
	season  int
	lenient bool

	tel telemetry.API
}

func NewClient(opts Options, tel telemetry.API) (*Client, error) {
	tel = telemetry.NewScopedAPI("transfermarkt", tel)

	parsedBaseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("transfermarkt: base url: %w", err)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	if opts.Pacing > 0 {
		// burst of 1 lets the first request through immediately and spaces out the rest
		limiter := rate.NewLimiter(rate.Every(opts.Pacing), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel, opts.Output)

	return &Client{
		http:    httpClient,
		season:  opts.Season,
		lenient: opts.Lenient,
		tel:     tel,
	}, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("unexpected status %s", res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// Valuations fetches the participants page of a competition.
func (c *Client) Valuations(ctx context.Context, competition Competition) (strength.TeamValuation, error) {
	endpoint := competition.ParticipantsPath()
	c.tel.ReportDebug(report_client_valuations, endpoint)

	doc, err := c.fetch(ctx, endpoint)
	if err != nil {
		c.tel.ReportBroken(report_client_valuations, err, endpoint)
		return nil, fmt.Errorf("transfermarkt: fetch participants: %w", err)
	}
	return ParseValuations(doc, c.lenient, c.tel)
}

// Fixtures fetches the full schedule of a competition for the configured season.
func (c *Client) Fixtures(ctx context.Context, competition Competition) (*strength.OpponentMap, error) {
	endpoint := competition.FixturesPath(c.season)
	c.tel.ReportDebug(report_client_fixtures, endpoint)

	doc, err := c.fetch(ctx, endpoint)
	if err != nil {
		c.tel.ReportBroken(report_client_fixtures, err, endpoint)
		return nil, fmt.Errorf("transfermarkt: fetch fixtures: %w", err)
	}
	return ParseFixtures(doc, c.tel), nil
}
