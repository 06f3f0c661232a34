package nudel

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"nudelguides/lib/restyutil"
	"nudelguides/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// DefaultGuidePage is the page listing every step-by-step guide.
const DefaultGuidePage = "https://nudel.shop/pages/step-by-step"

// DefaultLevelPages are the tutorial level pages that embed the build
// videos for the guides.
var DefaultLevelPages = []string{
	"https://nudel.shop/pages/tutorial-level-1",
	"https://nudel.shop/pages/tutorial-level-2",
	"https://nudel.shop/pages/tutorial-level-3",
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	GuidePage *url.URL
	Http      *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultGuidePage
	GuidePage string
	// defaults to a desktop Chrome user agent
	UserAgent string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.GuidePage == "" {
		opts.GuidePage = DefaultGuidePage
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	guidePage, err := url.Parse(opts.GuidePage)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	// asset urls commonly live on a CDN host, so no domain-restricted
	// redirect policy here
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/nudel/http")

	return &Client{
		GuidePage: guidePage,
		Http:      client,
	}, nil
}

func (c *Client) SetInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, output)
}

func (c *Client) fetchDocument(ctx context.Context, pageUrl string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch '%s': %s", pageUrl, res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// FetchGuidePage gets and parses the guide listing page. An error here is
// fatal for a run, nothing downstream can happen without the listing.
func (c *Client) FetchGuidePage(ctx context.Context) (*goquery.Document, error) {
	return c.fetchDocument(ctx, c.GuidePage.String())
}
