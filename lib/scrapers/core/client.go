package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"footygraph/lib/restyutil"
	"footygraph/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("footygraph/lib/scrapers/core")

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

const (
	report_fetch       = "fetch"
	report_cache_read  = "cache-read"
	report_cache_write = "cache-write"
)

// ErrTransient is wrapped by every error Fetch returns for a page that
// could not be retrieved, callers treat the entity behind it as unresolved.
var ErrTransient = errors.New("transient fetch failure")

// FetchError describes a failed GET after retries were exhausted.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("GET %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransient}
	}
	return []error{ErrTransient, e.Err}
}

// Fetcher retrieves raw documents.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Options struct {
	UserAgent string
	// Delay is slept before every network attempt, retries included.
	Delay   time.Duration
	Timeout time.Duration
	// Retries is the number of extra attempts after a failed request.
	Retries          int
	RetryWait        time.Duration
	RetryMaxWait     time.Duration
	CloudflareBypass bool

	// optional
	Cache     *PageCache
	Dump      restyutil.Output
	Telemetry telemetry.API
}

type Client struct {
	http  *resty.Client
	cache *PageCache
	tel   telemetry.API
}

func retryable(res *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return res.StatusCode() == http.StatusTooManyRequests || res.StatusCode() >= 500
}

func NewClient(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second * 30
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = time.Second * 2
	}
	if opts.RetryMaxWait < opts.RetryWait {
		opts.RetryMaxWait = opts.RetryWait * 15
	}
	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}
	tel = telemetry.NewScopedAPI("scrapers_core", tel)

	client := resty.New()
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetHeader("Connection", "keep-alive")
	client.SetHeader("Accept", "text/html,application/xhtml+xml")
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(opts.Retries)
	client.SetRetryWaitTime(opts.RetryWait)
	client.SetRetryMaxWaitTime(opts.RetryMaxWait)
	client.AddRetryCondition(retryable)
	if opts.Delay > 0 {
		client.OnBeforeRequest(pace(opts.Delay))
	}

	telemetry.InstrumentResty(client, "footygraph/lib/scrapers/core/http", tel)
	restyutil.DumpResponses(client, opts.Dump)

	return &Client{
		http:  client,
		cache: opts.Cache,
		tel:   tel,
	}
}

// pace sleeps the full delay before each attempt resty makes. The hook runs
// once per attempt, so a retry is never sent sooner than delay after the
// attempt it replaces finished.
func pace(delay time.Duration) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-req.Context().Done():
			return req.Context().Err()
		}
	}
}

// Fetch GETs url, serving it from the page cache when possible. Network
// attempts are paced by the configured delay and retried with backoff.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, url)
		if err != nil {
			c.tel.ReportWarning(report_cache_read, err, url)
		}
		if ok {
			span.SetAttributes(attribute.Bool("cached", true))
			return body, nil
		}
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		c.tel.ReportWarning(report_fetch, err, url)
		return nil, &FetchError{URL: url, Err: err}
	}
	if res.IsError() {
		fetchErr := &FetchError{URL: url, Status: res.StatusCode()}
		span.RecordError(fetchErr)
		span.SetStatus(codes.Error, res.Status())
		c.tel.ReportWarning(report_fetch, fetchErr, url)
		return nil, fetchErr
	}

	body := res.Body()
	if c.cache != nil {
		err = c.cache.Set(ctx, url, body)
		if err != nil {
			c.tel.ReportWarning(report_cache_write, err, url)
		}
	}
	return body, nil
}
