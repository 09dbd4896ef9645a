// Package crawler fetches queued URLs, analyzes them and stores the results.
package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"crawler-dashboard/pkg/models"
)

// maxBodySize caps how much of a page is parsed
const maxBodySize = 10 << 20

// Stage says where a crawl failed
type Stage string

const (
	StageFetch Stage = "fetch"
	StageParse Stage = "parse"
	StageCheck Stage = "check"
)

// CrawlError is a failed crawl
type CrawlError struct {
	Stage Stage
	URL   string
	Err   error
}

func (e *CrawlError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.URL, e.Err)
}

func (e *CrawlError) Unwrap() error {
	return e.Err
}

// Crawler fetches and analyzes single pages
type Crawler struct {
	client  *http.Client
	checker *Checker
}

// New returns a Crawler whose page fetches and link checks each use timeout
func New(timeout time.Duration, maxConcurrentChecks int) *Crawler {
	client := &http.Client{Timeout: timeout}
	return &Crawler{
		client:  client,
		checker: NewChecker(client, maxConcurrentChecks),
	}
}

// Crawl fetches rawURL and returns its analysis including broken links
func (c *Crawler) Crawl(ctx context.Context, rawURL string) (*models.CrawlResult, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, &CrawlError{Stage: StageFetch, URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &CrawlError{Stage: StageFetch, URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", "crawler-dashboard/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &CrawlError{Stage: StageFetch, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &CrawlError{Stage: StageFetch, URL: rawURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	// redirects change the base links resolve against
	if resp.Request != nil && resp.Request.URL != nil {
		pageURL = resp.Request.URL
	}

	analysis, err := Analyze(io.LimitReader(resp.Body, maxBodySize), pageURL)
	if err != nil {
		return nil, &CrawlError{Stage: StageParse, URL: rawURL, Err: err}
	}

	broken, err := c.checker.Check(ctx, analysis.Links)
	if err != nil {
		return nil, &CrawlError{Stage: StageCheck, URL: rawURL, Err: err}
	}

	return &models.CrawlResult{
		HTMLVersion:     analysis.HTMLVersion,
		Title:           analysis.Title,
		Headings:        analysis.Headings,
		InternalLinks:   analysis.InternalLinks,
		ExternalLinks:   analysis.ExternalLinks,
		BrokenLinksList: broken,
		HasLoginForm:    analysis.HasLoginForm,
	}, nil
}
