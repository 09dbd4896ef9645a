package crawler

import (
	"context"
	"io"
	"net/http"

	"crawler-dashboard/pkg/models"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrentChecks bounds the link checks in flight when no limit is configured
const DefaultMaxConcurrentChecks = 10

// Checker finds broken links with HEAD requests
type Checker struct {
	client *http.Client
	limit  int
}

func NewChecker(client *http.Client, limit int) *Checker {
	if limit <= 0 {
		limit = DefaultMaxConcurrentChecks
	}
	return &Checker{client: client, limit: limit}
}

// Check returns the links answering with a status >= 400 or not answering at all,
// in the order they were given. It returns ctx.Err() if ctx ends first.
func (c *Checker) Check(ctx context.Context, links []string) ([]models.BrokenLink, error) {
	codes := make([]int, len(links))

	var g errgroup.Group
	g.SetLimit(c.limit)
	for i, link := range links {
		g.Go(func() error {
			codes[i] = c.status(ctx, link)
			return nil
		})
	}
	// Failures are recorded as status 0, so no task returns an error
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	broken := []models.BrokenLink{}
	for i, code := range codes {
		if code == 0 || code >= 400 {
			broken = append(broken, models.BrokenLink{BrokenURL: links[i], StatusCode: code})
		}
	}
	return broken, nil
}

// status returns the response code for link, or 0 when the request failed.
// Servers that refuse HEAD are asked again with GET.
func (c *Checker) status(ctx context.Context, link string) int {
	code := c.do(ctx, http.MethodHead, link)
	if code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented {
		code = c.do(ctx, http.MethodGet, link)
	}
	return code
}

func (c *Checker) do(ctx context.Context, method, link string) int {
	req, err := http.NewRequestWithContext(ctx, method, link, nil)
	if err != nil {
		return 0
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	return resp.StatusCode
}
