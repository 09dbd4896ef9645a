package client

import (
	"context"
	"fmt"
	"net/http"

	"crawler-dashboard/pkg/models"
)

// ListURLs retrieves every tracked URL
func (c *Client) ListURLs(ctx context.Context) ([]models.URLItem, error) {
	var items []models.URLItem
	if err := c.doGetRequest(ctx, "/urls", &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.URLItem{}
	}
	return items, nil
}

// GetURL retrieves a URL with its headings and broken links
func (c *Client) GetURL(ctx context.Context, id int64) (*models.URLDetail, error) {
	var detail models.URLDetail
	if err := c.doGetRequest(ctx, fmt.Sprintf("/urls/%d", id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateURL submits a new URL for crawling
func (c *Client) CreateURL(ctx context.Context, rawURL string) (*models.URLItem, error) {
	var created models.URLItem
	payload := models.URLCreate{URL: rawURL}
	if err := c.doJSONRequest(ctx, http.MethodPost, "/urls", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RefreshURL re-queues a URL for crawling
func (c *Client) RefreshURL(ctx context.Context, id int64) error {
	return c.doJSONRequest(ctx, http.MethodPost, fmt.Sprintf("/urls/%d/refresh", id), nil, nil)
}

// StopURL halts the crawl of a URL
func (c *Client) StopURL(ctx context.Context, id int64) error {
	return c.doJSONRequest(ctx, http.MethodPost, fmt.Sprintf("/urls/%d/stop", id), nil, nil)
}

// DeleteURL removes a URL
func (c *Client) DeleteURL(ctx context.Context, id int64) error {
	return c.doDeleteRequest(ctx, fmt.Sprintf("/urls/%d", id))
}
