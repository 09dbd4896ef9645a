// Package dashboard holds the state behind the URL list and the actions that change it.
//
// State is owned by one goroutine (the TUI event loop). Actions run elsewhere, return a
// Result, and the owner applies it with Complete. Every mutating action ends with a full
// refetch of the collection, whether or not the mutation succeeded.
package dashboard

import (
	"context"

	"crawler-dashboard/pkg/models"
)

//go:generate mockgen -destination=mock_api_test.go -package=dashboard crawler-dashboard/pkg/cli/dashboard API

// API is the subset of the crawl service the dashboard uses
type API interface {
	ListURLs(ctx context.Context) ([]models.URLItem, error)
	GetURL(ctx context.Context, id int64) (*models.URLDetail, error)
	CreateURL(ctx context.Context, rawURL string) (*models.URLItem, error)
	RefreshURL(ctx context.Context, id int64) error
	StopURL(ctx context.Context, id int64) error
	DeleteURL(ctx context.Context, id int64) error
}
