package services

import (
	"context"
	"errors"
	"fmt"

	"crawler-dashboard/pkg/models"
	"crawler-dashboard/pkg/utils"
)

// ErrInvalidURL is returned when a submitted URL is not an absolute http(s) URL
var ErrInvalidURL = errors.New("invalid url")

// Store is the persistence the service needs
type Store interface {
	ListURLs(ctx context.Context) ([]models.URLItem, error)
	GetURL(ctx context.Context, id int64) (*models.URLDetail, error)
	CreateURL(ctx context.Context, rawURL string) (*models.URLItem, error)
	DeleteURL(ctx context.Context, id int64) error
	RefreshURL(ctx context.Context, id int64) error
	StopURL(ctx context.Context, id int64) error
	StartURL(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// CrawlControl lets the service steer the background crawler
type CrawlControl interface {
	// Cancel aborts the in-flight crawl of id, if any
	Cancel(id int64) bool
	// Notify asks the crawler to look at the queue now
	Notify()
}

// URLService handles business logic for URL operations
type URLService struct {
	store Store
	crawl CrawlControl
}

// NewURLService creates a new URL service
func NewURLService(store Store, crawl CrawlControl) *URLService {
	return &URLService{
		store: store,
		crawl: crawl,
	}
}

// ListURLs retrieves all URLs, newest first
func (s *URLService) ListURLs(ctx context.Context) ([]models.URLItem, error) {
	return s.store.ListURLs(ctx)
}

// GetURL retrieves a single URL with its details
func (s *URLService) GetURL(ctx context.Context, id int64) (*models.URLDetail, error) {
	return s.store.GetURL(ctx, id)
}

// CreateURL validates and queues a new URL
func (s *URLService) CreateURL(ctx context.Context, create models.URLCreate) (*models.URLItem, error) {
	rawURL, err := utils.ValidateURL(create.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	item, err := s.store.CreateURL(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	s.crawl.Notify()
	return item, nil
}

// DeleteURL removes a URL, aborting its crawl first
func (s *URLService) DeleteURL(ctx context.Context, id int64) error {
	s.crawl.Cancel(id)
	return s.store.DeleteURL(ctx, id)
}

// RefreshURL re-queues a URL. A crawl already running for it is aborted.
func (s *URLService) RefreshURL(ctx context.Context, id int64) error {
	if err := s.store.RefreshURL(ctx, id); err != nil {
		return err
	}
	s.crawl.Cancel(id)
	s.crawl.Notify()
	return nil
}

// StopURL halts a running crawl
func (s *URLService) StopURL(ctx context.Context, id int64) error {
	if err := s.store.StopURL(ctx, id); err != nil {
		return err
	}
	s.crawl.Cancel(id)
	return nil
}

// StartURL re-queues a stopped URL
func (s *URLService) StartURL(ctx context.Context, id int64) error {
	if err := s.store.StartURL(ctx, id); err != nil {
		return err
	}
	s.crawl.Notify()
	return nil
}

// Health checks the database connection
func (s *URLService) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}
