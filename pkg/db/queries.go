package db

import (
	"context"
	"errors"
	"fmt"

	"crawler-dashboard/pkg/models"

	"github.com/jackc/pgx/v5"
)

const urlColumns = `id, url, status, title, html_version, internal_links, external_links,
	broken_links, has_login_form, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanURL(row rowScanner) (models.URLItem, error) {
	var item models.URLItem
	err := row.Scan(
		&item.ID,
		&item.URL,
		&item.Status,
		&item.Title,
		&item.HTMLVersion,
		&item.InternalLinks,
		&item.ExternalLinks,
		&item.BrokenLinks,
		&item.HasLoginForm,
		&item.CreatedAt,
	)
	return item, err
}

// ListURLs retrieves every URL, newest first
func (db *DB) ListURLs(ctx context.Context) ([]models.URLItem, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+urlColumns+`
		 FROM urls
		 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query urls: %w", err)
	}
	defer rows.Close()

	items := []models.URLItem{}
	for rows.Next() {
		item, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan url: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetURL retrieves a URL with its heading counts and broken links
func (db *DB) GetURL(ctx context.Context, id int64) (*models.URLDetail, error) {
	var detail models.URLDetail
	var h [6]*int
	err := db.Pool.QueryRow(ctx,
		`SELECT id, url, status, title, html_version, internal_links, external_links,
		        broken_links, has_login_form, created_at,
		        h1_count, h2_count, h3_count, h4_count, h5_count, h6_count
		 FROM urls WHERE id = $1`,
		id,
	).Scan(
		&detail.ID,
		&detail.URL,
		&detail.Status,
		&detail.Title,
		&detail.HTMLVersion,
		&detail.InternalLinks,
		&detail.ExternalLinks,
		&detail.BrokenLinks,
		&detail.HasLoginForm,
		&detail.CreatedAt,
		&h[0], &h[1], &h[2], &h[3], &h[4], &h[5],
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get url: %w", err)
	}

	if h[0] != nil {
		detail.Headings = &models.Headings{
			H1: deref(h[0]), H2: deref(h[1]), H3: deref(h[2]),
			H4: deref(h[3]), H5: deref(h[4]), H6: deref(h[5]),
		}
	}

	detail.BrokenLinksList, err = db.brokenLinks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (db *DB) brokenLinks(ctx context.Context, urlID int64) ([]models.BrokenLink, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT broken_url, status_code FROM broken_links WHERE url_id = $1 ORDER BY id`,
		urlID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query broken links: %w", err)
	}
	defer rows.Close()

	links := []models.BrokenLink{}
	for rows.Next() {
		var bl models.BrokenLink
		if err := rows.Scan(&bl.BrokenURL, &bl.StatusCode); err != nil {
			return nil, fmt.Errorf("failed to scan broken link: %w", err)
		}
		links = append(links, bl)
	}
	return links, rows.Err()
}

// CreateURL inserts a URL in the queued state
func (db *DB) CreateURL(ctx context.Context, rawURL string) (*models.URLItem, error) {
	item, err := scanURL(db.Pool.QueryRow(ctx,
		`INSERT INTO urls (url, status)
		 VALUES ($1, 'queued')
		 RETURNING `+urlColumns,
		rawURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create url: %w", err)
	}
	return &item, nil
}

// DeleteURL deletes a URL and its broken links
func (db *DB) DeleteURL(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM urls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RefreshURL puts a URL back in the queue. Earlier results stay visible until the
// next crawl replaces them.
func (db *DB) RefreshURL(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE urls SET status = 'queued' WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to refresh url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// StopURL marks a running URL as stopped
func (db *DB) StopURL(ctx context.Context, id int64) error {
	return db.transition(ctx, id, models.StatusStopped, models.StatusRunning, ErrNotRunning)
}

// StartURL puts a stopped URL back in the queue
func (db *DB) StartURL(ctx context.Context, id int64) error {
	return db.transition(ctx, id, models.StatusQueued, models.StatusStopped, ErrNotStopped)
}

// transition moves id from one status to another. When no row changes it tells a
// missing URL apart from one in the wrong state.
func (db *DB) transition(ctx context.Context, id int64, to, from models.Status, wrongState error) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE urls SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return fmt.Errorf("failed to update url status: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM urls WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check url: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return wrongState
}

// ClaimQueued marks the oldest queued URL as running and returns it.
// ok is false when the queue is empty.
func (db *DB) ClaimQueued(ctx context.Context) (id int64, rawURL string, ok bool, err error) {
	err = db.Pool.QueryRow(ctx,
		`UPDATE urls SET status = 'running'
		 WHERE id = (
		     SELECT id FROM urls WHERE status = 'queued'
		     ORDER BY id
		     LIMIT 1
		     FOR UPDATE SKIP LOCKED
		 )
		 RETURNING id, url`,
	).Scan(&id, &rawURL)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, "", false, nil
	}
	if err != nil {
		return 0, "", false, fmt.Errorf("failed to claim queued url: %w", err)
	}
	return id, rawURL, true, nil
}

// SaveResult stores a finished crawl. It only applies while the URL is still running,
// so a crawl that was stopped or re-queued meanwhile is discarded with ErrNotRunning.
func (db *DB) SaveResult(ctx context.Context, id int64, result *models.CrawlResult) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE urls SET
		     status = 'done',
		     html_version = $2,
		     title = $3,
		     h1_count = $4, h2_count = $5, h3_count = $6,
		     h4_count = $7, h5_count = $8, h6_count = $9,
		     internal_links = $10,
		     external_links = $11,
		     broken_links = $12,
		     has_login_form = $13
		 WHERE id = $1 AND status = 'running'`,
		id,
		result.HTMLVersion,
		result.Title,
		result.Headings.H1, result.Headings.H2, result.Headings.H3,
		result.Headings.H4, result.Headings.H5, result.Headings.H6,
		result.InternalLinks,
		result.ExternalLinks,
		len(result.BrokenLinksList),
		result.HasLoginForm,
	)
	if err != nil {
		return fmt.Errorf("failed to save crawl result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotRunning
	}

	if _, err := tx.Exec(ctx, `DELETE FROM broken_links WHERE url_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear broken links: %w", err)
	}

	if len(result.BrokenLinksList) > 0 {
		batch := &pgx.Batch{}
		for _, bl := range result.BrokenLinksList {
			batch.Queue(`INSERT INTO broken_links (url_id, broken_url, status_code) VALUES ($1, $2, $3)`,
				id, bl.BrokenURL, bl.StatusCode)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert broken links: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// MarkError records a failed crawl, unless the URL stopped being running meanwhile
func (db *DB) MarkError(ctx context.Context, id int64) error {
	_, err := db.Pool.Exec(ctx, `UPDATE urls SET status = 'error' WHERE id = $1 AND status = 'running'`, id)
	if err != nil {
		return fmt.Errorf("failed to mark url as error: %w", err)
	}
	return nil
}

// RequeueRunning puts URLs left running by a previous process back in the queue
func (db *DB) RequeueRunning(ctx context.Context) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `UPDATE urls SET status = 'queued' WHERE status = 'running'`)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue running urls: %w", err)
	}
	return tag.RowsAffected(), nil
}

func deref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
