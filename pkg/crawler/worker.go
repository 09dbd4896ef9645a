package crawler

import (
	"context"
	"errors"
	"sync"
	"time"

	"crawler-dashboard/pkg/db"
	"crawler-dashboard/pkg/metrics"
	"crawler-dashboard/pkg/models"

	"go.uber.org/zap"
)

// Store is the queue and result storage the worker needs
type Store interface {
	ClaimQueued(ctx context.Context) (id int64, rawURL string, ok bool, err error)
	SaveResult(ctx context.Context, id int64, result *models.CrawlResult) error
	MarkError(ctx context.Context, id int64) error
}

// Worker drains the queue one URL at a time
type Worker struct {
	store    Store
	crawler  *Crawler
	metrics  *metrics.Metrics
	logger   *zap.Logger
	interval time.Duration

	wake chan struct{}

	mu       sync.Mutex
	inflight map[int64]context.CancelFunc
}

func NewWorker(store Store, crawler *Crawler, m *metrics.Metrics, logger *zap.Logger, interval time.Duration) *Worker {
	return &Worker{
		store:    store,
		crawler:  crawler,
		metrics:  m,
		logger:   logger,
		interval: interval,
		wake:     make(chan struct{}, 1),
		inflight: make(map[int64]context.CancelFunc),
	}
}

// Run polls the queue every interval until ctx is done
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("crawler started", zap.Duration("poll_interval", w.interval))
	for {
		for w.ProcessNext(ctx) {
		}

		select {
		case <-ctx.Done():
			w.logger.Info("crawler stopped")
			return
		case <-ticker.C:
		case <-w.wake:
		}
	}
}

// Notify makes Run poll now instead of waiting for the next tick
func (w *Worker) Notify() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Cancel aborts the in-flight crawl of id and reports whether there was one
func (w *Worker) Cancel(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	cancel, ok := w.inflight[id]
	if ok {
		cancel()
		delete(w.inflight, id)
	}
	return ok
}

// ProcessNext crawls one queued URL. It returns false when there was nothing to do
// or the queue could not be read.
func (w *Worker) ProcessNext(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	id, rawURL, ok, err := w.store.ClaimQueued(ctx)
	if err != nil {
		w.logger.Error("failed to claim queued url", zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	crawlCtx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.inflight[id] = cancel
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		delete(w.inflight, id)
		w.mu.Unlock()
		cancel()
	}()

	log := w.logger.With(zap.Int64("id", id), zap.String("url", rawURL))
	log.Info("crawling url")

	start := time.Now()
	result, err := w.crawler.Crawl(crawlCtx, rawURL)
	w.metrics.ObserveCrawl(time.Since(start).Seconds())

	if err != nil {
		if crawlCtx.Err() != nil {
			// stopped by the user, or shutting down; RequeueRunning recovers the latter
			log.Info("crawl cancelled")
			return true
		}
		stage := StageFetch
		var ce *CrawlError
		if errors.As(err, &ce) {
			stage = ce.Stage
		}
		w.metrics.IncErrorsTotal(string(stage))
		log.Warn("failed to crawl", zap.Error(err))
		if err := w.store.MarkError(ctx, id); err != nil {
			log.Error("failed to mark url as error", zap.Error(err))
		}
		return true
	}

	if err := w.store.SaveResult(ctx, id, result); err != nil {
		if errors.Is(err, db.ErrNotRunning) {
			log.Info("discarding result of a url that is no longer running")
			return true
		}
		w.metrics.IncErrorsTotal("save")
		log.Error("error saving data", zap.Error(err))
		return true
	}

	w.metrics.IncCrawledTotal()
	w.metrics.AddBrokenLinks(len(result.BrokenLinksList))
	log.Info("successfully crawled and saved", zap.Int("broken_links", len(result.BrokenLinksList)))
	return true
}
