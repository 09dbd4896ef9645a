package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service. Each instance owns its
// registry, so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CrawledTotal        prometheus.Counter
	CrawlErrorsTotal    *prometheus.CounterVec
	CrawlDuration       prometheus.Histogram
	BrokenLinksTotal    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		CrawledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crawler_urls_processed_total",
			Help: "The total number of URLs crawled successfully.",
		}),
		CrawlErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crawler_errors_total",
			Help: "The total number of crawl errors.",
		}, []string{"type"}), // fetch, parse, save
		CrawlDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "crawl_duration_seconds",
			Help:    "Duration of crawl operations.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		}),
		BrokenLinksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crawler_broken_links_found_total",
			Help: "The total number of broken links found.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CrawledTotal,
		m.CrawlErrorsTotal,
		m.CrawlDuration,
		m.BrokenLinksTotal,
	)
	return m
}

func (m *Metrics) IncCrawledTotal() {
	m.CrawledTotal.Inc()
}

func (m *Metrics) IncErrorsTotal(errorType string) {
	m.CrawlErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) AddBrokenLinks(n int) {
	m.BrokenLinksTotal.Add(float64(n))
}

func (m *Metrics) ObserveCrawl(seconds float64) {
	m.CrawlDuration.Observe(seconds)
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
