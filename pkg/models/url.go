package models

import (
	"time"
)

// Status is the crawl state of a tracked URL
type Status string

const (
	StatusQueued  Status = "queued"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	StatusStopped Status = "stopped"
)

// Statuses lists the statuses in the order the dashboard offers them as filters
var Statuses = []Status{StatusQueued, StatusRunning, StatusDone, StatusError, StatusStopped}

// URLItem is one tracked URL and its crawl result.
// The optional fields stay nil until a crawl completes; nil is not the same as zero.
type URLItem struct {
	ID            int64      `db:"id" json:"id"`
	URL           string     `db:"url" json:"url"`
	Status        Status     `db:"status" json:"status"`
	Title         *string    `db:"title" json:"title,omitempty"`
	HTMLVersion   *string    `db:"html_version" json:"html_version,omitempty"`
	InternalLinks *int       `db:"internal_links" json:"internal_links,omitempty"`
	ExternalLinks *int       `db:"external_links" json:"external_links,omitempty"`
	BrokenLinks   *int       `db:"broken_links" json:"broken_links,omitempty"`
	HasLoginForm  *bool      `db:"has_login_form" json:"has_login_form,omitempty"`
	CreatedAt     *time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Headings holds per-level heading counts of a crawled page
type Headings struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`
	H5 int `json:"h5"`
	H6 int `json:"h6"`
}

// BrokenLink is a link on a crawled page that did not answer with a non-error status.
// StatusCode is 0 when the link could not be reached at all.
type BrokenLink struct {
	BrokenURL  string `json:"broken_url"`
	StatusCode int    `json:"status_code"`
}

// URLDetail is the detail view of a URL, including its broken links
type URLDetail struct {
	URLItem
	Headings        *Headings    `json:"headings,omitempty"`
	BrokenLinksList []BrokenLink `json:"broken_links_list"`
}

// URLCreate represents data for submitting a new URL
type URLCreate struct {
	URL string `json:"url" binding:"required,url"`
}

// CrawlResult is what the crawler learned about a page
type CrawlResult struct {
	HTMLVersion     string
	Title           string
	Headings        Headings
	InternalLinks   int
	ExternalLinks   int
	BrokenLinksList []BrokenLink
	HasLoginForm    bool
}
